package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhive/internal/users/domain/entities"
)

func TestNewUserStampsTimestamps(t *testing.T) {
	before := time.Now().UTC()

	user, err := entities.NewUser("Ada", "Lovelace", "ada@userhive.local", "Engineering", true)
	require.NoError(t, err)

	after := time.Now().UTC()

	assert.Zero(t, user.ID)
	assert.Equal(t, user.CreatedAtUTC, user.UpdatedAtUTC)
	assert.False(t, user.CreatedAtUTC.Before(before))
	assert.False(t, user.CreatedAtUTC.After(after))
	assert.Equal(t, time.UTC, user.CreatedAtUTC.Location())
}

func TestNewUserRejectsInvalidFields(t *testing.T) {
	tests := []struct {
		name  string
		build func() (*entities.User, error)
		want  error
	}{
		{
			name: "blank first name",
			build: func() (*entities.User, error) {
				return entities.NewUser("  ", "Lovelace", "ada@userhive.local", "Engineering", true)
			},
			want: entities.ErrFirstNameRequired,
		},
		{
			name: "blank last name",
			build: func() (*entities.User, error) {
				return entities.NewUser("Ada", "", "ada@userhive.local", "Engineering", true)
			},
			want: entities.ErrLastNameRequired,
		},
		{
			name: "blank email",
			build: func() (*entities.User, error) {
				return entities.NewUser("Ada", "Lovelace", "   ", "Engineering", true)
			},
			want: entities.ErrEmailRequired,
		},
		{
			name: "malformed email",
			build: func() (*entities.User, error) {
				return entities.NewUser("Ada", "Lovelace", "ada@localhost", "Engineering", true)
			},
			want: entities.ErrInvalidEmail,
		},
		{
			name: "blank department",
			build: func() (*entities.User, error) {
				return entities.NewUser("Ada", "Lovelace", "ada@userhive.local", "\t", true)
			},
			want: entities.ErrDepartmentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := tt.build()
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateAdvancesUpdatedAt(t *testing.T) {
	user, err := entities.NewUser("Ada", "Lovelace", "ada@userhive.local", "Engineering", true)
	require.NoError(t, err)

	created := user.CreatedAtUTC

	err = user.Update("Ada", "Lovelace", "ada@userhive.local", "Platform", false)
	require.NoError(t, err)

	assert.Equal(t, created, user.CreatedAtUTC)
	assert.False(t, user.UpdatedAtUTC.Before(created))
	assert.Equal(t, "Platform", user.Department)
	assert.False(t, user.IsActive)
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"ada@userhive.local", true},
		{"a@b.c", true},
		{"first.last+tag@sub.example.com", true},
		{"", false},
		{"no-at-sign", false},
		{"@userhive.local", false},
		{"ada@", false},
		{"ada@localhost", false},
		{"ada @userhive.local", false},
		{"ada@user hive.local", false},
		{"ada@@userhive.local", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.valid, entities.ValidEmail(tt.email))
		})
	}
}
