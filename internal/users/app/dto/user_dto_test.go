package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"userhive/internal/users/app/dto"
)

func validCreate() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@userhive.local",
		Department: "Engineering",
		IsActive:   true,
	}
}

func TestCreateUserRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateUserRequest)
		wantErr bool
	}{
		{name: "valid", mutate: nil, wantErr: false},
		{name: "padded email accepted", mutate: func(r *dto.CreateUserRequest) { r.Email = " ada@userhive.local " }, wantErr: false},
		{name: "blank first name", mutate: func(r *dto.CreateUserRequest) { r.FirstName = "  " }, wantErr: true},
		{name: "blank last name", mutate: func(r *dto.CreateUserRequest) { r.LastName = "" }, wantErr: true},
		{name: "blank email", mutate: func(r *dto.CreateUserRequest) { r.Email = "" }, wantErr: true},
		{name: "malformed email", mutate: func(r *dto.CreateUserRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "email without dot in domain", mutate: func(r *dto.CreateUserRequest) { r.Email = "ada@localhost" }, wantErr: true},
		{name: "blank department", mutate: func(r *dto.CreateUserRequest) { r.Department = " " }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreate()
			if tt.mutate != nil {
				tt.mutate(&req)
			}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserRequestValidate(t *testing.T) {
	valid := dto.UpdateUserRequest{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@userhive.local",
		Department: "Engineering",
		IsActive:   false,
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.Email = "grace@"
	assert.Error(t, invalid.Validate())
}

func TestTokenRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr bool
	}{
		{name: "valid", subject: "tester@userhive.local", wantErr: false},
		{name: "blank", subject: "", wantErr: true},
		{name: "too short", subject: "a@", wantErr: true},
		{name: "not an email", subject: "just-a-name", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.TokenRequest{Subject: tt.subject}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
