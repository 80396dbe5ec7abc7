package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userhive/internal/users/adapters/memory"
	"userhive/internal/users/app"
	"userhive/internal/users/app/dto"
)

func newUseCase() *app.UserUseCase {
	return app.NewUserUseCase(memory.NewUserRepository())
}

func createRequest() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@userhive.local",
		Department: "Engineering",
		IsActive:   true,
	}
}

func TestCreateAssignsIDAndPersists(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	id, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	user, ok := uc.GetByID(ctx, id)
	require.True(t, ok)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@userhive.local", user.Email)
	assert.Equal(t, "Engineering", user.Department)
	assert.True(t, user.IsActive)
	assert.Equal(t, user.CreatedAtUTC, user.UpdatedAtUTC)
	assert.False(t, user.CreatedAtUTC.IsZero())
}

func TestCreateTrimsTextFields(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	req := &dto.CreateUserRequest{
		FirstName:  "  Ada ",
		LastName:   " Lovelace  ",
		Email:      "  ada@userhive.local ",
		Department: " Engineering ",
		IsActive:   true,
	}

	id, err := uc.Create(ctx, req)
	require.NoError(t, err)

	user, ok := uc.GetByID(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "Lovelace", user.LastName)
	assert.Equal(t, "ada@userhive.local", user.Email)
	assert.Equal(t, "Engineering", user.Department)
}

func TestCreateInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *dto.CreateUserRequest)
		nilReq bool
	}{
		{name: "nil request", nilReq: true},
		{name: "blank first name", mutate: func(r *dto.CreateUserRequest) { r.FirstName = "   " }},
		{name: "blank last name", mutate: func(r *dto.CreateUserRequest) { r.LastName = "" }},
		{name: "blank department", mutate: func(r *dto.CreateUserRequest) { r.Department = "\t" }},
		{name: "email without at", mutate: func(r *dto.CreateUserRequest) { r.Email = "invalid-email" }},
		{name: "email leading at", mutate: func(r *dto.CreateUserRequest) { r.Email = "@userhive.local" }},
		{name: "email trailing at", mutate: func(r *dto.CreateUserRequest) { r.Email = "ada@" }},
		{name: "email domain without dot", mutate: func(r *dto.CreateUserRequest) { r.Email = "ada@localhost" }},
		{name: "email with whitespace", mutate: func(r *dto.CreateUserRequest) { r.Email = "ada @userhive.local" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase()
			ctx := context.Background()

			req := createRequest()
			if tt.mutate != nil {
				tt.mutate(req)
			}
			if tt.nilReq {
				req = nil
			}

			id, err := uc.Create(ctx, req)
			require.ErrorIs(t, err, app.ErrValidation)
			assert.Zero(t, id)
			assert.Empty(t, uc.GetAll(ctx))
		})
	}
}

func TestUpdateChangesFields(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	id, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	updated, err := uc.Update(ctx, id, &dto.UpdateUserRequest{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@userhive.local",
		Department: "Platform",
		IsActive:   false,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	user, ok := uc.GetByID(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Platform", user.Department)
	assert.False(t, user.IsActive)
	assert.False(t, user.UpdatedAtUTC.Before(user.CreatedAtUTC))
}

func TestUpdateAbsentIsNotAnError(t *testing.T) {
	uc := newUseCase()

	updated, err := uc.Update(context.Background(), 42, &dto.UpdateUserRequest{
		FirstName:  "Grace",
		LastName:   "Hopper",
		Email:      "grace@userhive.local",
		Department: "Engineering",
		IsActive:   true,
	})

	// Корректное тело с несуществующим ID - "не найдено", не ошибка валидации.
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestUpdateInvalidInputLeavesRecordIntact(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	id, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	updated, err := uc.Update(ctx, id, &dto.UpdateUserRequest{
		FirstName:  "",
		LastName:   "Lovelace",
		Email:      "ada@userhive.local",
		Department: "Engineering",
		IsActive:   true,
	})
	require.ErrorIs(t, err, app.ErrValidation)
	assert.False(t, updated)

	user, ok := uc.GetByID(ctx, id)
	require.True(t, ok)
	assert.Equal(t, "Ada", user.FirstName)
}

func TestDeleteThenGetAbsent(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	id, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	assert.True(t, uc.Delete(ctx, id))

	_, ok := uc.GetByID(ctx, id)
	assert.False(t, ok)

	assert.False(t, uc.Delete(ctx, id))
}

// seedDepartments создает пользователей A(Engineering, активен),
// B(Engineering, неактивен), C(HR, активен), D(Engineering, активен).
func seedDepartments(t *testing.T, uc *app.UserUseCase) {
	t.Helper()
	ctx := context.Background()

	seed := []struct {
		first      string
		department string
		active     bool
	}{
		{"A", "Engineering", true},
		{"B", "Engineering", false},
		{"C", "HR", true},
		{"D", "Engineering", true},
	}
	for i, s := range seed {
		_, err := uc.Create(ctx, &dto.CreateUserRequest{
			FirstName:  s.first,
			LastName:   "User",
			Email:      string(rune('a'+i)) + "@userhive.local",
			Department: s.department,
			IsActive:   s.active,
		})
		require.NoError(t, err)
	}
}

func TestGetPagedFiltersAndPaginates(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	seedDepartments(t, uc)

	active := true
	page1 := uc.GetPaged(ctx, "Engineering", &active, 1, 2)

	require.Len(t, page1.Items, 2)
	assert.Equal(t, 2, page1.TotalCount)
	assert.Equal(t, 1, page1.Page)
	assert.Equal(t, 2, page1.PageSize)
	for _, user := range page1.Items {
		assert.Equal(t, "Engineering", user.Department)
		assert.True(t, user.IsActive)
	}

	page2 := uc.GetPaged(ctx, "Engineering", &active, 2, 2)
	assert.Empty(t, page2.Items)
	assert.Equal(t, 2, page2.TotalCount)
}

func TestGetPagedDepartmentFilterIgnoresCase(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	seedDepartments(t, uc)

	lower := uc.GetPaged(ctx, "engineering", nil, 1, 20)
	upper := uc.GetPaged(ctx, "ENGINEERING", nil, 1, 20)

	assert.Equal(t, 3, lower.TotalCount)
	assert.Equal(t, lower.TotalCount, upper.TotalCount)
}

func TestGetPagedPartitionsFilteredSet(t *testing.T) {
	const total = 7
	const pageSize = 3

	uc := newUseCase()
	ctx := context.Background()

	for i := 0; i < total; i++ {
		_, err := uc.Create(ctx, &dto.CreateUserRequest{
			FirstName:  "QA",
			LastName:   "User",
			Email:      string(rune('a'+i)) + "@userhive.local",
			Department: "QA",
			IsActive:   true,
		})
		require.NoError(t, err)
	}

	seen := make(map[int]bool)
	for page := 1; page <= 3; page++ {
		result := uc.GetPaged(ctx, "QA", nil, page, pageSize)
		assert.Equal(t, total, result.TotalCount)
		for _, user := range result.Items {
			assert.False(t, seen[user.ID], "id %d returned twice", user.ID)
			seen[user.ID] = true
		}
	}
	// Страницы 3+3+1 разбивают выборку без пересечений и пропусков.
	assert.Len(t, seen, total)

	last := uc.GetPaged(ctx, "QA", nil, 3, pageSize)
	assert.Len(t, last.Items, 1)
}

func TestGetPagedNormalizesArguments(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	seedDepartments(t, uc)

	result := uc.GetPaged(ctx, "", nil, 0, 0)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, app.DefaultPageSize, result.PageSize)

	oversized := uc.GetPaged(ctx, "", nil, -3, app.MaxPageSize+1)
	assert.Equal(t, 1, oversized.Page)
	assert.Equal(t, app.DefaultPageSize, oversized.PageSize)
	assert.Equal(t, 4, oversized.TotalCount)
}
