package usecase

import (
	"context"
	"testing"
	"time"

	"theater-api/internal/apperr"
	"theater-api/internal/data/entity"
	"theater-api/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, users *userRepoFake, roles ...entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		Username:     "moviegoer",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "$2a$10$notarealhash",
		Roles:        roles,
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestPromoteUserAppendsAdminRole(t *testing.T) {
	_, _, _, users := testRepo()
	svc := NewUserService(users, testLogger())
	user := seedUser(t, users, entity.RoleUser)

	promoted, err := svc.PromoteUserToAdmin(context.Background(), user.ID.String())
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "admin"}, promoted.Roles,
		"existing roles are preserved, admin is appended")

	stored, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleUser, entity.RoleAdmin}, stored.Roles)
}

func TestPromoteAdminConflictsAndLeavesRolesUnchanged(t *testing.T) {
	_, _, _, users := testRepo()
	svc := NewUserService(users, testLogger())
	user := seedUser(t, users, entity.RoleUser, entity.RoleAdmin)

	_, err := svc.PromoteUserToAdmin(context.Background(), user.ID.String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrConflict)

	stored, err := users.FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleUser, entity.RoleAdmin}, stored.Roles)
}

func TestPromoteUnknownUser(t *testing.T) {
	_, _, _, users := testRepo()
	svc := NewUserService(users, testLogger())

	_, err := svc.PromoteUserToAdmin(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPromoteInvalidID(t *testing.T) {
	_, _, _, users := testRepo()
	svc := NewUserService(users, testLogger())

	_, err := svc.PromoteUserToAdmin(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestGetAllUsersPagination(t *testing.T) {
	_, _, _, users := testRepo()
	svc := NewUserService(users, testLogger())

	for i := 0; i < 12; i++ {
		seedUser(t, users, entity.RoleUser)
	}

	page, err := svc.GetAllUsers(context.Background(), &request.PaginatedRequest{Page: 2, Limit: 5})
	require.NoError(t, err)

	assert.Len(t, page.Data, 5)
	assert.Equal(t, int64(12), page.Meta.Total)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.CurrentPage)
}
