package usecase

import (
	"context"
	"fmt"
	"time"

	"theater-api/internal/apperr"
	"theater-api/internal/data/entity"
	"theater-api/internal/data/repository"
	"theater-api/internal/dto/request"
	"theater-api/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	PromoteUserToAdmin(ctx context.Context, userID string) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetAllUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	limit := req.PerPage()
	offset := req.Offset()

	users, err := s.userRepo.FindAll(ctx, offset, limit)
	if err != nil {
		s.log.Error("Failed to list users",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("list users: %w", err)
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, limit, total), nil
}

// PromoteUserToAdmin appends the admin role, preserving the roles the
// user already holds. Promoting an admin again conflicts and leaves the
// role set unchanged.
func (s *userService) PromoteUserToAdmin(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.Validation("invalid user id %q", userID)
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user for promotion",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user with id %s not found", userID)
	}

	if user.HasRole(entity.RoleAdmin) {
		return nil, apperr.Conflict("user %s already has the admin role", userID)
	}

	user.Roles = append(user.Roles, entity.RoleAdmin)

	if err := s.userRepo.UpdateRoles(ctx, id, user.Roles, time.Now().UTC()); err != nil {
		s.log.Error("Failed to promote user",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, err
	}

	s.log.Info("User promoted to admin", zap.String("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
