package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/transport"
)

type UserService struct {
	Repo   UserRepo
	Events *Events
}

// Create signs a user up. Chef and admin are only reachable through an
// approved role request.
func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, validation("email required")
	}

	role := models.RoleUser
	if req.Role != "" {
		r, ok := models.ParseRole(req.Role)
		if !ok {
			return nil, validation("unknown role %q", req.Role)
		}
		if r == models.RoleChef || r == models.RoleAdmin {
			return nil, validation("role %q requires an approved request", r)
		}
		role = r
	}

	u := &models.User{
		Name:      req.Name,
		Email:     email,
		PhotoURL:  req.PhotoURL,
		Address:   req.Address,
		Role:      role,
		Status:    models.UserStatusActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.CreateUser(ctx, u); err != nil {
		return nil, classify(err, "create user")
	}

	s.Events.emit(ctx, mykafka.TopicUsers, mykafka.NewEvent("user_created", u.ID, u.Email, nil))
	return u, nil
}

func (s *UserService) List(ctx context.Context, offset, limit int) ([]models.User, error) {
	users, err := s.Repo.ListUsers(ctx, offset, limit)
	return users, classify(err, "list users")
}

func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	u, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, classify(err, "get user")
	}
	return u, nil
}

// Role reports the user's role, or RoleUser when the email is unknown.
func (s *UserService) Role(ctx context.Context, email string) (models.Role, error) {
	u, err := s.Get(ctx, email)
	switch {
	case err == nil:
		return u.Role, nil
	case errors.Is(err, ErrNotFound):
		return models.RoleUser, nil
	}
	return "", err
}

func (s *UserService) UpdateStatus(ctx context.Context, email, status string) error {
	status = strings.ToLower(strings.TrimSpace(status))
	if status != models.UserStatusActive && status != models.UserStatusFraud {
		return validation("unknown status %q", status)
	}
	if err := s.Repo.UpdateUserStatus(ctx, email, status); err != nil {
		return classify(err, "update user status")
	}

	s.Events.emit(ctx, mykafka.TopicUsers, mykafka.NewEvent("user_status_changed", email, email, map[string]string{"status": status}))
	return nil
}
