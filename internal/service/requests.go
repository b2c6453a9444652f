package service

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"
	"time"

	"github.com/localchefbazaar/backend/internal/metrics"
	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/mykafka"
	"github.com/localchefbazaar/backend/internal/repo"
	"github.com/localchefbazaar/backend/internal/transport"
)

type RoleRequestService struct {
	Repo    RoleRequestRepo
	Users   UserRepo
	Events  *Events
	Metrics *metrics.Metrics
}

// ResolveResult describes what Resolve did.
type ResolveResult struct {
	Status          models.RequestStatus
	Role            models.Role
	ChefID          string
	AlreadyResolved bool
}

// Submit files a pending request. created is false when an identical
// request is already pending; nothing is written in that case.
func (s *RoleRequestService) Submit(ctx context.Context, req transport.CreateRoleRequest) (created bool, _ *models.RoleRequest, _ error) {
	email := strings.TrimSpace(req.UserEmail)
	if email == "" {
		return false, nil, validation("userEmail required")
	}
	role, ok := models.ParseRole(req.RequestType)
	if !ok {
		return false, nil, validation("unknown requestType %q", req.RequestType)
	}

	rr := &models.RoleRequest{
		UserEmail:     email,
		UserName:      req.UserName,
		RequestType:   role,
		RequestStatus: models.RequestPending,
		RequestTime:   time.Now().UTC(),
	}
	if err := s.Repo.CreateRoleRequest(ctx, rr); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return false, nil, nil
		}
		return false, nil, classify(err, "create role request")
	}

	s.Metrics.RoleRequest("submitted")
	s.Events.emit(ctx, mykafka.TopicUsers, mykafka.NewEvent("role_requested", rr.ID, rr.UserEmail, rr))
	return true, rr, nil
}

func (s *RoleRequestService) ListPending(ctx context.Context) ([]models.RoleRequest, error) {
	reqs, err := s.Repo.ListRoleRequests(ctx, models.RequestPending)
	return reqs, classify(err, "list role requests")
}

// Resolve approves or rejects the pending request of email for the given
// role. Approval updates the user's role; a chef also gets a fresh chef id.
func (s *RoleRequestService) Resolve(ctx context.Context, email string, req transport.ResolveRoleRequest) (*ResolveResult, error) {
	status, ok := models.ParseRequestStatus(req.RequestStatus)
	if !ok || status == models.RequestPending {
		return nil, validation("requestStatus must be approved or rejected")
	}
	role, ok := models.ParseRole(req.RequestType)
	if !ok {
		return nil, validation("unknown requestType %q", req.RequestType)
	}

	res := &ResolveResult{Status: status, Role: role}

	var grant *repo.RoleGrant
	if status == models.RequestApproved {
		if _, err := s.Users.GetUserByEmail(ctx, email); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, classify(err, "get user")
		}
		grant = &repo.RoleGrant{Role: role}
		if role == models.RoleChef {
			grant.ChefID = NewChefID()
		}
	}

	matched, err := s.Repo.ResolveRoleRequest(ctx, email, role, status, grant)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, classify(err, "resolve role request")
	}

	if matched == 0 {
		done, err := s.Repo.HasRoleRequest(ctx, email, role, status)
		if err != nil {
			return nil, classify(err, "check role request")
		}
		if !done {
			return nil, ErrRequestNotUpdated
		}
		res.AlreadyResolved = true
		return res, nil
	}

	if grant != nil {
		res.ChefID = grant.ChefID
	}
	s.Metrics.RoleRequest(string(status))
	s.Events.emit(ctx, mykafka.TopicUsers, mykafka.NewEvent("role_request_"+string(status), email, email, res))
	return res, nil
}

// Delete removes every request of email, or only those of requestType when set.
func (s *RoleRequestService) Delete(ctx context.Context, email, requestType string) (int64, error) {
	var role models.Role
	if requestType != "" {
		r, ok := models.ParseRole(requestType)
		if !ok {
			return 0, validation("unknown requestType %q", requestType)
		}
		role = r
	}
	n, err := s.Repo.DeleteRoleRequests(ctx, email, role)
	return n, classify(err, "delete role requests")
}

const chefIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewChefID returns "CHEF-" followed by four characters drawn uniformly
// from A-Z and 0-9.
func NewChefID() string {
	out := make([]byte, 0, 4)
	buf := make([]byte, 8)
	for len(out) < cap(out) {
		rand.Read(buf)
		for _, b := range buf {
			// 252 is the largest multiple of 36 below 256
			if b >= 252 || len(out) == cap(out) {
				continue
			}
			out = append(out, chefIDAlphabet[int(b)%len(chefIDAlphabet)])
		}
	}
	return "CHEF-" + string(out)
}
