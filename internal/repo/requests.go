package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/localchefbazaar/backend/internal/models"
)

// CreateRoleRequest returns ErrConflict when the same user already has a
// pending request of the same type.
func (r *GormRepo) CreateRoleRequest(ctx context.Context, req *models.RoleRequest) error {
	return createIfAbsent(r.DB.WithContext(ctx), req)
}

func (r *GormRepo) ListRoleRequests(ctx context.Context, status models.RequestStatus) ([]models.RoleRequest, error) {
	var reqs []models.RoleRequest
	if err := r.DB.WithContext(ctx).
		Where("request_status = ?", status).
		Order("request_time ASC").
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return reqs, nil
}

func (r *GormRepo) HasRoleRequest(ctx context.Context, email string, requestType models.Role, status models.RequestStatus) (bool, error) {
	var count int64
	if err := r.DB.WithContext(ctx).Model(&models.RoleRequest{}).
		Where("user_email = ? AND request_type = ? AND request_status = ?", email, requestType, status).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolveRoleRequest moves the pending request to status and returns how many
// rows matched. A non-nil grant is written to the user in the same
// transaction; a missing user rolls everything back with ErrNotFound.
func (r *GormRepo) ResolveRoleRequest(ctx context.Context, email string, requestType models.Role, status models.RequestStatus, grant *RoleGrant) (int64, error) {
	var matched int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RoleRequest{}).
			Where("user_email = ? AND request_type = ? AND request_status = ?", email, requestType, models.RequestPending).
			Update("request_status", status)
		if res.Error != nil {
			return res.Error
		}
		matched = res.RowsAffected
		if matched == 0 || grant == nil {
			return nil
		}

		updates := map[string]any{"role": grant.Role}
		if grant.ChefID != "" {
			updates["chef_id"] = grant.ChefID
		}
		res = tx.Model(&models.User{}).Where("email = ?", email).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return matched, nil
}

// DeleteRoleRequests removes every request of the user, or only those of
// requestType when it is set.
func (r *GormRepo) DeleteRoleRequests(ctx context.Context, email string, requestType models.Role) (int64, error) {
	q := r.DB.WithContext(ctx).Where("user_email = ?", email)
	if requestType != "" {
		q = q.Where("request_type = ?", requestType)
	}
	res := q.Delete(&models.RoleRequest{})
	return res.RowsAffected, res.Error
}
