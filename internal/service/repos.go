package service

import (
	"context"

	"github.com/localchefbazaar/backend/internal/models"
	"github.com/localchefbazaar/backend/internal/repo"
	"github.com/localchefbazaar/backend/internal/transport"
)

// The repository interfaces below are satisfied by both repo.GormRepo and
// mongorepo.MongoRepo.

type UserRepo interface {
	CreateUser(ctx context.Context, u *models.User) error
	ListUsers(ctx context.Context, offset, limit int) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserStatus(ctx context.Context, email, status string) error
}

type RoleRequestRepo interface {
	CreateRoleRequest(ctx context.Context, req *models.RoleRequest) error
	ListRoleRequests(ctx context.Context, status models.RequestStatus) ([]models.RoleRequest, error)
	HasRoleRequest(ctx context.Context, email string, requestType models.Role, status models.RequestStatus) (bool, error)
	ResolveRoleRequest(ctx context.Context, email string, requestType models.Role, status models.RequestStatus, grant *repo.RoleGrant) (int64, error)
	DeleteRoleRequests(ctx context.Context, email string, requestType models.Role) (int64, error)
}

type MealRepo interface {
	CreateMeal(ctx context.Context, m *models.Meal) error
	ListMeals(ctx context.Context, q transport.MealQuery) ([]models.Meal, error)
	CountMeals(ctx context.Context) (int64, error)
	GetMeal(ctx context.Context, id string) (*models.Meal, error)
	ListMealsByEmail(ctx context.Context, email string) ([]models.Meal, error)
	PatchMeal(ctx context.Context, id string, p transport.PatchMealRequest) (*models.Meal, error)
	DeleteMeal(ctx context.Context, id string) error
	SearchMeals(ctx context.Context, query string, limit int) ([]models.Meal, error)
}

type OrderRepo interface {
	CreateOrder(ctx context.Context, o *models.Order) error
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByEmail(ctx context.Context, email string) ([]models.Order, error)
	ListOrdersByChef(ctx context.Context, chefID string) ([]models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) error
	CountOrdersByStatus(ctx context.Context) (map[models.OrderStatus]int64, error)
}

type PaymentRepo interface {
	SettlePayment(ctx context.Context, p *models.Payment) (int64, error)
	TotalPaid(ctx context.Context) (float64, error)
}

type ReviewRepo interface {
	CreateReview(ctx context.Context, rv *models.Review) error
	ListReviews(ctx context.Context, mealID string) ([]models.Review, error)
	ListReviewsByEmail(ctx context.Context, email string) ([]models.Review, error)
	PatchReview(ctx context.Context, id string, p transport.PatchReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
}

type FavouriteRepo interface {
	CreateFavourite(ctx context.Context, f *models.Favourite) error
	ListFavourites(ctx context.Context, email string) ([]models.Favourite, error)
	DeleteFavourite(ctx context.Context, id string) error
}

// Store is everything main wires from one DATABASE_URL.
type Store interface {
	UserRepo
	RoleRequestRepo
	MealRepo
	OrderRepo
	PaymentRepo
	ReviewRepo
	FavouriteRepo
	Ping(ctx context.Context) error
}

// MealSearcher is the external full-text index for meals.
type MealSearcher interface {
	IndexMeal(ctx context.Context, m *models.Meal) error
	DeleteMeal(ctx context.Context, id string) error
	SearchMeals(ctx context.Context, query string, from, size int) (int64, []models.Meal, error)
}

var _ Store = (*repo.GormRepo)(nil)
