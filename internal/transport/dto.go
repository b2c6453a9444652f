package transport

import "github.com/localchefbazaar/backend/internal/models"

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status"`
}

type CreateRoleRequest struct {
	UserEmail   string `json:"userEmail"`
	UserName    string `json:"userName"`
	RequestType string `json:"requestType"`
}

type ResolveRoleRequest struct {
	RequestStatus string `json:"requestStatus"`
	RequestType   string `json:"requestType"`
}

type CreateMealRequest struct {
	MealName              string        `json:"mealName"`
	ChefName              string        `json:"chefName"`
	ChefID                string        `json:"chefId"`
	FoodImage             string        `json:"foodImage"`
	Price                 models.Amount `json:"price"`
	Rating                models.Amount `json:"rating"`
	Ingredients           []string      `json:"ingredients"`
	EstimatedDeliveryTime string        `json:"estimatedDeliveryTime"`
	ChefExperience        string        `json:"chefExperience"`
	DeliveryArea          string        `json:"deliveryArea"`
	UserEmail             string        `json:"userEmail"`
}

type PatchMealRequest struct {
	MealName              *string        `json:"mealName"`
	Price                 *models.Amount `json:"price"`
	Rating                *models.Amount `json:"rating"`
	Ingredients           *[]string      `json:"ingredients"`
	EstimatedDeliveryTime *string        `json:"estimatedDeliveryTime"`
	FoodImage             *string        `json:"foodImage"`
	DeliveryArea          *string        `json:"deliveryArea"`
}

type CreateOrderRequest struct {
	MealID      string        `json:"mealId"`
	MealName    string        `json:"mealName"`
	Price       models.Amount `json:"price"`
	Quantity    models.Amount `json:"quantity"`
	ChefID      string        `json:"chefId"`
	UserEmail   string        `json:"userEmail"`
	UserAddress string        `json:"userAddress"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus string `json:"orderStatus"`
}

type CheckoutRequest struct {
	Price     models.Amount `json:"price"`
	Quantity  models.Amount `json:"quantity"`
	MealName  string        `json:"mealName"`
	UserEmail string        `json:"userEmail"`
	OrderID   string        `json:"orderId"`
	MealID    string        `json:"mealId"`
}

type CreateReviewRequest struct {
	MealID        string        `json:"mealId"`
	UserEmail     string        `json:"userEmail"`
	ReviewerName  string        `json:"reviewerName"`
	ReviewerImage string        `json:"reviewerImage"`
	Review        string        `json:"review"`
	Ratings       models.Amount `json:"ratings"`
}

type PatchReviewRequest struct {
	Review  *string        `json:"review"`
	Ratings *models.Amount `json:"ratings"`
}

type CreateFavouriteRequest struct {
	UserEmail string        `json:"userEmail"`
	MealID    string        `json:"mealId"`
	MealName  string        `json:"mealName"`
	ChefName  string        `json:"chefName"`
	Price     models.Amount `json:"price"`
}

// MealQuery selects a page of meals. Limit <= 0 means no limit.
type MealQuery struct {
	Offset int
	Limit  int
	Sort   string
}

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)
