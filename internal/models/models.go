package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	UserStatusActive = "active"
	UserStatusFraud  = "fraud"

	PaymentStatusPaid = "paid"
)

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"  bson:"_id"                json:"_id"`
	Name      string    `gorm:"not null;default:''"          bson:"name"               json:"name"`
	Email     string    `gorm:"uniqueIndex;not null"         bson:"email"              json:"email"`
	PhotoURL  string    `                                    bson:"photoURL"           json:"photoURL"`
	Address   string    `                                    bson:"address"            json:"address"`
	Role      Role      `gorm:"not null;default:user"        bson:"role"               json:"role"`
	ChefID    string    `gorm:"index"                        bson:"chefId,omitempty"   json:"chefId,omitempty"`
	Status    string    `gorm:"not null;default:active"      bson:"status"             json:"status"`
	CreatedAt time.Time `                                    bson:"createdAt"          json:"createdAt"`
}

type RoleRequest struct {
	ID            string        `gorm:"primaryKey;type:varchar(36)"                                                bson:"_id"           json:"_id"`
	UserEmail     string        `gorm:"not null;uniqueIndex:idx_role_request_pending,where:request_status = 'pending'" bson:"userEmail"     json:"userEmail"`
	UserName      string        `                                                                                  bson:"userName"      json:"userName"`
	RequestType   Role          `gorm:"not null;uniqueIndex:idx_role_request_pending,where:request_status = 'pending'" bson:"requestType"   json:"requestType"`
	RequestStatus RequestStatus `gorm:"index;not null;default:pending"                                             bson:"requestStatus" json:"requestStatus"`
	RequestTime   time.Time     `                                                                                  bson:"requestTime"   json:"requestTime"`
}

type Meal struct {
	ID                    string    `gorm:"primaryKey;type:varchar(36)" bson:"_id"                   json:"_id"`
	MealName              string    `gorm:"not null"                    bson:"mealName"              json:"mealName"`
	ChefName              string    `                                   bson:"chefName"              json:"chefName"`
	ChefID                string    `gorm:"index"                       bson:"chefId"                json:"chefId"`
	FoodImage             string    `                                   bson:"foodImage"             json:"foodImage"`
	Price                 float64   `gorm:"not null"                    bson:"price"                 json:"price"`
	Rating                float64   `                                   bson:"rating"                json:"rating"`
	Ingredients           []string  `gorm:"serializer:json"             bson:"ingredients"           json:"ingredients"`
	EstimatedDeliveryTime string    `                                   bson:"estimatedDeliveryTime" json:"estimatedDeliveryTime"`
	ChefExperience        string    `                                   bson:"chefExperience"        json:"chefExperience"`
	DeliveryArea          string    `                                   bson:"deliveryArea"          json:"deliveryArea"`
	UserEmail             string    `gorm:"index;not null"              bson:"userEmail"             json:"userEmail"`
	CreatedAt             time.Time `                                   bson:"createdAt"             json:"createdAt"`
}

type Order struct {
	ID            string      `gorm:"primaryKey;type:varchar(36)"     bson:"_id"                     json:"_id"`
	MealID        string      `gorm:"index;not null"                  bson:"mealId"                  json:"mealId"`
	MealName      string      `                                       bson:"mealName"                json:"mealName"`
	Price         float64     `                                       bson:"price"                   json:"price"`
	Quantity      int         `gorm:"not null;default:1"              bson:"quantity"                json:"quantity"`
	ChefID        string      `gorm:"index"                           bson:"chefId"                  json:"chefId"`
	UserEmail     string      `gorm:"index;not null"                  bson:"userEmail"               json:"userEmail"`
	UserAddress   string      `                                       bson:"userAddress"             json:"userAddress"`
	OrderStatus   OrderStatus `gorm:"index;not null;default:pending"  bson:"orderStatus"             json:"orderStatus"`
	PaymentStatus string      `gorm:"not null;default:''"             bson:"paymentStatus,omitempty" json:"paymentStatus,omitempty"`
	OrderTime     time.Time   `                                       bson:"orderTime"               json:"orderTime"`
}

type Payment struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" bson:"_id"           json:"_id"`
	TransactionID string    `gorm:"uniqueIndex;not null"        bson:"transactionId" json:"transactionId"`
	Amount        float64   `gorm:"not null"                    bson:"amount"        json:"amount"`
	Currency      string    `                                   bson:"currency"      json:"currency"`
	PaymentStatus string    `gorm:"index"                       bson:"paymentStatus" json:"paymentStatus"`
	UserEmail     string    `gorm:"index"                       bson:"userEmail"     json:"userEmail"`
	MealID        string    `                                   bson:"mealId"        json:"mealId"`
	OrderID       string    `gorm:"index"                       bson:"orderId"       json:"orderId"`
	PaidAt        time.Time `                                   bson:"paidAt"        json:"paidAt"`
}

type Review struct {
	ID            string    `gorm:"primaryKey;type:varchar(36)" bson:"_id"           json:"_id"`
	MealID        string    `gorm:"index;not null"              bson:"mealId"        json:"mealId"`
	UserEmail     string    `gorm:"index;not null"              bson:"userEmail"     json:"userEmail"`
	ReviewerName  string    `                                   bson:"reviewerName"  json:"reviewerName"`
	ReviewerImage string    `                                   bson:"reviewerImage" json:"reviewerImage"`
	Review        string    `                                   bson:"review"        json:"review"`
	Ratings       float64   `                                   bson:"ratings"       json:"ratings"`
	Date          time.Time `                                   bson:"date"          json:"date"`
}

type Favourite struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"                  bson:"_id"        json:"_id"`
	UserEmail string    `gorm:"not null;uniqueIndex:idx_favourite_meal_user" bson:"userEmail"  json:"userEmail"`
	MealID    string    `gorm:"not null;uniqueIndex:idx_favourite_meal_user" bson:"mealId"     json:"mealId"`
	MealName  string    `                                                    bson:"mealName"   json:"mealName"`
	ChefName  string    `                                                    bson:"chefName"   json:"chefName"`
	Price     float64   `                                                    bson:"price"      json:"price"`
	AddedDate time.Time `                                                    bson:"added_date" json:"added_date"`
}

func (User) TableName() string        { return "users" }
func (RoleRequest) TableName() string { return "role_requests" }
func (Meal) TableName() string        { return "meals" }
func (Order) TableName() string       { return "orders" }
func (Payment) TableName() string     { return "payments" }
func (Review) TableName() string      { return "reviews" }
func (Favourite) TableName() string   { return "favourites" }

// All lists every persisted model, in migration order.
func All() []any {
	return []any{&User{}, &RoleRequest{}, &Meal{}, &Order{}, &Payment{}, &Review{}, &Favourite{}}
}

func NewID() string { return uuid.NewString() }

func (u *User) BeforeCreate(tx *gorm.DB) error        { setID(&u.ID); return nil }
func (r *RoleRequest) BeforeCreate(tx *gorm.DB) error { setID(&r.ID); return nil }
func (m *Meal) BeforeCreate(tx *gorm.DB) error        { setID(&m.ID); return nil }
func (o *Order) BeforeCreate(tx *gorm.DB) error       { setID(&o.ID); return nil }
func (p *Payment) BeforeCreate(tx *gorm.DB) error     { setID(&p.ID); return nil }
func (r *Review) BeforeCreate(tx *gorm.DB) error      { setID(&r.ID); return nil }
func (f *Favourite) BeforeCreate(tx *gorm.DB) error   { setID(&f.ID); return nil }

func setID(id *string) {
	if *id == "" {
		*id = NewID()
	}
}
