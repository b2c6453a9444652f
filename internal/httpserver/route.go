package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const banner = "Local Chef Bazaar Backend is Running"

type Deps struct {
	Health     *HealthHTTP
	Users      *UserHTTP
	Requests   *RoleRequestHTTP
	Meals      *MealHTTP
	Orders     *OrderHTTP
	Payments   *PaymentHTTP
	Admin      *AdminHTTP
	Reviews    *ReviewHTTP
	Favourites *FavouriteHTTP
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, banner) })
	e.GET("/health/live", d.Health.Live)
	e.GET("/health/ready", d.Health.Ready)
	if d.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(d.Metrics))
	}

	e.GET("/users", d.Users.ListUsers)
	e.GET("/users/:email", d.Users.GetUser)
	e.GET("/users-role/:email", d.Users.GetRole)
	e.POST("/users", d.Users.CreateUser)
	e.PATCH("/users/:email", d.Users.UpdateStatus)

	e.GET("/users-request", d.Requests.ListPending)
	e.POST("/users-request", d.Requests.Submit)
	e.PATCH("/users-request/:userEmail", d.Requests.Resolve)
	e.DELETE("/users-request/:userEmail", d.Requests.Delete)

	e.GET("/meals", d.Meals.ListMeals)
	e.GET("/meals/search", d.Meals.SearchMeals)
	e.GET("/meals/:id", d.Meals.GetMeal)
	e.GET("/my-meals/:userEmail", d.Meals.ListMyMeals)
	e.POST("/meals", d.Meals.CreateMeal)
	e.PATCH("/meals/:id", d.Meals.PatchMeal)
	e.DELETE("/meals/:id", d.Meals.DeleteMeal)

	e.GET("/orders", d.Orders.ListOrders)
	e.GET("/orders/:userEmail", d.Orders.ListUserOrders)
	e.GET("/chef-orders/:chefId", d.Orders.ListChefOrders)
	e.POST("/orders", d.Orders.CreateOrder)
	e.PATCH("/orders/:id", d.Orders.UpdateStatus)

	e.POST("/create-checkout-session", d.Payments.CreateCheckout)
	e.GET("/payment-success", d.Payments.Confirm)

	e.GET("/admin/total-payment", d.Admin.TotalPayment)
	e.GET("/admin-order-status-count", d.Admin.OrderStatusCount)

	e.GET("/reviews", d.Reviews.ListMealReviews)
	e.POST("/reviews", d.Reviews.CreateReview)
	e.GET("/all-reviews", d.Reviews.ListAll)
	e.GET("/myreviews/:userEmail", d.Reviews.ListMine)
	e.PATCH("/my-reviews/:id", d.Reviews.PatchReview)
	e.DELETE("/my-reviews/:id", d.Reviews.DeleteReview)

	e.GET("/favourites/:userEmail", d.Favourites.List)
	e.POST("/favourites", d.Favourites.Create)
	e.DELETE("/favourites/:id", d.Favourites.Delete)
}
