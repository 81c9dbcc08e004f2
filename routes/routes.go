package routes

import (
	"github.com/alvinmajawa241/foodlink/controllers"
	"github.com/alvinmajawa241/foodlink/entity"
	"github.com/alvinmajawa241/foodlink/middlewares"
	"github.com/alvinmajawa241/foodlink/ws"

	"github.com/gin-gonic/gin"
)

// Deps bundles everything the route table needs; main builds it once.
type Deps struct {
	JWTSecret string
	Sim       middlewares.SimConfig

	Auth        *controllers.AuthController
	Restaurants *controllers.RestaurantController
	Cart        *controllers.CartController
	Orders      *controllers.OrderController
	Payments    *controllers.PaymentController
	Addresses   *controllers.AddressController
	Reviews     *controllers.ReviewController
	Promotions  *controllers.PromotionController
	Couriers    *controllers.CourierController
	Admin       *controllers.AdminController

	TrackHub *ws.TrackHub
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.Simulate(d.Sim))

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(d.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/signup", d.Auth.Signup)
		a.POST("/login", d.Auth.Login)
		a.POST("/logout", d.Auth.Logout)
	}
	a.GET("/me", auth(), d.Auth.Me)

	// Browse (public)
	r.GET("/restaurants", d.Restaurants.List)
	r.GET("/restaurants/:id", d.Restaurants.Detail)
	r.GET("/restaurants/:id/menu", d.Restaurants.Menu)
	r.GET("/restaurants/:id/reviews", d.Restaurants.ListReviews)
	r.GET("/promotions", d.Promotions.ListActive)

	// Cart (customer)
	cart := r.Group("/cart", auth(entity.RoleCustomer))
	{
		cart.GET("", d.Cart.Get)
		cart.DELETE("", d.Cart.Clear)
		cart.POST("/items", d.Cart.Add)
		cart.PATCH("/items/:id", d.Cart.UpdateQty)
		cart.DELETE("/items/:id", d.Cart.RemoveItem)
		cart.POST("/promo", d.Cart.ApplyPromo)
		cart.DELETE("/promo", d.Cart.RemovePromo)
		cart.PUT("/tip", d.Cart.UpdateTip)
	}

	// Orders (customer)
	orders := r.Group("/orders", auth(entity.RoleCustomer))
	{
		orders.POST("", d.Orders.Create)
		orders.GET("", d.Orders.List)
		orders.GET("/:id", d.Orders.Detail)
		orders.POST("/:id/cancel", d.Orders.Cancel)
		orders.POST("/:id/pay", d.Payments.Pay)
	}

	// Account (customer)
	acct := r.Group("/", auth(entity.RoleCustomer))
	{
		acct.GET("/addresses", d.Addresses.List)
		acct.POST("/addresses", d.Addresses.Create)
		acct.GET("/payment-methods", d.Payments.ListMethods)
		acct.POST("/payment-methods", d.Payments.AddMethod)
		acct.POST("/reviews", d.Reviews.Create)
		acct.GET("/reviews/mine", d.Reviews.ListMine)
	}

	// Merchant
	merchant := r.Group("/merchant", auth(entity.RoleMerchant, entity.RoleAdmin))
	{
		merchant.GET("/restaurants/:id/orders", d.Orders.ListForRestaurant)
	}

	// Courier
	courier := r.Group("/courier", auth(entity.RoleCourier))
	{
		courier.GET("/jobs", d.Couriers.Jobs)
		courier.POST("/jobs/:id/accept", d.Couriers.AcceptJob)
	}

	// Admin
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.GET("/dashboard", d.Admin.Dashboard)
		admin.GET("/couriers", d.Couriers.List)
		admin.GET("/promotions", d.Promotions.ListAll)
		admin.POST("/promotions", d.Promotions.Create)
		admin.PATCH("/promotions/:id", d.Promotions.Update)
		admin.DELETE("/promotions/:id", d.Promotions.Delete)
	}

	// Live order tracking
	r.GET("/ws/orders/:id", auth(), d.TrackHub.HandleWebSocket)
}
