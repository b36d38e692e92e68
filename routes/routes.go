package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BoaventuraDBoaventura/menu-stream-sub000/configs"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/controllers"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/middlewares"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/services"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/storage"
	"github.com/BoaventuraDBoaventura/menu-stream-sub000/ws"
)

// Deps carries everything the route tree needs; main builds it once.
type Deps struct {
	Cfg     *configs.Config
	DB      *gorm.DB
	Storage *storage.Storage

	Auth    *services.AuthService
	Rest    *services.RestaurantService
	Staff   *services.StaffService
	Menu    *services.MenuService
	Carts   *services.CartService
	Tables  *services.TableService
	Orders  *services.OrderService
	Reports *services.ReportService
	Admin   *services.AdminService

	Hub *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, d *Deps) {
	r.Use(middlewares.CORSMiddleware(d.Cfg.CORSOrigins))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	authCtrl := controllers.NewAuthController(d.Auth)
	restCtrl := controllers.NewRestaurantController(d.DB, d.Rest, d.Storage)
	staffCtrl := controllers.NewStaffController(d.Staff, d.Rest)
	menuCtrl := controllers.NewMenuController(d.Menu, d.Rest, d.Storage)
	tableCtrl := controllers.NewTableController(d.Tables, d.Rest)
	orderCtrl := controllers.NewOrderController(d.Orders, d.Rest)
	reportCtrl := controllers.NewReportController(d.Reports, d.Orders, d.Rest)
	adminCtrl := controllers.NewAdminController(d.Admin)
	publicCtrl := controllers.NewPublicController(d.DB, d.Rest, d.Menu, d.Carts, d.Orders)

	auth := middlewares.AuthMiddleware(d.Cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(d.Cfg.JWTSecret, "admin")

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
	}

	// Auth (protected)
	aAuth := a.Group("", auth)
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/change-password", authCtrl.ChangePassword)
	}

	// Guest surface behind the QR code
	m := r.Group("/m/:slug")
	{
		m.GET("", publicCtrl.Menu)
		m.GET("/cart", publicCtrl.Cart)
		m.POST("/cart", publicCtrl.AddToCart)
		m.PATCH("/cart/items/:lineId", publicCtrl.SetQty)
		m.DELETE("/cart/items/:lineId", publicCtrl.RemoveLine)
		m.POST("/checkout", publicCtrl.Checkout)
		m.GET("/orders", publicCtrl.MyOrders)
		m.GET("/orders/:orderId", publicCtrl.OrderDetail)
	}

	// Partner
	p := r.Group("/restaurants", auth)
	{
		p.GET("", restCtrl.ListMine)
		p.POST("", restCtrl.Create)

		p.GET("/:id", restCtrl.Detail)
		p.PATCH("/:id", restCtrl.Update)
		p.POST("/:id/logo", restCtrl.UploadLogo)

		p.GET("/:id/payment-methods", restCtrl.ListPaymentMethods)
		p.POST("/:id/payment-methods", restCtrl.CreatePaymentMethod)
		p.PATCH("/:id/payment-methods/:pmId", restCtrl.UpdatePaymentMethod)
		p.DELETE("/:id/payment-methods/:pmId", restCtrl.DeletePaymentMethod)

		p.GET("/:id/categories", menuCtrl.ListCategories)
		p.POST("/:id/categories", menuCtrl.CreateCategory)
		p.PATCH("/:id/categories/:catId", menuCtrl.UpdateCategory)
		p.DELETE("/:id/categories/:catId", menuCtrl.DeleteCategory)

		p.GET("/:id/items", menuCtrl.ListItems)
		p.POST("/:id/items", menuCtrl.CreateItem)
		p.PATCH("/:id/items/:itemId", menuCtrl.UpdateItem)
		p.DELETE("/:id/items/:itemId", menuCtrl.DeleteItem)
		p.POST("/:id/items/:itemId/photo", menuCtrl.UploadPhoto)
		p.POST("/:id/items/:itemId/options", menuCtrl.AttachOption)
		p.DELETE("/:id/items/:itemId/options/:optionId", menuCtrl.DetachOption)

		p.GET("/:id/options", menuCtrl.ListOptions)
		p.POST("/:id/options", menuCtrl.CreateOption)
		p.DELETE("/:id/options/:optionId", menuCtrl.DeleteOption)
		p.POST("/:id/options/:optionId/values", menuCtrl.CreateOptionValue)
		p.PATCH("/:id/options/values/:valueId", menuCtrl.UpdateOptionValue)
		p.DELETE("/:id/options/values/:valueId", menuCtrl.DeleteOptionValue)

		p.GET("/:id/tables", tableCtrl.List)
		p.POST("/:id/tables", tableCtrl.Create)
		p.PATCH("/:id/tables/:tableId", tableCtrl.Update)
		p.DELETE("/:id/tables/:tableId", tableCtrl.Delete)
		p.POST("/:id/tables/:tableId/rotate", tableCtrl.Rotate)
		p.GET("/:id/tables/:tableId/qr.png", tableCtrl.QRCode)

		p.GET("/:id/staff", staffCtrl.List)
		p.POST("/:id/staff", staffCtrl.Add)
		p.PATCH("/:id/staff/:memberId", staffCtrl.UpdateRole)
		p.DELETE("/:id/staff/:memberId", staffCtrl.Remove)

		p.GET("/:id/orders", orderCtrl.List)
		p.GET("/:id/orders/board", orderCtrl.Board)
		p.GET("/:id/orders/:orderId", orderCtrl.Detail)
		p.PATCH("/:id/orders/:orderId/advance", orderCtrl.Advance)
		p.PATCH("/:id/orders/:orderId/cancel", orderCtrl.Cancel)

		p.GET("/:id/reports/sales", reportCtrl.Sales)
		p.GET("/:id/reports/sales.pdf", reportCtrl.SalesPDF)
	}

	// Admin (admin only)
	ad := r.Group("/admin", adminOnly)
	{
		ad.GET("/users", adminCtrl.Users)
		ad.GET("/restaurants", adminCtrl.Restaurants)
		ad.GET("/settings", adminCtrl.Settings)
		ad.PUT("/settings/:key", adminCtrl.UpdateSetting)
	}

	// WebSockets
	r.GET("/ws/kitchen/:restaurantId", middlewares.WSAuthMiddleware(d.Cfg.JWTSecret), d.Hub.HandleKitchen)
	r.GET("/ws/orders/:id", d.Hub.HandleOrder)
}
