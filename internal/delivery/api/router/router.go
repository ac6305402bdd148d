// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"strconv"

	"cakes/config"
	"cakes/internal/delivery/api/middleware"
	"cakes/internal/delivery/api/router/handler"
	"cakes/internal/domain/entity"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	DeviceHandler   *handler.DeviceHandler
	CatalogHandler  *handler.CatalogHandler
	LocationHandler *handler.LocationHandler
	PromoHandler    *handler.PromoHandler
	OrderHandler    *handler.OrderHandler
	DispatchHandler *handler.DispatchHandler
	PaymentHandler  *handler.PaymentHandler
	WalletHandler   *handler.WalletHandler
	ReviewHandler   *handler.ReviewHandler
	ReminderHandler *handler.ReminderHandler
	CMSHandler      *handler.CMSHandler
	UploadHandler   *handler.UploadHandler
	StatsHandler    *handler.StatsHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
	Config          *config.Config
}

// UploadPath receives multipart uploads; it has its own body limit.
const UploadPath = "/api/admin/uploads"

// multipartOverheadKB covers the form boundaries and headers around the file.
const multipartOverheadKB = 64

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.AuthMiddleware.Authenticate
	adminOnly := r.AuthMiddleware.RequireRoles(entity.RoleAdmin)
	staffOnly := r.AuthMiddleware.RequireRoles(entity.RoleAdmin, entity.RoleDeliveryBoy, entity.RoleVendor)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// WebSocket channels authenticate with the token query parameter
	e.GET("/ws/delivery", r.RealtimeHandler.DeliveryChannel)
	e.GET("/ws/admin", r.RealtimeHandler.AdminChannel)

	// Uploaded files
	e.GET("/uploads/*", r.UploadHandler.Serve)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.AuthHandler.Register)
		authGroup.POST("/login", r.AuthHandler.Login)
		authGroup.POST("/google", r.AuthHandler.GoogleLogin)
		authGroup.POST("/refresh", r.AuthHandler.RefreshToken)
		authGroup.POST("/logout", r.AuthHandler.Logout)

		authGroup.GET("/me", r.ProfileHandler.GetProfile, authenticated)
		authGroup.PUT("/me", r.ProfileHandler.UpdateProfile, authenticated)
		authGroup.GET("/sessions", r.AuthHandler.ListSessions, authenticated)
		authGroup.DELETE("/sessions/:id", r.AuthHandler.RevokeSession, authenticated)
	}

	// Storefront catalog
	api.GET("/categories", r.CatalogHandler.ListCategories)
	api.GET("/categories/:slug", r.CatalogHandler.GetCategory)
	api.GET("/cakes", r.CatalogHandler.ListCakes)
	api.GET("/cakes/:id", r.CatalogHandler.GetCake)
	api.GET("/cakes/:id/reviews", r.ReviewHandler.ListReviews)
	api.POST("/cakes/:id/reviews", r.ReviewHandler.CreateReview, authenticated)
	api.GET("/addons", r.CatalogHandler.ListAddons)
	api.GET("/delivery-areas/check", r.LocationHandler.CheckServiceability)
	api.POST("/promo-codes/validate", r.PromoHandler.ValidatePromoCode)
	api.GET("/navigation", r.CMSHandler.NavigationTree)
	api.GET("/pages/:slug", r.CMSHandler.GetPage)

	// Checkout and customer orders
	api.POST("/checkout/quote", r.OrderHandler.Quote, authenticated)
	ordersGroup := api.Group("/orders")
	{
		ordersGroup.GET("/:orderNumber/track", r.OrderHandler.TrackOrder)
		ordersGroup.GET("/:orderNumber/qr", r.OrderHandler.TrackingQR)

		ordersGroup.POST("", r.OrderHandler.PlaceOrder, authenticated)
		ordersGroup.GET("", r.OrderHandler.ListMyOrders, authenticated)
		ordersGroup.GET("/:orderNumber", r.OrderHandler.GetOrder, authenticated)
		ordersGroup.POST("/:orderNumber/cancel", r.OrderHandler.CancelOrder, authenticated)
	}

	// Payments; the callback is signed by the gateway instead of a user token
	paymentsGroup := api.Group("/payments/phonepe")
	{
		paymentsGroup.POST("/callback", r.PaymentHandler.Callback)
		paymentsGroup.POST("/initiate", r.PaymentHandler.InitiatePayment, authenticated)
		paymentsGroup.GET("/status/:orderNumber", r.PaymentHandler.Status, authenticated)
	}

	api.GET("/wallet", r.WalletHandler.GetWallet, authenticated)

	remindersGroup := api.Group("/reminders", authenticated)
	{
		remindersGroup.GET("", r.ReminderHandler.ListReminders)
		remindersGroup.POST("", r.ReminderHandler.CreateReminder)
		remindersGroup.PUT("/:id", r.ReminderHandler.UpdateReminder)
		remindersGroup.DELETE("/:id", r.ReminderHandler.DeleteReminder)
	}

	// Staff app devices for assignment pushes
	devicesGroup := api.Group("/devices", authenticated, staffOnly)
	{
		devicesGroup.POST("", r.DeviceHandler.RegisterDevice)
		devicesGroup.GET("", r.DeviceHandler.GetUserDevices)
		devicesGroup.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	deliveryGroup := api.Group("/delivery", authenticated, r.AuthMiddleware.RequireRoles(entity.RoleDeliveryBoy))
	{
		deliveryGroup.GET("/orders", r.DispatchHandler.ListDeliveryOrders)
		deliveryGroup.POST("/orders/:id/pickup", r.DispatchHandler.PickupOrder)
		deliveryGroup.POST("/orders/:id/deliver", r.DispatchHandler.DeliverOrder)
	}

	vendorGroup := api.Group("/vendor", authenticated, r.AuthMiddleware.RequireRoles(entity.RoleVendor))
	{
		vendorGroup.GET("/orders", r.DispatchHandler.ListVendorOrders)
		vendorGroup.POST("/orders/:id/accept", r.DispatchHandler.AcceptOrder)
	}

	r.registerAdminRoutes(api.Group("/admin", authenticated, adminOnly))
}

func (r *router) registerAdminRoutes(admin *echo.Group) {
	admin.GET("/stats", r.StatsHandler.Dashboard)

	admin.POST("/staff", r.ProfileHandler.CreateStaff)
	admin.GET("/staff", r.ProfileHandler.ListStaff)

	admin.GET("/categories", r.CatalogHandler.AdminListCategories)
	admin.POST("/categories", r.CatalogHandler.CreateCategory)
	admin.PUT("/categories/:id", r.CatalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", r.CatalogHandler.DeleteCategory)

	admin.GET("/cakes", r.CatalogHandler.AdminListCakes)
	admin.POST("/cakes", r.CatalogHandler.CreateCake)
	admin.PUT("/cakes/:id", r.CatalogHandler.UpdateCake)
	admin.DELETE("/cakes/:id", r.CatalogHandler.DeleteCake)

	admin.GET("/addons", r.CatalogHandler.AdminListAddons)
	admin.POST("/addons", r.CatalogHandler.CreateAddon)
	admin.PUT("/addons/:id", r.CatalogHandler.UpdateAddon)
	admin.DELETE("/addons/:id", r.CatalogHandler.DeleteAddon)

	admin.GET("/delivery-areas", r.LocationHandler.ListAreas)
	admin.POST("/delivery-areas", r.LocationHandler.CreateArea)
	admin.PUT("/delivery-areas/:id", r.LocationHandler.UpdateArea)
	admin.DELETE("/delivery-areas/:id", r.LocationHandler.DeleteArea)

	admin.GET("/promo-codes", r.PromoHandler.ListPromoCodes)
	admin.POST("/promo-codes", r.PromoHandler.CreatePromoCode)
	admin.PUT("/promo-codes/:id", r.PromoHandler.UpdatePromoCode)
	admin.DELETE("/promo-codes/:id", r.PromoHandler.DeletePromoCode)

	admin.GET("/orders", r.OrderHandler.ListOrders)
	admin.GET("/orders/export", r.OrderHandler.ExportOrders)
	admin.PATCH("/orders/:id/status", r.OrderHandler.UpdateStatus)
	admin.POST("/orders/:id/assign-delivery", r.DispatchHandler.AssignDeliveryBoy)
	admin.POST("/orders/:id/assign-vendor", r.DispatchHandler.AssignVendor)

	admin.POST("/wallet/:userId/credit", r.WalletHandler.AdjustWallet)
	admin.PATCH("/reviews/:id", r.ReviewHandler.ModerateReview)

	admin.GET("/navigation", r.CMSHandler.ListNavigationItems)
	admin.POST("/navigation", r.CMSHandler.CreateNavigationItem)
	admin.PUT("/navigation/:id", r.CMSHandler.UpdateNavigationItem)
	admin.DELETE("/navigation/:id", r.CMSHandler.DeleteNavigationItem)

	admin.GET("/pages", r.CMSHandler.ListPages)
	admin.POST("/pages", r.CMSHandler.CreatePage)
	admin.PUT("/pages/:id", r.CMSHandler.UpdatePage)
	admin.DELETE("/pages/:id", r.CMSHandler.DeletePage)

	uploadLimit := strconv.FormatInt(r.Config.Storage.MaxUploadBytes>>10+multipartOverheadKB, 10) + "KB"
	admin.POST("/uploads", r.UploadHandler.Upload, echomiddleware.BodyLimit(uploadLimit))
}
