// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catrescue/internal/delivery/http/middleware"
	"catrescue/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler          *handler.HealthHandler
	UserHandler            *handler.UserHandler
	PinHandler             *handler.PinHandler
	CatHandler             *handler.CatHandler
	AdoptionListingHandler *handler.AdoptionListingHandler
	AdoptionRequestHandler *handler.AdoptionRequestHandler
	NotificationHandler    *handler.NotificationHandler
	ActivityHandler        *handler.ActivityHandler
	DeviceHandler          *handler.DeviceHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	userHandler         *handler.UserHandler
	pinHandler          *handler.PinHandler
	catHandler          *handler.CatHandler
	listingHandler      *handler.AdoptionListingHandler
	requestHandler      *handler.AdoptionRequestHandler
	notificationHandler *handler.NotificationHandler
	activityHandler     *handler.ActivityHandler
	deviceHandler       *handler.DeviceHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		userHandler:         params.UserHandler,
		pinHandler:          params.PinHandler,
		catHandler:          params.CatHandler,
		listingHandler:      params.AdoptionListingHandler,
		requestHandler:      params.AdoptionRequestHandler,
		notificationHandler: params.NotificationHandler,
		activityHandler:     params.ActivityHandler,
		deviceHandler:       params.DeviceHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Trailing slashes are stripped before routing, so "/pins/" matches "/pins".
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	// Operational endpoints
	e.GET("/", r.healthHandler.Banner)
	e.GET("/healthz", r.healthHandler.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.GET("/profile", r.userHandler.GetProfile, auth)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile, auth)
	}

	pinGroup := e.Group("/pins")
	{
		pinGroup.GET("", r.pinHandler.ListPins)
		pinGroup.GET("/geojson", r.pinHandler.ListPinsGeoJSON)
		pinGroup.POST("", r.pinHandler.ReportPin)
		pinGroup.PUT("/:id/condition", r.pinHandler.UpdateCondition, auth)
		pinGroup.DELETE("/:id", r.pinHandler.DeletePin, auth)
	}

	catGroup := e.Group("/cats", auth)
	{
		catGroup.POST("", r.catHandler.CreateCat)
		catGroup.GET("/cats", r.catHandler.ListUnlistedCats)
		catGroup.GET("/mycats", r.catHandler.ListMyCats)
		catGroup.PUT("/cat/:id", r.catHandler.UpdateCat)
		catGroup.DELETE("/cat/:id", r.catHandler.DeleteCat)
		catGroup.POST("/cat/:id/image", r.catHandler.UploadCatImage)
	}

	adoptionGroup := e.Group("/adoptions")
	{
		adoptionGroup.POST("", r.listingHandler.CreateListing, auth)
		adoptionGroup.GET("", r.listingHandler.ListListings, auth)
		adoptionGroup.PUT("/:id", r.listingHandler.UpdateListing, auth)
		adoptionGroup.DELETE("/:id", r.listingHandler.DeleteListing, auth)
		adoptionGroup.GET("/:id/qrcode", r.listingHandler.GetListingQRCode)
	}

	requestGroup := e.Group("/adoption-requests", auth)
	{
		requestGroup.POST("", r.requestHandler.CreateRequest)
		requestGroup.GET("/sent", r.requestHandler.ListSent)
		requestGroup.GET("/sent/accepted", r.requestHandler.ListSentAccepted)
		requestGroup.GET("/incoming", r.requestHandler.ListIncomingPending)
		requestGroup.GET("/incoming/all", r.requestHandler.ListIncomingAll)
		requestGroup.PUT("/action", r.requestHandler.ApplyAction)
		requestGroup.GET("/:id", r.requestHandler.GetRequest)
		requestGroup.DELETE("/:id", r.requestHandler.DeleteRequest)
	}

	notificationGroup := e.Group("/notifications", auth)
	{
		notificationGroup.GET("", r.notificationHandler.ListNotifications)
		notificationGroup.GET("/unread-count", r.notificationHandler.UnreadCount)
		notificationGroup.POST("/mark-all-read", r.notificationHandler.MarkAllRead)
		notificationGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}

	activityGroup := e.Group("/activity")
	{
		activityGroup.GET("/my", r.activityHandler.ListMyActivity, auth)
		activityGroup.GET("/cat/:id", r.activityHandler.ListCatActivity, auth)
		activityGroup.GET("/cat/:id/public", r.activityHandler.ListPublicCatActivity)
		activityGroup.POST("", r.activityHandler.AddContribution, auth)
	}

	deviceGroup := e.Group("/devices", auth)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
