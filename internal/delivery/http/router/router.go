// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tetatete/internal/delivery/http/middleware"
	"tetatete/internal/delivery/http/router/handler"
	"tetatete/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CategoryHandler     *handler.CategoryHandler
	MatchHandler        *handler.MatchHandler
	ChatHandler         *handler.ChatHandler
	NotificationHandler *handler.NotificationHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ReferenceHandler    *handler.ReferenceHandler
	WSHandler           *ws.Handler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public account routes
	userGroup := api.Group("/User")
	{
		userGroup.POST("/register", r.params.UserHandler.Register)
		userGroup.POST("/login", r.params.UserHandler.Login)
		userGroup.POST("/forgotPassword", r.params.UserHandler.ForgotPassword)
		userGroup.POST("/resetPassword", r.params.UserHandler.ResetPassword)
	}

	// OAuth entry points, reached from the browser without a token
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.GET("/:provider", r.params.UserHandler.OAuthLogin)
		oauthGroup.GET("/:provider/callback", r.params.UserHandler.OAuthCallback)
	}

	// Reference data used by registration forms
	referenceGroup := api.Group("/Reference")
	{
		referenceGroup.GET("/genders", r.params.ReferenceHandler.Genders)
		referenceGroup.GET("/locations", r.params.ReferenceHandler.Locations)
		referenceGroup.GET("/languages", r.params.ReferenceHandler.Languages)
	}

	// Stripe calls this endpoint itself; the payload is authenticated by
	// its signature header rather than a user token.
	api.POST("/Subscription/webHook", r.params.SubscriptionHandler.Webhook)

	// Everything below requires a valid access token
	authed := api.Group("", r.params.AuthMiddleware.Authenticate)

	profileGroup := authed.Group("/User")
	{
		profileGroup.GET("/profile", r.params.UserHandler.GetProfile)
		profileGroup.PUT("/profile", r.params.UserHandler.SaveProfile)
	}

	categoryGroup := authed.Group("/CategoryInfo")
	{
		categoryGroup.GET("", r.params.CategoryHandler.Get)
		categoryGroup.POST("/friends", r.params.CategoryHandler.FillFriends)
		categoryGroup.POST("/love", r.params.CategoryHandler.FillLove)
		categoryGroup.POST("/work", r.params.CategoryHandler.FillWork)
		categoryGroup.PATCH("/friends", r.params.CategoryHandler.UpdateFriends)
		categoryGroup.PATCH("/love", r.params.CategoryHandler.UpdateLove)
		categoryGroup.PATCH("/work", r.params.CategoryHandler.UpdateWork)
		categoryGroup.DELETE("/:category", r.params.CategoryHandler.Delete)
	}

	matchGroup := authed.Group("/Match")
	{
		matchGroup.GET("/new", r.params.MatchHandler.New)
		matchGroup.GET("/unanswered", r.params.MatchHandler.Unanswered)
		matchGroup.GET("/existing", r.params.MatchHandler.Existing)
		matchGroup.POST("/like", r.params.MatchHandler.Like)
		matchGroup.DELETE("/dislike", r.params.MatchHandler.Dislike)
	}

	chatGroup := authed.Group("/Chat")
	{
		chatGroup.GET("", r.params.ChatHandler.Rooms)
		chatGroup.GET("/:chatId/messages", r.params.ChatHandler.Messages)
		chatGroup.POST("/:chatId/join", r.params.ChatHandler.Join)
		chatGroup.POST("/:chatId/leave", r.params.ChatHandler.Leave)
		chatGroup.POST("/:chatId/messages", r.params.ChatHandler.SendMessage)
	}

	notificationGroup := authed.Group("/Notification")
	{
		notificationGroup.GET("", r.params.NotificationHandler.ListUnread)
		notificationGroup.POST("", r.params.NotificationHandler.MarkRead)
	}

	subscriptionGroup := authed.Group("/Subscription")
	{
		subscriptionGroup.GET("", r.params.SubscriptionHandler.Status)
		subscriptionGroup.POST("", r.params.SubscriptionHandler.CreateCheckout)
		subscriptionGroup.DELETE("", r.params.SubscriptionHandler.Cancel)
	}

	// Live chat stream; the token may arrive as a query parameter because
	// browsers cannot set headers on websocket upgrades.
	e.GET("/ws/chat", r.params.WSHandler.HandleChat, r.params.AuthMiddleware.Authenticate)
}
