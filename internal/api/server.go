package api

import (
	"github.com/gin-gonic/gin"

	"github.com/centralcontact/forms-api/internal/middleware"
	"github.com/centralcontact/forms-api/internal/service"
	"github.com/centralcontact/forms-api/internal/service/pubsub"
	"github.com/centralcontact/forms-api/pkg/logger"
)

type Server struct {
	submit     *SubmitHandler
	website    *WebsiteHandler
	form       *FormHandler
	message    *MessageHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
}

func NewServer(
	submissionService *service.SubmissionService,
	websiteService *service.WebsiteService,
	formService *service.FormService,
	messageService *service.MessageService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	logger *logger.Logger,
	pubsub *pubsub.RedisPubSub,
) *Server {
	return &Server{
		submit:     NewSubmitHandler(submissionService),
		website:    NewWebsiteHandler(websiteService),
		form:       NewFormHandler(formService),
		message:    NewMessageHandler(messageService),
		websocket:  NewWebSocketHandler(logger, pubsub),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
	}
}

// SetupPublicRoutes mounts the cross-origin submission endpoint. It has
// its own auth scheme (website secret keys) and must stay outside the
// dashboard middleware chain.
func (s *Server) SetupPublicRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(1 * 1024 * 1024)) // 1MB max per submission

	api.OPTIONS("/:uuid/:formId", s.submit.Preflight)
	api.POST("/:uuid/:formId", s.rateLimit.SubmitRateLimit(), s.submit.Submit)
}

// SetupDashboardRoutes mounts the operator-facing management API.
func (s *Server) SetupDashboardRoutes(api *gin.RouterGroup) {
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(10000)) // 10k requests per minute per IP

	{
		websites := api.Group("/websites", s.auth.JWTAuth(), s.auth.RequireRole("admin"))
		{
			websites.POST("", s.website.RegisterWebsite)
			websites.GET("", s.website.ListWebsites)
			websites.PATCH("/:uuid", s.website.RenameWebsite)
			websites.DELETE("/:uuid", s.website.DeleteWebsite)
			websites.GET("/:uuid/forms", s.form.ListWebsiteForms)
		}

		forms := api.Group("/forms", s.auth.JWTAuth(), s.auth.RequireRole("admin"))
		{
			forms.POST("", s.form.CreateForm)
			forms.GET("", s.form.ListForms)
			forms.PATCH("/:id", s.form.RenameForm)
			forms.DELETE("/:id", s.form.DeleteForm)
			forms.POST("/:id/archive", s.form.ArchiveForm)
		}

		messages := api.Group("/messages", s.auth.JWTAuth(), s.auth.RequireRole("admin"))
		{
			messages.GET("", s.message.ListMessages)
			messages.GET("/form/:formId", s.message.ListFormMessages)
			messages.GET("/search", s.message.SearchMessages)
			messages.GET("/stream", s.websocket.HandleWebSocket)
		}
	}
}

// StartWebSocketHub starts the WebSocket hub for broadcasting messages
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

// GetWebSocketHandler returns the WebSocket handler for wiring up broadcasting
func (s *Server) GetWebSocketHandler() *WebSocketHandler {
	return s.websocket
}
