package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analytics"
	"ats-backend/internal/applications"
	"ats-backend/internal/calls"
	"ats-backend/internal/interviewers"
	"ats-backend/internal/interviews"
	"ats-backend/internal/questions"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server/middleware"
	"ats-backend/internal/shared/server/respond"
)

// RouterDeps carries everything the router needs.
type RouterDeps struct {
	Config              config.Config
	ApplicationsHandler *applications.Handler
	InterviewsHandler   *interviews.Handler
	QuestionsHandler    *questions.Handler
	InterviewersHandler *interviewers.Handler
	CallsHandler        *calls.Handler
	AnalyticsHandler    *analytics.Handler

	// LocalFilesDir enables static serving of locally stored resumes when
	// the local object store is active.
	LocalFilesDir string
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	if deps.LocalFilesDir != "" {
		r.Static("/files", deps.LocalFilesDir)
	}

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ApplicationsHandler.RegisterRoutes(api)
	deps.InterviewsHandler.RegisterRoutes(api)
	deps.QuestionsHandler.RegisterRoutes(api)
	deps.InterviewersHandler.RegisterRoutes(api)
	deps.CallsHandler.RegisterRoutes(api)
	deps.AnalyticsHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
