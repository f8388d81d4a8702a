// Package server exposes the HTTP API: report, browse, claim, feedback and
// login. Handlers are thin glue over the stores; matching and claim
// notifications run through the background runner so responses never wait on
// external services.
package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lostective/lostective/internal/auth"
	"github.com/lostective/lostective/internal/config"
	"github.com/lostective/lostective/internal/matcher"
	"github.com/lostective/lostective/internal/notify"
	"github.com/lostective/lostective/internal/qr"
	"github.com/lostective/lostective/internal/store"
	"github.com/lostective/lostective/internal/task"
)

// Server is the HTTP API server.
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	items    *store.ItemStore
	users    *store.UserStore
	feedback *store.FeedbackStore
	tokens   *auth.Manager
	pipeline *matcher.Pipeline
	notifier *notify.Service
	qr       *qr.Generator
	runner   *task.Runner
}

// NewServer wires the API server.
func NewServer(
	cfg *config.Config,
	st *store.Store,
	tokens *auth.Manager,
	pipeline *matcher.Pipeline,
	notifier *notify.Service,
	qrGen *qr.Generator,
	runner *task.Runner,
) *Server {
	s := &Server{
		router:   gin.Default(),
		cfg:      cfg,
		items:    st.Items(),
		users:    st.Users(),
		feedback: st.Feedback(),
		tokens:   tokens,
		pipeline: pipeline,
		notifier: notifier,
		qr:       qrGen,
		runner:   runner,
	}
	s.router.Use(s.corsMiddleware())
	s.setupRoutes()
	return s
}

// Run starts the server.
func (s *Server) Run() error {
	return s.router.Run(s.cfg.Server.Addr)
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleHealth)
	s.router.Static("/uploads", s.cfg.Server.UploadDir)

	api := s.router.Group("/api")
	api.POST("/login", s.handleLogin)
	api.GET("/items", s.handleListItems)
	api.GET("/items/:id", s.handleGetItem)
	api.POST("/claim_item", s.handleClaimItem)
	api.POST("/feedback", s.handleFeedback)

	authed := api.Group("")
	authed.Use(s.authMiddleware())
	authed.POST("/report_lost", s.handleReportLost)
	authed.POST("/report_found", s.handleReportFound)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Lostective backend running"})
}

func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := strings.Join(s.cfg.Server.AllowedOrigins, ", ")
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Authorization, Accept, Origin")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// authMiddleware validates the Bearer token and stores the caller's email in
// the request context.
func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}

		email, err := s.tokens.VerifyToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("email", email)
		c.Next()
	}
}
