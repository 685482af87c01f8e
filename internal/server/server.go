package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"fittrack/internal/auth"
	"fittrack/internal/config"
	"fittrack/internal/goal"
	"fittrack/internal/insight"
	"fittrack/internal/integration"
	"fittrack/internal/membership"
	"fittrack/internal/notify"
	"fittrack/internal/user"
	"fittrack/internal/workout"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	config *config.Config
	http   *http.Server
}

func New(db *sqlx.DB, cfg *config.Config, notifier *notify.Service) *Server {
	router := gin.Default()
	router.Use(corsMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RequestLoggingMiddleware())

	membershipRepo := membership.NewRepository(db)
	userRepo := user.NewRepository(db)
	workoutRepo := workout.NewRepository(db)
	goalRepo := goal.NewRepository(db)
	integrationRepo := integration.NewRepository(db)

	resolver := membership.NewResolver(membershipRepo)
	gate := membership.NewGate(resolver, workoutRepo, goalRepo)
	engine := membership.NewEngine(membershipRepo, userRepo, notifier)
	issuer := membership.NewIssuer(membershipRepo, notifier)

	insightClient := insight.New(cfg.InsightURL)

	userHandler := user.NewHandler(user.NewService(userRepo, membershipRepo, cfg.JWTSecret))
	membershipHandler := membership.NewHandler(engine, issuer, resolver)
	workoutHandler := workout.NewHandler(workout.NewService(workoutRepo, gate, insightClient))
	goalHandler := goal.NewHandler(goal.NewService(goalRepo, gate))
	integrationHandler := integration.NewHandler(integration.NewService(integrationRepo, gate, resolver))

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.RefreshToken)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)

		protected.GET("/membership", membershipHandler.GetMembership)
		protected.POST("/membership/redeem", membershipHandler.Redeem)
		protected.POST("/membership/upgrade", membershipHandler.Upgrade)

		protected.GET("/workouts", workoutHandler.List)
		protected.POST("/workouts", workoutHandler.Create)
		protected.DELETE("/workouts/:workoutID", workoutHandler.Delete)

		protected.GET("/goals", goalHandler.List)
		protected.POST("/goals", goalHandler.Create)
		protected.POST("/goals/:goalID/complete", goalHandler.Complete)
		protected.DELETE("/goals/:goalID", goalHandler.Delete)

		protected.POST("/integrations/gym/connect", integrationHandler.ConnectGym)
		protected.GET("/integrations/gym/card", integrationHandler.GymCard)
		protected.GET("/integrations/gym/analytics", integrationHandler.GymAnalytics)
		protected.POST("/integrations/fitness/connect", integrationHandler.ConnectFitness)
		protected.POST("/integrations/fitness/sync", integrationHandler.SyncFitness)
	}

	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin"))
	{
		admin.POST("/keys", membershipHandler.GenerateKeys)
		admin.GET("/keys", membershipHandler.ListKeys)
		admin.POST("/keys/:keyID/revoke", membershipHandler.RevokeKey)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
