package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"tradejournal/internal/auth"
	"tradejournal/internal/calendar"
	"tradejournal/internal/checkout"
	"tradejournal/internal/config"
	"tradejournal/internal/subscription"
	"tradejournal/internal/trade"
	"tradejournal/internal/transaction"
	"tradejournal/internal/user"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const serviceName = "tradejournal"

// Handlers groups the per-page handlers mounted by New.
type Handlers struct {
	User         *user.Handler
	Trade        *trade.Handler
	Calendar     *calendar.Handler
	Subscription *subscription.Handler
	Transaction  *transaction.Handler
	Checkout     *checkout.Handler
}

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(cfg *config.Config, session auth.TokenSource, h Handlers) *Server {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(RequestIDMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/config", ClientConfig(cfg))
	router.GET("/plans", h.Checkout.Plans)
	SetupSwagger(router, cfg)

	public := router.Group("/auth")
	public.Use(RateLimitMiddleware(5, 10))
	{
		public.POST("/register", h.User.Register)
		public.POST("/login", h.User.Login)
		public.POST("/forgot-password", h.User.ForgotPassword)
		public.POST("/verify-otp", h.User.VerifyOTP)
		public.POST("/reset-password", h.User.ResetPassword)
		public.POST("/verify-email", h.User.VerifyEmail)
		public.POST("/resend-verification", h.User.ResendVerification)
	}

	protected := router.Group("/")
	protected.Use(auth.AuthMiddleware(session))
	{
		protected.POST("/auth/logout", h.User.Logout)
		protected.GET("/profile-settings", h.User.GetProfile)
		protected.PUT("/profile-settings", h.User.UpdateProfile)
		protected.POST("/profile-settings/password", h.User.ChangePassword)

		protected.GET("/dashboard", h.Trade.Dashboard)
		protected.GET("/performance", h.Trade.Performance)
		protected.GET("/analytics", h.Trade.Analytics)
		protected.GET("/trades", h.Trade.ListTrades)
		protected.POST("/trades", h.Trade.CreateTrade)
		protected.GET("/trades/export", h.Trade.ExportTrades)
		protected.PUT("/trades/:id", h.Trade.UpdateTrade)
		protected.DELETE("/trades/:id", h.Trade.DeleteTrade)

		protected.GET("/calendar/events", h.Calendar.ListEvents)
		protected.POST("/calendar/events", h.Calendar.CreateEvent)
		protected.PUT("/calendar/events/:id", h.Calendar.UpdateEvent)
		protected.DELETE("/calendar/events/:id", h.Calendar.DeleteEvent)
		protected.PATCH("/calendar/events/:id/toggle", h.Calendar.ToggleEvent)

		protected.GET("/upgrade", h.Subscription.ListPlans)
		protected.GET("/features/:key", h.Subscription.GetFeature)
		protected.GET("/subscription/details", h.Subscription.Details)

		protected.GET("/transactions", h.Transaction.ListTransactions)
		protected.GET("/transactions/:orderId/invoice", h.Transaction.GetInvoice)
		protected.GET("/transactions/:orderId/invoice.pdf", h.Transaction.DownloadInvoice)
	}

	co := protected.Group("/checkout")
	{
		co.POST("", h.Checkout.Start)
		co.POST("/coupon", h.Checkout.ApplyCoupon)
		co.POST("/downgrade/confirm", h.Checkout.ConfirmDowngrade)
		co.POST("/events", h.Checkout.WidgetEvent)
		co.POST("/resume", h.Checkout.ResumeLast)
		co.POST("/resume/:orderId", h.Checkout.Resume)
		co.POST("/cancel", h.Checkout.Cancel)
		co.POST("/retry", h.Checkout.Retry)
		co.POST("/check", h.Checkout.CheckNow)
		co.GET("/state", h.Checkout.State)
		co.GET("/pending", h.Checkout.Pending)
		co.DELETE("/pending", h.Checkout.LeavePending)
	}

	return &Server{
		router: router,
		config: cfg,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start() error {
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID, "+auth.SessionExpiresHeader)
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
