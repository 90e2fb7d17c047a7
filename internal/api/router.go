package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/blogcraft/blog-platform/docs"
	"github.com/blogcraft/blog-platform/internal/api/handler"
	"github.com/blogcraft/blog-platform/internal/api/middleware"
	"github.com/blogcraft/blog-platform/internal/core/domain"
	"github.com/blogcraft/blog-platform/internal/core/ports"
	"github.com/blogcraft/blog-platform/internal/core/service"
	"github.com/blogcraft/blog-platform/internal/infrastructure/config"
	mongodb "github.com/blogcraft/blog-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/blogcraft/blog-platform/internal/infrastructure/db/redis"
)

// NewRouter builds the services over their Mongo and Redis stores and returns
// the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)

	authService := service.NewAuthService(userRepo, sessions, cfg.JWTSecret, 24*time.Hour, log)
	postService := service.NewPostService(postRepo, commentRepo, nil, log)
	commentService := service.NewCommentService(commentRepo, postRepo, nil, log)

	e, err := buildRouter(authService, postService, commentService, cfg, log)
	if err != nil {
		return nil, err
	}

	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e, nil
}

// buildRouter registers every route that works against the service ports,
// which is all of them except the readiness probe. Split from NewRouter so
// the route and gate wiring is testable without live stores.
func buildRouter(authService ports.AuthService, postService ports.PostService, commentService ports.CommentService, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	renderer, err := handler.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("blog"))

	authHandler := handler.NewAuthHandler(authService, cfg.SessionCookie)
	postHandler := handler.NewPostHandler(postService, commentService)
	commentHandler := handler.NewCommentHandler(commentService, postService)
	pageHandler := handler.NewPageHandler()
	apiHandler := handler.NewAPIHandler(authService, postService, commentService)

	// --- HTML surface: session identity + anti-forgery token on forms ---
	html := e.Group("",
		middleware.SessionIdentity(authService, cfg.SessionCookie),
		echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
			TokenLookup: "form:csrf",
		}),
	)

	html.GET("/", postHandler.Index)
	html.GET("/register", authHandler.RegisterForm)
	html.POST("/register", authHandler.Register)
	html.GET("/login", authHandler.LoginForm)
	html.POST("/login", authHandler.Login)
	html.GET("/logout", authHandler.Logout, middleware.RequireAuthenticated())

	html.GET("/about", pageHandler.About)
	html.GET("/contact", pageHandler.Contact)

	html.GET("/new-post", postHandler.NewForm, middleware.RequireAdmin())
	html.POST("/new-post", postHandler.Create, middleware.RequireAdmin())
	html.GET("/edit-post/:id", postHandler.EditForm, middleware.RequireAdmin())
	html.POST("/edit-post/:id", postHandler.Edit, middleware.RequireAdmin())
	html.GET("/delete/:id", postHandler.Delete, middleware.RequireAdmin())

	html.GET("/:id", postHandler.Show)
	html.POST("/:id", commentHandler.Create, middleware.RequireAuthenticated())

	// --- JSON API: bearer tokens instead of cookies ---
	apiGroup := e.Group("/api")
	apiGroup.POST("/token", apiHandler.Token)
	apiGroup.GET("/posts", apiHandler.ListPosts)
	apiGroup.GET("/posts/:id", apiHandler.GetPost)
	apiGroup.POST("/posts", apiHandler.CreatePost,
		middleware.Bearer(cfg.JWTSecret),
		middleware.RequireClaimRole(domain.RoleAdmin),
	)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()

	e.GET("/health", healthHandler.Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
