package server

import (
	"net/http"

	"meetspace/internal/config"
	"meetspace/internal/middleware"
	"meetspace/internal/modules/auth"
	"meetspace/internal/modules/booking"
	"meetspace/internal/modules/office"
	"meetspace/internal/modules/user"
	jwtsvc "meetspace/internal/pkg/jwt"
	"meetspace/internal/pkg/response"
	"meetspace/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the process-level resources the router is built from. Redis and
// Events are optional.
type Deps struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Events booking.EventPublisher
}

func NewRouter(deps Deps) *gin.Engine {
	cfg := deps.Config

	userRepo := repository.NewUserRepository(deps.DB)
	refreshRepo := repository.NewRefreshTokenRepository(deps.DB)
	officeRepo := repository.NewOfficeRepository(deps.DB)
	roomRepo := repository.NewRoomRepository(deps.DB)
	bookingRepo := repository.NewBookingRepository(deps.DB)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, refreshRepo, j, cfg.RefreshTokenPepper, cfg.RefreshTTL))
	bookingHandler := booking.NewHandler(booking.NewService(
		bookingRepo,
		repository.NewDirectory(officeRepo, roomRepo),
		deps.Events,
	))
	officeHandler := office.NewHandler(office.NewService(officeRepo, roomRepo, userRepo))
	userHandler := user.NewHandler(user.NewService(userRepo, refreshRepo))

	r := gin.New()
	if !cfg.IsProduction() {
		r.Use(gin.Logger())
	}
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := deps.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "database is not reachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	authHandler.RegisterPublicRoutes(api)

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(j), middleware.EmployeeOrAbove())
	{
		bookingHandler.RegisterRoutes(protected, middleware.RateLimit(cfg.RateLimit, deps.Redis))
		officeHandler.RegisterRoutes(protected)
		userHandler.RegisterRoutes(protected)
	}

	return r
}
