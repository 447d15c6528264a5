package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/staylodge/staylodge-backend/internal/auth"
	"github.com/staylodge/staylodge-backend/internal/booking"
	bookingHttp "github.com/staylodge/staylodge-backend/internal/booking/http"
	"github.com/staylodge/staylodge-backend/internal/payment"
	paymentHttp "github.com/staylodge/staylodge-backend/internal/payment/http"
	"github.com/staylodge/staylodge-backend/internal/pkg/storage"
	"github.com/staylodge/staylodge-backend/internal/property"
	propertyHttp "github.com/staylodge/staylodge-backend/internal/property/http"
	"github.com/staylodge/staylodge-backend/internal/rate"
	rateHttp "github.com/staylodge/staylodge-backend/internal/rate/http"
	"github.com/staylodge/staylodge-backend/internal/report"
	reportHttp "github.com/staylodge/staylodge-backend/internal/report/http"
	"github.com/staylodge/staylodge-backend/internal/review"
	reviewHttp "github.com/staylodge/staylodge-backend/internal/review/http"
	"github.com/staylodge/staylodge-backend/internal/room"
	roomHttp "github.com/staylodge/staylodge-backend/internal/room/http"
	"github.com/staylodge/staylodge-backend/internal/user"
	userHttp "github.com/staylodge/staylodge-backend/internal/user/http"
)

// Config holds everything the router needs to assemble middleware and routes.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	StoragePath  string

	UserService     user.Service
	PropertyService property.Service
	RoomService     room.Service
	RateService     rate.Service
	BookingService  booking.Service
	PaymentService  *payment.Service
	ReviewService   review.Service
	ReportRepo      report.Repository

	Files          storage.Storage
	ImageProcessor *storage.ImageProcessor
	JWTManager     *auth.JWTManager
}

// NewRouter initializes the HTTP router engine: global middleware (CORS,
// logging, recovery) plus the per-module route registrations.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	tenantMiddleware := RequireTenant(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	propertyHandler := propertyHttp.NewHandler(cfg.PropertyService, cfg.Files, cfg.ImageProcessor)
	roomHandler := roomHttp.NewHandler(cfg.RoomService)
	rateHandler := rateHttp.NewHandler(cfg.RateService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Files)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)
	reviewHandler := reviewHttp.NewHandler(cfg.ReviewService)
	reportHandler := reportHttp.NewHandler(cfg.ReportRepo)

	// Uploaded files (property photos, payment proofs) are served statically.
	r.Static("/uploads", cfg.StoragePath)

	api := r.Group("/api")
	{
		userHttp.RegisterRoutes(api, userHandler, authMiddleware)
		propertyHttp.RegisterRoutes(api, propertyHandler, authMiddleware, tenantMiddleware)
		roomHttp.RegisterRoutes(api, roomHandler, authMiddleware, tenantMiddleware)
		rateHttp.RegisterRoutes(api, rateHandler, authMiddleware, tenantMiddleware)
		bookingHttp.RegisterRoutes(api, bookingHandler, authMiddleware, tenantMiddleware)
		paymentHttp.RegisterRoutes(api, paymentHandler)
		reviewHttp.RegisterRoutes(api, reviewHandler, authMiddleware)
		reportHttp.RegisterRoutes(api, reportHandler, authMiddleware, tenantMiddleware)
	}

	return r
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
