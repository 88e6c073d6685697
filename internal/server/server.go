package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/famplan/famplan-server/internal/catalog"
	"github.com/famplan/famplan-server/internal/database"
	"github.com/famplan/famplan-server/internal/handler"
	"github.com/famplan/famplan-server/internal/logger"
	"github.com/famplan/famplan-server/internal/menu"
	"github.com/famplan/famplan-server/internal/metrics"
	"github.com/famplan/famplan-server/internal/shopping"
	"github.com/famplan/famplan-server/internal/user"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	menuService     menu.Service
	shoppingService shopping.Service
	catalogService  catalog.Service
	userService     user.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, menuService menu.Service, shoppingService shopping.Service, catalogService catalog.Service, userService user.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewAbuseMonitor()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		menuHandler := handler.NewMenuHandler(menuService)
		r.Route("/menus", func(r chi.Router) {
			r.Post("/", menuHandler.HandleCreateMenu)
			r.Post("/generate", menuHandler.HandleGenerateMenu)
			r.Get("/get", menuHandler.HandleGetMenu)
			r.Get("/active", menuHandler.HandleGetActiveMenu)
		})

		shoppingHandler := handler.NewShoppingHandler(shoppingService)
		r.Route("/shopping-lists", func(r chi.Router) {
			r.Post("/generate", shoppingHandler.HandleGenerateList)
			r.Get("/get", shoppingHandler.HandleGetList)
			r.Get("/for-menu", shoppingHandler.HandleGetListsForMenu)
			r.Post("/item/purchase", shoppingHandler.HandleSetItemPurchased)
		})

		recipeHandler := handler.NewRecipeHandler(catalogService)
		r.Route("/recipes", func(r chi.Router) {
			r.Post("/", recipeHandler.HandleCreateRecipe)
			r.Get("/", recipeHandler.HandleListRecipes)
			r.Get("/get", recipeHandler.HandleGetRecipe)
		})
		r.Get("/ingredients", recipeHandler.HandleListIngredients)
		r.Get("/categories", recipeHandler.HandleListCategories)

		userHandler := handler.NewUserHandler(userService)
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", userHandler.HandleRegisterUser)
			r.Get("/get", userHandler.HandleGetUser)
			r.Post("/household", userHandler.HandleUpdateHousehold)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		menuService:     menuService,
		shoppingService: shoppingService,
		catalogService:  catalogService,
		userService:     userService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics probes are too chatty to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
