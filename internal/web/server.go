package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"salon-admin/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the admin panel routes onto a gin engine.
type Server struct {
	router *gin.Engine
	addr   string
}

func NewServer(addr string, users *service.UserService, catalog *service.ServiceCatalog) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), requestID())

	router.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	h := NewHandlers(users, catalog)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/users", h.AddUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/edit/:user_id", h.EditUserForm)
		api.POST("/users/update/:user_id", h.UpdateUser)

		api.GET("/services", h.ListServices)
		api.GET("/services/add", h.AddServiceForm)
		api.POST("/services/add", h.AddService)
		api.GET("/services/edit/:service_id", h.EditServiceForm)
		api.POST("/services/update/:service_id", h.UpdateService)
	}

	return &Server{router: router, addr: addr}
}

// requestID tags every request so access-log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("[info] admin panel listening on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the engine, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
