package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/sysprobe/cpusnap/internal/cpu"
	"github.com/sysprobe/cpusnap/internal/platform"
	"github.com/sysprobe/cpusnap/internal/registry"
)

// Server exposes CPU snapshots over HTTP
type Server struct {
	app    *fiber.App
	reader *cpu.Reader
}

// NewServer creates the API server backed by the platform registry
func NewServer() *Server {
	return NewServerWithRegistry(registry.New())
}

// NewServerWithRegistry creates the API server against a specific
// registry. Tests use this to serve canned values.
func NewServerWithRegistry(reg registry.Registry) *Server {
	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ServerHeader: "cpusnap",
		AppName:      "cpusnap v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	server := &Server{
		app:    app,
		reader: cpu.NewReader(reg),
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	// Snapshot endpoints
	api.Get("/cpu", s.getCPU)
	api.Get("/cpu/diagnostics", s.getCPUDiagnostics)

	// Health check
	api.Get("/health", s.healthCheck)
}

// Start starts the API server
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.GetOS(),
		"supported": platform.IsSupported(),
		"timestamp": time.Now().Unix(),
	})
}
