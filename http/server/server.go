// Package server provides the HTTP server implementation based on the Fiber
// framework, with prioritized middleware registration and a uniform error
// response envelope.
package server

import "github.com/gofiber/fiber/v2"

// HTTPServer is an HTTP server with configurable middleware.
//
// Use NewHTTPServer to create an instance and RegisterRouter to attach
// resource routers before calling Start.
type HTTPServer struct {
	cfg        Config
	router     *fiber.App
	listenAddr string
}

// NewHTTPServer creates a new HTTPServer with the provided configuration and
// middleware. Middlewares are applied in order of descending priority.
func NewHTTPServer(cfg Config, middlewares []Middleware) *HTTPServer {
	router := fiber.New(fiber.Config{
		ReadTimeout:              cfg.ReadTimeout,
		WriteTimeout:             cfg.WriteTimeout,
		IdleTimeout:              cfg.IdleTimeout,
		BodyLimit:                cfg.BodyLimit,
		ErrorHandler:             ErrorHandler(),
		DisableStartupMessage:    true,
		Immutable:                true,
		EnableSplittingOnParsers: true,
	})

	applyMiddlewares(router, middlewares)

	return &HTTPServer{
		cfg:        cfg,
		router:     router,
		listenAddr: cfg.Address(),
	}
}

// RegisterRouter registers routes with the server using the provided function.
func (s *HTTPServer) RegisterRouter(registerFunc func(r fiber.Router)) {
	registerFunc(s.router)
}

// App exposes the underlying fiber application. Used by in-process tests.
func (s *HTTPServer) App() *fiber.App {
	return s.router
}

// Start begins listening for incoming HTTP requests on the configured address.
func (s *HTTPServer) Start() error {
	return s.router.Listen(s.listenAddr)
}

// Stop gracefully stops the server, allowing ongoing requests to complete.
func (s *HTTPServer) Stop() error {
	return s.router.Shutdown()
}
