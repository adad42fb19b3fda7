package server

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/jpalmerr/exampleboard/internal/catalog"
	"github.com/jpalmerr/exampleboard/internal/page"
	"github.com/jpalmerr/exampleboard/internal/store"
)

const (
	// sseWriteTimeout is the maximum time allowed for a single SSE write operation.
	// Must be <= shutdown timeout to ensure clean shutdown.
	sseWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second

	// pageCacheControl lets shared caches keep a rendered page for an hour and
	// serve it stale for a day while revalidating.
	pageCacheControl = "public, max-age=3600, s-maxage=3600, stale-while-revalidate=86400"

	pageTemplate = "templates/examples.html.tmpl"
)

// Options holds optional server settings.
type Options struct {
	// Brand is the document title suffix. Defaults to "Qwik".
	Brand string

	// DefaultApp is the app "/" redirects to. Defaults to the first app.
	DefaultApp string

	// RateLimit is the per-client request rate for the session API.
	// Zero disables rate limiting.
	RateLimit float64

	// RateBurst is the token bucket size for the session API.
	RateBurst int

	// ContributeURL is linked from the end of the menu when set.
	ContributeURL string
}

// Server handles HTTP requests for the examples page and session API.
//
// Server provides:
//   - GET /examples/{id}: the server-rendered examples page
//   - GET /api/examples[/{id}]: catalog JSON
//   - /api/sessions/...: per page view state, with Server-Sent Events
//   - GET /assets/...: embedded script and style
//
// The server is designed for graceful shutdown via context cancellation.
type Server struct {
	catalog    *catalog.Catalog
	store      store.Store
	port       int
	assets     fs.FS
	opts       Options
	logger     *slog.Logger
	tmpl       *template.Template
	httpServer *http.Server

	// limiterDone is closed when the rate limiter's cleanup goroutine exits.
	limiterDone <-chan struct{}
	done        chan struct{}
}

// NewServer creates a new HTTP [Server].
//
// Parameters:
//   - cat: Catalog of example apps
//   - st: Store for page view sessions
//   - port: TCP port to listen on
//   - assets: Embedded filesystem with templates/ and assets/ directories
//   - opts: Optional settings
//   - logger: Logger for server events
//
// The server is not started until [Server.Start] is called.
func NewServer(cat *catalog.Catalog, st store.Store, port int, assets fs.FS, opts Options, logger *slog.Logger) *Server {
	if opts.Brand == "" {
		opts.Brand = page.DefaultBrand
	}
	return &Server{
		catalog: cat,
		store:   st,
		port:    port,
		assets:  assets,
		opts:    opts,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Handler builds the request router with all middleware applied.
//
// ctx bounds the lifetime of background work owned by the handler, such as
// the rate limiter's cleanup goroutine.
func (s *Server) Handler(ctx context.Context) (http.Handler, error) {
	if s.assets == nil {
		return nil, errors.New("server assets are required")
	}
	tmpl, err := template.New(path.Base(pageTemplate)).Funcs(templateFuncs).ParseFS(s.assets, pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	s.tmpl = tmpl

	static, err := fs.Sub(s.assets, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	api := http.NewServeMux()
	api.HandleFunc("POST /api/sessions", s.handleCreateSession)
	api.HandleFunc("GET /api/sessions/{sid}", s.handleGetSession)
	api.HandleFunc("DELETE /api/sessions/{sid}", s.handleDeleteSession)
	api.HandleFunc("POST /api/sessions/{sid}/select", s.handleSelect)
	api.HandleFunc("PUT /api/sessions/{sid}/panel", s.handlePanel)
	api.HandleFunc("GET /api/sessions/{sid}/events", s.handleEvents)

	var sessions http.Handler = api
	if s.opts.RateLimit > 0 {
		limit, done := rateLimitMiddleware(ctx, s.opts.RateLimit, s.opts.RateBurst, 0, s.logger)
		s.limiterDone = done
		sessions = limit(api)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /examples/{id...}", s.handlePage)
	mux.HandleFunc("GET /api/examples", s.handleCatalog)
	mux.HandleFunc("GET /api/examples/{id}", s.handleApp)
	mux.Handle("/api/sessions", sessions)
	mux.Handle("/api/sessions/", sessions)
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServerFS(static)))

	return logRequests(s.logger, compressionMiddleware(mux)), nil
}

// Start begins serving HTTP requests in a background goroutine.
//
// Start is non-blocking and returns immediately after confirming the server
// is listening. The server will continue running until the context is
// cancelled, at which point it initiates a graceful shutdown with a 5-second
// timeout. [Server.Done] is closed once shutdown has finished.
//
// Returns an error if the handler cannot be built or the server fails to
// bind to the configured port.
func (s *Server) Start(ctx context.Context) error {
	handler, err := s.Handler(ctx)
	if err != nil {
		return err
	}

	// create listener first to verify port availability synchronously
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind to port %d: %w", s.port, err)
	}

	s.httpServer = &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		// request contexts derive from ctx so SSE handlers end on shutdown
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.logger.Error("http server error", "error", err)
		}
	}()

	// shutdown on context cancellation
	go func() {
		defer close(s.done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", "error", err)
		}
		if s.limiterDone != nil {
			<-s.limiterDone
		}
	}()

	return nil
}

// Done returns a channel that is closed after a started server has shut down
// and its background goroutines have exited. It is never closed if
// [Server.Start] fails.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// templateFuncs are available to the page template.
var templateFuncs = template.FuncMap{
	"panelClass": panelClass,
}

// panelClass is the CSS class suffix for a panel, e.g. "input".
func panelClass(p page.Panel) string {
	return strings.ToLower(string(p))
}
