package http

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"volunteerhours/internal/core"
	"volunteerhours/internal/log"
	"volunteerhours/internal/middleware/security"
	"volunteerhours/internal/middleware/trace"
	appweb "volunteerhours/web"
)

// DefaultSheetsTimeout bounds one spreadsheet read made on behalf of a request.
const DefaultSheetsTimeout = 10 * time.Second

// Resolver supplies the volunteer logs for a request.
type Resolver interface {
	Resolve(ctx context.Context) core.FetchResult
	Configured() bool
}

type Server struct {
	http.Server
	templates     *template.Template
	templatesErr  error
	resolver      Resolver
	logger        *log.Logger
	trace         *trace.Middleware
	sheetsTimeout time.Duration
	now           func() time.Time
}

// Option customizes a Server.
type Option func(*serverOptions)

type serverOptions struct {
	logger        *log.Logger
	sheetsTimeout time.Duration
	now           func() time.Time
	templatesFS   fs.FS
	staticFS      fs.FS
	headers       security.HeadersConfig
}

// WithLogger sets the base logger. Defaults to an info-level text logger on stdout.
func WithLogger(l *log.Logger) Option {
	return func(o *serverOptions) { o.logger = l }
}

// WithSheetsTimeout bounds each outbound spreadsheet read.
func WithSheetsTimeout(d time.Duration) Option {
	return func(o *serverOptions) {
		if d > 0 {
			o.sheetsTimeout = d
		}
	}
}

// WithClock overrides the clock used for the "last 30 days" preset.
func WithClock(now func() time.Time) Option {
	return func(o *serverOptions) { o.now = now }
}

// WithTemplatesFS replaces the embedded templates. The FS must contain templates/*.html.
func WithTemplatesFS(fsys fs.FS) Option {
	return func(o *serverOptions) { o.templatesFS = fsys }
}

// WithHeaders replaces the default security headers.
func WithHeaders(cfg security.HeadersConfig) Option {
	return func(o *serverOptions) { o.headers = cfg }
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, resolver Resolver, opts ...Option) *Server {
	o := serverOptions{
		sheetsTimeout: DefaultSheetsTimeout,
		now:           time.Now,
		templatesFS:   appweb.TemplatesFS,
		staticFS:      appweb.StaticFS,
		headers:       security.DefaultHeadersConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(log.DefaultConfig())
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		resolver:      resolver,
		logger:        o.logger.WithComponent(log.ComponentHTTP),
		trace:         trace.NewMiddleware(extractClientIP),
		sheetsTimeout: o.sheetsTimeout,
		now:           o.now,
	}

	// Parse templates at startup. A failure is reported by /readyz and
	// makes the page return 500; the JSON API keeps working.
	s.templates, s.templatesErr = parseTemplates(o.templatesFS)
	if s.templatesErr != nil {
		s.logger.Warn("Failed parsing templates",
			log.FieldError, s.templatesErr,
			log.FieldErrorType, log.ErrorTypeConfiguration)
	}

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(o.staticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("GET /static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600")
			static.ServeHTTP(w, r)
		}))
	} else {
		s.logger.Warn("Failed to mount embedded static FS", log.FieldError, err)
	}

	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /hours", s.handleHoursPage)
	mux.HandleFunc("GET /api/volunteer-hours", s.handleVolunteerHours)
	mux.HandleFunc("GET /api/volunteer-hours/summary", s.handleSummary)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)

	headers := security.NewHeadersMiddleware(o.headers)
	s.Handler = headers.Middleware(log.Middleware(o.logger)(s.trace.Middleware(mux)))

	return s
}

func parseTemplates(fsys fs.FS) (*template.Template, error) {
	if fsys == nil {
		return nil, fmt.Errorf("no template filesystem")
	}
	t, err := template.ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if t.Lookup(hoursTemplate) == nil {
		return nil, fmt.Errorf("template %q not defined", hoursTemplate)
	}
	return t, nil
}

// Metrics returns the request counters collected by the trace middleware.
func (s *Server) Metrics() trace.Metrics {
	return s.trace.GetMetrics()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Shutting down HTTP server", log.FieldOperation, log.OpShutdown)
	return s.Server.Shutdown(ctx)
}
