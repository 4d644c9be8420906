// Package server serves the house price form over HTTP. Every request builds
// its own controller, so the server keeps no session state between requests.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-priceform/components/choices"
	"github.com/goliatone/go-priceform/internal/middleware"
	"github.com/goliatone/go-priceform/pkg/form"
	"github.com/goliatone/go-priceform/pkg/orchestrator"
	"github.com/goliatone/go-priceform/pkg/render"
	"github.com/goliatone/go-priceform/pkg/renderers/vanilla"
)

// AssetsPrefix is where the embedded stylesheet is served.
const AssetsPrefix = "/assets"

// FormatParam selects a registered renderer, e.g. ?format=json.
const FormatParam = "format"

// Option configures the Server.
type Option func(*Server)

// WithOrchestrator replaces the default orchestrator.
func WithOrchestrator(o *orchestrator.Orchestrator) Option {
	return func(s *Server) {
		if o != nil {
			s.orchestrator = o
		}
	}
}

// WithLogger attaches a logger for requests and submissions.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTitle overrides the page title.
func WithTitle(title string) Option {
	return func(s *Server) {
		s.title = title
	}
}

// Server renders the form on GET and runs one submission per POST.
type Server struct {
	predictor    form.Predictor
	orchestrator *orchestrator.Orchestrator
	logger       *slog.Logger
	title        string
}

// New builds a Server that submits through predictor.
func New(predictor form.Predictor, options ...Option) *Server {
	s := &Server{
		predictor: predictor,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	if s.orchestrator == nil {
		s.orchestrator = orchestrator.New(orchestrator.WithLogger(s.logger))
	}
	return s
}

// Handler returns the gin engine serving the form, its stylesheet and the
// option lists of the categorical fields.
func (s *Server) Handler() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.AssignRequestID(), middleware.AccessLog(s.logger))

	r.GET("/", s.show)
	r.POST("/", s.submit)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.StaticFS(AssetsPrefix, http.FS(vanilla.AssetsFS()))
	choices.RegisterRoutes(r, choices.DefaultBasePath, s.orchestrator.Schema())
	return r
}

func (s *Server) show(c *gin.Context) {
	s.respond(c, s.newController(c))
}

func (s *Server) submit(c *gin.Context) {
	controller := s.newController(c)
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "malformed form body")
		return
	}
	for _, name := range controller.Schema().Names() {
		if _, ok := c.Request.PostForm[name]; !ok {
			continue
		}
		if err := controller.SetField(name, c.PostForm(name)); err != nil {
			c.String(http.StatusBadRequest, err.Error())
			return
		}
	}

	err := controller.Submit(c.Request.Context())
	if err != nil {
		s.logger.Info("form submission failed", "request_id", middleware.RequestID(c), "error", err)
	}
	s.respond(c, controller)
}

func (s *Server) respond(c *gin.Context, controller *form.Controller) {
	opts := render.RenderOptions{Action: "/", Title: s.title}
	body, contentType, err := s.orchestrator.Render(c.Request.Context(), controller, c.Query(FormatParam), opts)
	if errors.Is(err, render.ErrUnknownRenderer) {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("render failed", "request_id", middleware.RequestID(c), "error", err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(http.StatusOK, contentType, body)
}

func (s *Server) newController(c *gin.Context) *form.Controller {
	logger := s.logger.With("request_id", middleware.RequestID(c))
	return form.New(s.orchestrator.Schema(), s.predictor, form.WithLogger(logger))
}
