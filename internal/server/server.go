package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ppiankov/veridoc/internal/model"
	"github.com/ppiankov/veridoc/internal/pipeline"
)

// Server exposes the verification pipeline over HTTP. The transport forwards
// the pipeline's report verbatim; run-level failures surface as plain-text
// non-2xx responses, never a partially-shaped JSON body.
type Server struct {
	engine *gin.Engine
	pipe   *pipeline.Pipeline
	logger *slog.Logger
	addr   string
}

// New creates the HTTP server around a pipeline
func New(pipe *pipeline.Pipeline, cfg model.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(logger))

	s := &Server{
		engine: engine,
		pipe:   pipe,
		logger: logger,
		addr:   cfg.Addr,
	}

	engine.GET("/healthz", s.handleHealth)
	engine.POST("/api/verify", s.handleVerify)

	return s
}

// Run starts listening on the configured address
func (s *Server) Run() error {
	s.logger.Info("starting server", "addr", s.addr)
	return s.engine.Run(s.addr)
}

// Handler returns the underlying HTTP handler (used by tests)
func (s *Server) Handler() http.Handler {
	return s.engine
}

type verifyRequest struct {
	DocURL string `json:"doc_url"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleVerify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.DocURL) == "" {
		c.String(http.StatusBadRequest, "missing doc_url")
		return
	}

	report, err := s.pipe.Verify(c.Request.Context(), req.DocURL)
	if err != nil {
		var inputErr *pipeline.InputError
		var fetchErr *pipeline.SourceFetchError
		switch {
		case errors.As(err, &inputErr):
			c.String(http.StatusBadRequest, inputErr.Msg)
		case errors.As(err, &fetchErr):
			s.logger.Warn("document fetch failed", "doc_url", req.DocURL, "error", err)
			c.String(http.StatusBadGateway, "could not fetch document: %v", err)
		default:
			s.logger.Error("verification failed", "doc_url", req.DocURL, "error", err)
			c.String(http.StatusInternalServerError, "internal error")
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// requestLogger logs one line per request
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
