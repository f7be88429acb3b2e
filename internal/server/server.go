package server

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/agenthands/usecase-agent/internal/core"
	"github.com/agenthands/usecase-agent/internal/core/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Runner interface {
	Run(ctx context.Context, in core.Input) (*model.Run, error)
}

// LinkHistory is served only when a run recorder is configured.
type LinkHistory interface {
	SubjectLinks(ctx context.Context, subject string) ([]string, error)
}

type Server struct {
	Pipeline       Runner
	History        LinkHistory
	DefaultSubject string
	Logger         *zap.Logger
}

func NewServer(p Runner, history LinkHistory, defaultSubject string, log *zap.Logger) *Server {
	return &Server{
		Pipeline:       p,
		History:        history,
		DefaultSubject: defaultSubject,
		Logger:         log,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	r.GET("/", s.Index)
	r.POST("/generate", s.Generate)
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.POST("/use-cases", s.UseCases)
	if s.History != nil {
		api.GET("/subjects/:subject/links", s.SubjectLinks)
	}

	return r
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{"Subject": s.DefaultSubject})
}

func (s *Server) Generate(c *gin.Context) {
	var in core.Input
	if err := c.ShouldBind(&in); err != nil {
		c.HTML(http.StatusBadRequest, "index.tmpl", gin.H{"Subject": s.DefaultSubject, "Error": "Invalid request"})
		return
	}

	run, err := s.Pipeline.Run(c.Request.Context(), in)
	if errors.Is(err, core.ErrEmptySubject) {
		c.HTML(http.StatusBadRequest, "index.tmpl", gin.H{"Subject": in.Subject, "Error": "Please enter a company or industry name."})
		return
	}
	if err != nil {
		s.Logger.Error("failed to generate use cases", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "index.tmpl", gin.H{"Subject": in.Subject, "Error": err.Error()})
		return
	}

	c.HTML(http.StatusOK, "results.tmpl", gin.H{"Subject": run.Subject, "Run": run})
}

func (s *Server) UseCases(c *gin.Context) {
	var in core.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	run, err := s.Pipeline.Run(c.Request.Context(), in)
	switch {
	case errors.Is(err, core.ErrEmptySubject):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		s.Logger.Error("failed to generate use cases", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate use cases"})
	case run.Failed():
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to retrieve industry data.", "run": run})
	default:
		c.JSON(http.StatusOK, gin.H{"run": run})
	}
}

func (s *Server) SubjectLinks(c *gin.Context) {
	urls, err := s.History.SubjectLinks(c.Request.Context(), c.Param("subject"))
	if err != nil {
		s.Logger.Error("failed to load link history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load link history"})
		return
	}
	if urls == nil {
		urls = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"links": urls})
}
