// Package httpapi exposes the document engine as a small HTTP generation
// service: POST a data bag, get PDF (or PNG preview) bytes back.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/edutrack/docgen"
	"github.com/edutrack/docgen/template"
)

type requestIDKey struct{}

// GetRequestID extracts the request ID from a request context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Server is the HTTP document generation service.
type Server struct {
	gen    *docgen.Generator
	logger *zap.Logger
	router chi.Router
}

// NewServer wires the routes for the given generator.
func NewServer(gen *docgen.Generator, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{gen: gen, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Get("/healthz", s.handleHealth)
	r.Get("/documents/types", s.handleTypes)
	r.Post("/documents/{type}", s.handleGenerate)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// requestID tags every request with an X-Request-ID and logs its outcome.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		w.Header().Set("X-Request-ID", id)

		next.ServeHTTP(w, r.WithContext(ctx))

		s.logger.Info("http request",
			zap.String("request_id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTypes lists the supported document types with their display titles.
func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]map[string]string, 0, len(template.Types()))
	for _, dt := range template.Types() {
		types = append(types, map[string]string{
			"type":  dt,
			"title": template.Title(dt),
		})
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"types": types})
}

// handleGenerate produces a document from the posted data bag. The type comes
// from the URL; unknown types still yield a placeholder document, keeping the
// graceful-degradation contract visible end to end. With ?format=png the
// response is a rasterized page instead of the PDF.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	requestID := GetRequestID(r.Context())
	docType := chi.URLParam(r, "type")

	var data map[string]any
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil && !errors.Is(err, io.EOF) {
			s.logger.Warn("invalid request body",
				zap.String("request_id", requestID),
				zap.Error(err),
			)
			s.respondError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	d := s.gen.Generate(docType, data)

	if r.URL.Query().Get("format") == "png" {
		page := 1
		if p, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && p >= 1 {
			page = p
		}
		b, err := s.gen.PNG(d, page-1)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, fmt.Sprintf("rendering page %d: %v", page, err))
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
		return
	}

	b, err := s.gen.ToBytes(d)
	if err != nil {
		s.logger.Error("export failed",
			zap.String("request_id", requestID),
			zap.String("type", docType),
			zap.Error(err),
		)
		s.respondError(w, http.StatusInternalServerError, "failed to export document")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="document.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func (s *Server) respondError(w http.ResponseWriter, status int, msg string) {
	s.respondJSON(w, status, map[string]string{"error": msg})
}
