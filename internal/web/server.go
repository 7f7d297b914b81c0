// Package web serves the browser rendition of the predictor: the input
// form, the results page with both charts, and the report download.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/inference"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front-end. It is safe for concurrent use: requests
// share only the immutable inference service.
type Server struct {
	svc     *inference.Service
	loadErr error
	log     *zap.Logger
	pages   *template.Template
	router  *mux.Router
}

// NewServer builds the server. When svc is nil every route answers with
// a blocking error page explaining loadErr.
func NewServer(svc *inference.Service, loadErr error, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if svc == nil && loadErr == nil {
		loadErr = errors.New("no prediction model configured")
	}

	pages, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		svc:     svc,
		loadErr: loadErr,
		log:     log,
		pages:   pages,
		router:  mux.NewRouter(),
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Use(s.requestLogger)

	if s.svc == nil {
		s.router.HandleFunc("/healthz", s.Healthz()).Methods("GET")
		s.router.PathPrefix("/").Handler(s.Unavailable())
		return
	}

	s.router.HandleFunc("/", s.Index()).Methods("GET")
	s.router.HandleFunc("/predict", s.Predict()).Methods("POST")
	s.router.HandleFunc("/report", s.Report()).Methods("GET")
	s.router.HandleFunc("/healthz", s.Healthz()).Methods("GET")
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("web server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("web server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
