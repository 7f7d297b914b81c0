package web

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/passpredict/internal/classifier"
	"github.com/abhisek/passpredict/internal/inference"
	"github.com/abhisek/passpredict/internal/profile"
)

// Index renders the input tab. Query parameters pre-fill the form so the
// results page can link back to the same answers.
func (s *Server) Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := profile.New("").Values()
		q := r.URL.Query()
		for k := range values {
			if q.Has(k) {
				values[k] = q.Get(k)
			}
		}
		s.render(w, r, http.StatusOK, pageData{Tab: 0, Columns: formColumns(values)})
	}
}

// Predict runs one prediction for the posted form and renders the results tab.
func (s *Server) Predict() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form", http.StatusBadRequest)
			return
		}
		values := formValues(r.PostForm)

		outcome, status, err := s.evaluate(r, values)
		if err != nil {
			s.render(w, r, status, pageData{Tab: 0, Columns: formColumns(values), Error: err.Error()})
			return
		}
		s.render(w, r, http.StatusOK, pageData{Tab: 1, Outcome: newOutcomeView(outcome)})
	}
}

// Report recomputes the prediction for the query's answers and returns the
// text report as a download.
func (s *Server) Report() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, status, err := s.evaluate(r, formValues(r.URL.Query()))
		if err != nil {
			http.Error(w, err.Error(), status)
			return
		}

		rep := outcome.Report
		w.Header().Set("Content-Type", rep.MIMEType)
		w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rep.FileName}))
		_, _ = w.Write([]byte(rep.Content))
	}
}

type health struct {
	Status string `json:"status"`
	Model  string `json:"model,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Healthz reports whether a model is loaded.
func (s *Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if s.svc == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(health{Status: "unavailable", Error: s.loadErr.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(health{Status: "ok", Model: s.svc.Model().Name()})
	}
}

// Unavailable blocks every page while no model is loaded.
func (s *Server) Unavailable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.render(w, r, http.StatusServiceUnavailable, pageData{Fatal: fatalMessage(s.loadErr)})
	}
}

func fatalMessage(err error) string {
	switch {
	case errors.Is(err, classifier.ErrNoFeatureManifest):
		return "The model does not expose its expected input columns: " + err.Error()
	case errors.Is(err, classifier.ErrUnsupportedFormat):
		return "The model file uses an unsupported format version: " + err.Error()
	default:
		return "The prediction model could not be loaded: " + err.Error()
	}
}

// formValues keeps only schema keys; absent keys stay absent so the
// missing-attribute guard can fire.
func formValues(src map[string][]string) map[string]string {
	out := make(map[string]string)
	for _, f := range profile.Fields() {
		if v, ok := src[f.Key]; ok && len(v) > 0 {
			out[f.Key] = v[0]
		}
	}
	return out
}

func (s *Server) evaluate(r *http.Request, values map[string]string) (*inference.Outcome, int, error) {
	p, err := profile.Parse(values)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	outcome, err := s.svc.Evaluate(p)
	if err != nil {
		s.log.Error("prediction failed", zap.String("request_id", requestID(r)), zap.Error(err))
		return nil, http.StatusInternalServerError, err
	}
	return outcome, http.StatusOK, nil
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.RequestID = requestID(r)

	var b strings.Builder
	if err := s.pages.ExecuteTemplate(&b, "page", data); err != nil {
		s.log.Error("render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(b.String()))
}

