package http

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"volunteerhours/internal/core"
	"volunteerhours/internal/log"
)

const hoursTemplate = "hours.html"

// handleHealth performs basic liveness check
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports template and backend status. It never calls the
// spreadsheet: fallback mode is a valid ready state.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	status := "ready"
	httpStatus := http.StatusOK
	checks := map[string]any{}

	if s.templatesErr != nil {
		checks["templates"] = "failed: " + s.templatesErr.Error()
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	backend := "fallback"
	if s.resolver != nil && s.resolver.Configured() {
		backend = "sheets"
	}
	checks["backend"] = backend

	writeJSON(w, r, httpStatus, map[string]any{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/hours", http.StatusFound)
}

// handleVolunteerHours returns every log with its provenance tag.
// The status is always 200; failures show up as source "fallback".
func (s *Server) handleVolunteerHours(w http.ResponseWriter, r *http.Request) {
	res := s.fetch(r.Context())
	writeJSON(w, r, http.StatusOK, res)
}

// handleSummary returns the per-volunteer totals for the requested range.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	params := ParseRangeParams(r.URL.Query())
	res := s.fetch(r.Context())
	sum := core.Summarize(res.Logs, params.Range)

	log.FromContext(r.Context()).DebugContext(r.Context(), "Summary computed",
		log.NewFields().
			WithOperation(log.OpSummarize).
			WithRange(params.Range.FromString(), params.Range.ToString()).
			ToSlice()...)

	writeJSON(w, r, http.StatusOK, summaryResponse{
		Source:     res.Source,
		From:       params.Range.FromString(),
		To:         params.Range.ToString(),
		Rows:       sum.Rows,
		TotalHours: sum.TotalHours,
	})
}

// handleHoursPage renders the filter form and the totals table.
func (s *Server) handleHoursPage(w http.ResponseWriter, r *http.Request) {
	logger := log.FromContext(r.Context())
	if s.templates == nil {
		logger.ErrorContext(r.Context(), "Templates not loaded",
			log.FieldPath, r.URL.Path,
			log.FieldError, s.templatesErr)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	params := ParseRangeParams(r.URL.Query())
	res := s.fetch(r.Context())
	sum := core.Summarize(res.Logs, params.Range)
	data := newHoursPage(res.Source, params, sum, s.now())

	// Render into a buffer so a template failure can still produce a clean 500.
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, hoursTemplate, data); err != nil {
		logger.ErrorContext(r.Context(), "Template execution failed",
			log.FieldError, err,
			log.FieldOperation, log.OpRender,
			log.FieldTemplate, hoursTemplate)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// fetch resolves the logs under the outbound timeout.
func (s *Server) fetch(ctx context.Context) core.FetchResult {
	if s.resolver == nil {
		return core.FetchResult{Source: core.SourceEmpty, Logs: []core.VolunteerLog{}}
	}
	ctx, cancel := context.WithTimeout(ctx, s.sheetsTimeout)
	defer cancel()
	res := s.resolver.Resolve(ctx)
	if res.Logs == nil {
		res.Logs = []core.VolunteerLog{}
	}
	return res
}
