package services

import (
	"context"
	"errors"

	"volunteerhours/internal/core"
	"volunteerhours/internal/log"
	"volunteerhours/internal/sheets"
	"volunteerhours/internal/sheets/memory"
)

// HoursResolver decides where volunteer logs come from for a request.
// It never returns an error: failures degrade to the sample set.
type HoursResolver struct {
	remote   sheets.LogReader
	fallback *memory.Store
}

// NewHoursResolver creates a resolver. A nil remote means the spreadsheet is
// not configured and every request is served from fallback. A nil fallback
// uses the built-in sample logs.
func NewHoursResolver(remote sheets.LogReader, fallback *memory.Store) *HoursResolver {
	if fallback == nil {
		fallback = memory.NewSample()
	}
	return &HoursResolver{remote: remote, fallback: fallback}
}

// Configured reports whether a remote reader is wired in.
func (r *HoursResolver) Configured() bool {
	return r.remote != nil
}

// Resolve fetches the logs and tags them with their provenance.
func (r *HoursResolver) Resolve(ctx context.Context) core.FetchResult {
	logger := log.FromContext(ctx).WithComponent(log.ComponentResolver)

	if r.remote == nil {
		logger.DebugContext(ctx, "Spreadsheet not configured, serving sample logs",
			log.FieldSource, core.SourceFallback)
		return r.fallbackResult()
	}

	logs, err := r.remote.ListLogs(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to fetch from Google Sheets, serving sample logs",
			log.FieldError, err,
			log.FieldOperation, log.OpRead,
			log.FieldErrorType, classify(ctx, err),
			log.FieldSource, core.SourceFallback)
		return r.fallbackResult()
	}

	if len(logs) == 0 {
		logger.InfoContext(ctx, "Spreadsheet returned no usable rows", log.FieldSource, core.SourceEmpty)
		return core.FetchResult{Source: core.SourceEmpty, Logs: []core.VolunteerLog{}}
	}

	logger.DebugContext(ctx, "Logs fetched from spreadsheet",
		log.FieldSource, core.SourceRemote,
		log.FieldLogCount, len(logs))
	return core.FetchResult{Source: core.SourceRemote, Logs: logs}
}

func (r *HoursResolver) fallbackResult() core.FetchResult {
	return core.FetchResult{Source: core.SourceFallback, Logs: r.fallback.Logs()}
}

func classify(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return log.ErrorTypeTimeout
	}
	return log.ErrorTypeNetwork
}
