package sheets

import (
	"context"

	"volunteerhours/internal/core"
)

// Ports for outbound adapters.
type (
	// LogReader returns the volunteer logs kept from the data source.
	// Rows that fail validation are skipped and do not consume an ID.
	LogReader interface {
		ListLogs(ctx context.Context) ([]core.VolunteerLog, error)
	}
)
