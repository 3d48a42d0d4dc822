package google

import (
	"fmt"
	"strings"

	"volunteerhours/internal/core"
)

// Column layout: A = name, B = date (YYYY-MM-DD), C = hours.
const (
	colName = iota
	colDate
	colHours
)

// parseLogs converts a values matrix (as returned by Sheets API) into logs.
// A row is kept only when name and date are non-empty and hours is a valid
// number. IDs count kept rows only, so skipped rows leave no gaps.
func parseLogs(values [][]interface{}) []core.VolunteerLog {
	logs := make([]core.VolunteerLog, 0, len(values))
	for _, raw := range values {
		row := toStrings(raw)
		name := safeGet(row, colName)
		date := safeGet(row, colDate)
		if name == "" || date == "" {
			continue
		}
		hours, err := core.ParseHours(safeGet(row, colHours))
		if err != nil {
			continue
		}
		logs = append(logs, core.VolunteerLog{
			ID:    len(logs) + 1,
			Name:  name,
			Date:  date,
			Hours: hours,
		})
	}
	return logs
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		if v == nil {
			continue
		}
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func safeGet(arr []string, idx int) string {
	if idx < 0 || idx >= len(arr) {
		return ""
	}
	return arr[idx]
}
