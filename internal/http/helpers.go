package http

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"volunteerhours/internal/core"
	"volunteerhours/internal/log"
)

const (
	emptyRangeMessage = "선택한 기간에 해당하는 봉사 기록이 없습니다."
	recentDays        = 30
)

var badgeText = map[core.Source]string{
	core.SourceRemote:   "Google 스프레드시트에서 불러온 데이터",
	core.SourceFallback: "예시(임시) 데이터 사용 중",
	core.SourceEmpty:    "데이터가 비어 있습니다",
}

type summaryResponse struct {
	Source     core.Source           `json:"source"`
	From       string                `json:"from"`
	To         string                `json:"to"`
	Rows       []core.VolunteerTotal `json:"rows"`
	TotalHours float64               `json:"totalHours"`
}

type hoursRow struct {
	Name     string
	Hours    string
	Sessions string
}

type hoursPage struct {
	Source       core.Source
	Badge        string
	From         string
	To           string
	RecentURL    string
	AllURL       string
	Rows         []hoursRow
	TotalHours   string
	EmptyMessage string
}

// BadgeText returns the provenance label shown next to the page title.
func BadgeText(src core.Source) string {
	return badgeText[src]
}

func newHoursPage(src core.Source, params RangeParams, sum core.Summary, now time.Time) hoursPage {
	rows := make([]hoursRow, 0, len(sum.Rows))
	for _, r := range sum.Rows {
		rows = append(rows, hoursRow{
			Name:     r.Name,
			Hours:    core.FormatHours(r.TotalHours),
			Sessions: core.FormatSessions(r.SessionCount),
		})
	}

	// Echo the raw input back into the form so a malformed bound stays visible.
	return hoursPage{
		Source:       src,
		Badge:        BadgeText(src),
		From:         params.RawFrom,
		To:           params.RawTo,
		RecentURL:    hoursURL(core.RecentRange(now, recentDays)),
		AllURL:       hoursURL(core.DateRange{}),
		Rows:         rows,
		TotalHours:   core.FormatHours(sum.TotalHours),
		EmptyMessage: emptyRangeMessage,
	}
}

func hoursURL(rng core.DateRange) string {
	if rng.IsZero() {
		return "/hours"
	}
	q := url.Values{}
	if v := rng.FromString(); v != "" {
		q.Set("from", v)
	}
	if v := rng.ToString(); v != "" {
		q.Set("to", v)
	}
	return "/hours?" + q.Encode()
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to encode JSON response",
			log.FieldError, err,
			log.FieldPath, r.URL.Path)
	}
}
