package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

// JSON writes data as indented JSON to the given writer.
func JSON(w io.Writer, data interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorResponse is the JSON envelope for structured error output.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details map[string]any `json:"details,omitempty"`
}

// JSONError writes a structured error to the given writer as JSON.
func JSONError(w io.Writer, code, msg string, details map[string]any) {
	resp := ErrorResponse{Error: msg, Code: code, Details: details}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp) // best-effort; if writer fails, nothing we can do
}

// Day describes one date in list and phase output.
type Day struct {
	Date     date.Date    `json:"date"`
	Weekday  string       `json:"weekday"`
	YearDay  int          `json:"year_day"`
	Ordinal  date.Ordinal `json:"ordinal"`
	Phase    moon.Phase   `json:"phase"`
	Today    bool         `json:"today,omitempty"`
	Center   bool         `json:"center,omitempty"`
	NextFull *date.Date   `json:"next_full,omitempty"`
	NextNew  *date.Date   `json:"next_new,omitempty"`
}

// DayFromRow converts a frame row.
func DayFromRow(r engine.Row) Day {
	return Day{
		Date:    r.Date,
		Weekday: r.Date.Weekday().String(),
		YearDay: r.Date.YearDay(),
		Ordinal: r.Date.Ordinal(),
		Phase:   r.Phase,
		Today:   r.Today,
		Center:  r.Center,
	}
}

// DaysFromFrame converts every row of a frame.
func DaysFromFrame(rows []engine.Row) []Day {
	days := make([]Day, len(rows))
	for i, r := range rows {
		days[i] = DayFromRow(r)
	}
	return days
}

// BatchResult represents the outcome for one argument of a multi-date command.
type BatchResult struct {
	Input string `json:"input"`
	OK    bool   `json:"ok"`
	Day   *Day   `json:"day,omitempty"`
	Error string `json:"error,omitempty"`
	Code  string `json:"code,omitempty"`
}
