package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/twiced-technology-gmbh/nhmoon/internal/date"
	"github.com/twiced-technology-gmbh/nhmoon/internal/engine"
	"github.com/twiced-technology-gmbh/nhmoon/internal/moon"
)

func sampleDays() []Day {
	rows := []engine.Row{
		{Date: date.MustParse("2025-01-14"), Phase: moon.Full},
		{Date: date.MustParse("2025-01-15"), Phase: moon.Full, Center: true, Today: true},
		{Date: date.MustParse("2025-01-17"), Phase: moon.None},
	}
	return DaysFromFrame(rows)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name                  string
		env                   string
		jsonF, table, compact bool
		want                  Format
	}{
		{"default", "", false, false, false, FormatTable},
		{"json flag", "", true, false, false, FormatJSON},
		{"compact wins over table", "", false, true, true, FormatCompact},
		{"env json", "json", false, false, false, FormatJSON},
		{"env oneline", "oneline", false, false, false, FormatCompact},
		{"flag beats env", "json", false, true, false, FormatTable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvOutput, tt.env)
			if got := Detect(tt.jsonF, tt.table, tt.compact); got != tt.want {
				t.Fatalf("Detect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayTable(t *testing.T) {
	DisableColor()
	var buf bytes.Buffer
	DayTable(&buf, sampleDays())
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header and 3 rows, got:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "DATE") || !strings.Contains(lines[0], "PHASE") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[2], "2025-01-15") || !strings.Contains(lines[2], "full") ||
		!strings.HasSuffix(lines[2], "today,center") {
		t.Fatalf("unexpected center row %q", lines[2])
	}
	if !strings.Contains(lines[3], "Fri") || !strings.HasSuffix(lines[3], "--") {
		t.Fatalf("unexpected plain row %q", lines[3])
	}
}

func TestDayCompact(t *testing.T) {
	var buf bytes.Buffer
	DayCompact(&buf, sampleDays())
	want := "2025-01-14 Tue [full]\n2025-01-15 Wed [full] today *\n2025-01-17 Fri\n"
	if buf.String() != want {
		t.Fatalf("unexpected compact output:\n%s", buf.String())
	}
}

func TestDayDetail(t *testing.T) {
	DisableColor()
	d := sampleDays()[2]
	next := date.MustParse("2025-02-12")
	d.NextFull = &next

	var buf bytes.Buffer
	DayDetail(&buf, d)
	out := buf.String()
	for _, want := range []string{"2025-01-17", "Friday", "Next full:   2025-02-12", "Next new:    --"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}

	buf.Reset()
	DayDetailCompact(&buf, d)
	if got := buf.String(); got != "2025-01-17 Fri yday:17 next_full:2025-02-12\n" {
		t.Fatalf("unexpected compact detail %q", got)
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, sampleDays()[1]); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if got["date"] != "2025-01-15" || got["phase"] != "full" || got["weekday"] != "Wednesday" || got["today"] != true {
		t.Fatalf("unexpected JSON %v", got)
	}
	if _, ok := got["next_full"]; ok {
		t.Fatal("next_full should be omitted when unset")
	}
}

func TestJSONError(t *testing.T) {
	var buf bytes.Buffer
	JSONError(&buf, "INVALID_DATE", "bad date", map[string]any{"input": "2025-13-01"})
	var resp ErrorResponse
	if err := json.Unmarshal(buf.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Code != "INVALID_DATE" || resp.Error != "bad date" || resp.Details["input"] != "2025-13-01" {
		t.Fatalf("unexpected envelope %+v", resp)
	}
}
