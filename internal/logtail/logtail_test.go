package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if len(got) != 0 {
		t.Fatalf("Read() = %v, want no lines", got)
	}
}

func TestParse(t *testing.T) {
	line := `{"level":"warn","ts":"2026-10-16T10:00:00Z","caller":"detail/loader.go:80","msg":"species fetch failed","id":25,"error":"network down"}`
	entry := Parse(line)

	if entry.Level != "WARN" {
		t.Fatalf("Level = %q, want %q", entry.Level, "WARN")
	}
	if entry.Message != "species fetch failed" {
		t.Fatalf("Message = %q, want %q", entry.Message, "species fetch failed")
	}
	want := time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC)
	if !entry.Time.Equal(want) {
		t.Fatalf("Time = %v, want %v", entry.Time, want)
	}
	wantFields := []Field{{Key: "error", Value: "network down"}, {Key: "id", Value: "25"}}
	if !reflect.DeepEqual(entry.Fields, wantFields) {
		t.Fatalf("Fields = %#v, want %#v", entry.Fields, wantFields)
	}
}

func TestParse_PlainLinePassesThrough(t *testing.T) {
	for _, line := range []string{"", "plain text", "{not json"} {
		entry := Parse(line)
		if got := entry.Format(); got != line {
			t.Fatalf("Parse(%q).Format() = %q, want unchanged", line, got)
		}
	}
}

func TestEntryFormat(t *testing.T) {
	entry := Entry{
		Level:   "ERROR",
		Message: "page load failed",
		Fields:  []Field{{Key: "offset", Value: "20"}},
	}
	if got, want := entry.Format(), "ERROR page load failed offset=20"; got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}
