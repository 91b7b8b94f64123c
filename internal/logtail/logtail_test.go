package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "carlot.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, expectedAll},
		{"read all (negative)", -1, expectedAll},
		{"read partial (5)", 5, expectedAll[5:]},
		{"read exactly all (10)", 10, expectedAll},
		{"read more than exists (20)", 20, expectedAll},
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
	got, err := Read(filepath.Join(t.TempDir(), "absent.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Entry
	}{
		{
			name:  "console with caller and fields",
			input: "2026-01-02T15:04:05.000Z\tINFO\tapp/loader.go:42\tlistings loaded\t{\"count\": 3}",
			want: Entry{
				Time:    "2026-01-02T15:04:05.000Z",
				Level:   "INFO",
				Caller:  "app/loader.go:42",
				Message: "listings loaded",
				Fields:  "{\"count\": 3}",
			},
		},
		{
			name:  "console named logger",
			input: "2026-01-02T15:04:05.000Z\tWARN\tcache\tcache/cache.go:88\tcache read failed\t{\"key\": \"k\"}",
			want: Entry{
				Time:    "2026-01-02T15:04:05.000Z",
				Level:   "WARN",
				Logger:  "cache",
				Caller:  "cache/cache.go:88",
				Message: "cache read failed",
				Fields:  "{\"key\": \"k\"}",
			},
		},
		{
			name:  "console without caller",
			input: "2026-01-02T15:04:05.000Z\tdebug\tplain message",
			want:  Entry{Time: "2026-01-02T15:04:05.000Z", Level: "DEBUG", Message: "plain message"},
		},
		{
			name:  "json",
			input: `{"level":"error","ts":"2026-01-02T15:04:05.000Z","caller":"app/loader.go:50","msg":"listings load failed","error":"boom"}`,
			want: Entry{
				Time:    "2026-01-02T15:04:05.000Z",
				Level:   "ERROR",
				Caller:  "app/loader.go:50",
				Message: "listings load failed",
				Fields:  `{"error":"boom"}`,
			},
		},
		{
			name:  "unrecognized",
			input: "panic: runtime error",
			want:  Entry{Message: "panic: runtime error"},
		},
		{
			name:  "tabs without level",
			input: "a\tb\tc",
			want:  Entry{Message: "a\tb\tc"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
