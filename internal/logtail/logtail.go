package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path, or every
// line when maxLines <= 0.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count, idx := 0, 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := range lines {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one parsed log line.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Caller  string
	Message string
	Fields  string
}

// Parse splits a zap console or JSON line. Unrecognized input is returned as
// the Message of an otherwise empty Entry.
func Parse(line string) Entry {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "{") {
		if e, ok := parseJSON(trimmed); ok {
			return e
		}
	}
	parts := strings.Split(line, "\t")
	if len(parts) < 3 || !isLevel(parts[1]) {
		return Entry{Message: line}
	}

	e := Entry{Time: parts[0], Level: strings.ToUpper(parts[1])}
	rest := parts[2:]
	// Named loggers add a name column before the caller.
	if len(rest) >= 3 && !strings.Contains(rest[0], ".go:") && strings.Contains(rest[1], ".go:") {
		e.Logger, rest = rest[0], rest[1:]
	}
	if len(rest) >= 2 && strings.Contains(rest[0], ".go:") {
		e.Caller, rest = rest[0], rest[1:]
	}
	e.Message = rest[0]
	if len(rest) > 1 {
		e.Fields = strings.Join(rest[1:], " ")
	}
	return e
}

func parseJSON(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	level, _ := raw["level"].(string)
	msg, _ := raw["msg"].(string)
	if level == "" && msg == "" {
		return Entry{}, false
	}
	e := Entry{Level: strings.ToUpper(level), Message: msg}
	e.Time, _ = raw["ts"].(string)
	e.Logger, _ = raw["logger"].(string)
	e.Caller, _ = raw["caller"].(string)
	for _, key := range []string{"level", "msg", "ts", "logger", "caller", "stacktrace"} {
		delete(raw, key)
	}
	if len(raw) > 0 {
		if fields, err := json.Marshal(raw); err == nil {
			e.Fields = string(fields)
		}
	}
	return e, true
}

func isLevel(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "INFO", "WARN", "ERROR", "DPANIC", "PANIC", "FATAL":
		return true
	}
	return false
}
