package logtail

import (
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Attr is one key=value pair of a log line, in the order written.
type Attr struct {
	Key   string
	Value string
}

// Entry is a parsed log line.
type Entry struct {
	Time     time.Time
	Level    slog.Level
	HasLevel bool
	Message  string
	Attrs    []Attr
	Raw      string
}

// Attr returns the value for key.
func (e Entry) Attr(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// ParseLines parses every line.
func ParseLines(lines []string) []Entry {
	out := make([]Entry, 0, len(lines))
	for _, line := range lines {
		out = append(out, ParseLine(line))
	}
	return out
}

// ParseLine reads a line produced by slog.NewTextHandler.
func ParseLine(line string) Entry {
	entry := Entry{Raw: line}
	pairs, ok := splitPairs(line)
	if !ok {
		entry.Message = line
		return entry
	}
	for _, a := range pairs {
		switch a.Key {
		case slog.TimeKey:
			if ts, err := time.Parse(time.RFC3339Nano, a.Value); err == nil {
				entry.Time = ts
				continue
			}
			entry.Attrs = append(entry.Attrs, a)
		case slog.LevelKey:
			var level slog.Level
			if err := level.UnmarshalText([]byte(a.Value)); err == nil {
				entry.Level = level
				entry.HasLevel = true
				continue
			}
			entry.Attrs = append(entry.Attrs, a)
		case slog.MessageKey:
			entry.Message = a.Value
		default:
			entry.Attrs = append(entry.Attrs, a)
		}
	}
	return entry
}

// AtLeast keeps entries at or above min. Entries without a level are kept.
func AtLeast(entries []Entry, min slog.Level) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !e.HasLevel || e.Level >= min {
			out = append(out, e)
		}
	}
	return out
}

// splitPairs tokenizes key=value pairs, where value may be a Go-quoted
// string. It fails on anything that is not a pair.
func splitPairs(line string) ([]Attr, bool) {
	var out []Attr
	rest := strings.TrimSpace(line)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 || strings.ContainsAny(rest[:eq], " \"") {
			return nil, false
		}
		key := rest[:eq]
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := closingQuote(rest)
			if end < 0 {
				return nil, false
			}
			unquoted, err := strconv.Unquote(rest[:end+1])
			if err != nil {
				return nil, false
			}
			value = unquoted
			rest = rest[end+1:]
		} else {
			sp := strings.IndexByte(rest, ' ')
			if sp < 0 {
				sp = len(rest)
			}
			value = rest[:sp]
			rest = rest[sp:]
		}
		out = append(out, Attr{Key: key, Value: value})
		rest = strings.TrimLeft(rest, " ")
	}
	return out, len(out) > 0
}

func closingQuote(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
