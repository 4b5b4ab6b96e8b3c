package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"
	"time"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// StdLogger writes entries through the standard library logger, dropping
// anything below the minimum level
type StdLogger struct {
	out      *log.Logger
	minLevel int
	json     bool
	now      func() time.Time
}

// NewStdLogger creates a logger. format is "text" or "json"; level is one
// of debug, info, warn, error.
func NewStdLogger(w io.Writer, level, format string) *StdLogger {
	return &StdLogger{
		out:      log.New(w, "", 0),
		minLevel: ParseLevel(level),
		json:     strings.EqualFold(format, "json"),
		now:      time.Now,
	}
}

// ParseLevel maps a config level name to its rank. Unknown names mean info.
func ParseLevel(level string) int {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return levelRank[LevelDebug]
	case "warn", "warning":
		return levelRank[LevelWarn]
	case "error":
		return levelRank[LevelError]
	default:
		return levelRank[LevelInfo]
	}
}

func (l *StdLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	if rank < l.minLevel {
		return
	}

	ts := l.now().UTC().Format(time.RFC3339)
	if l.json {
		entry := make(map[string]interface{}, len(metadata)+3)
		for k, v := range metadata {
			entry[k] = v
		}
		entry["time"] = ts
		entry["level"] = level
		entry["msg"] = message
		data, err := json.Marshal(entry)
		if err != nil {
			l.out.Printf(`{"time":%q,"level":%q,"msg":%q}`, ts, level, message)
			return
		}
		l.out.Print(string(data))
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s", ts, level, message)
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, metadata[k])
	}
	l.out.Print(b.String())
}
