package logx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "debug"
	}
}

// ParseLevel maps a level name from config to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

const messageLimit = 2 * 1024

var (
	mu       sync.RWMutex
	minLevel           = LevelWarn
	out      io.Writer = io.Discard
	verbose  bool
)

// SetOutput sets the destination for logs. A nil writer discards output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	out = w
	mu.Unlock()
}

// SetMinLevel sets the minimum level to emit.
func SetMinLevel(l Level) { mu.Lock(); minLevel = l; mu.Unlock() }

// SetVerbose toggles verbose output (no truncation of large fields/messages).
func SetVerbose(v bool) { mu.Lock(); verbose = v; mu.Unlock() }

// Verbose returns whether verbose output is enabled.
func Verbose() bool { mu.RLock(); defer mu.RUnlock(); return verbose }

// Enabled reports whether messages at l are currently emitted.
func Enabled(l Level) bool { mu.RLock(); defer mu.RUnlock(); return l >= minLevel }

// StdlogWriter wraps writes as structured JSON lines at a fixed level.
// The standard library logger (and bubbletea's LogToFile) can write here.
func StdlogWriter(level Level, w io.Writer) io.Writer {
	if w == nil {
		w = os.Stderr
	}
	return &stdlogWriter{level: level, w: w}
}

type stdlogWriter struct {
	level Level
	w     io.Writer
}

func (sw *stdlogWriter) Write(p []byte) (int, error) {
	lines := bytes.Split(p, []byte("\n"))
	written := 0
	for _, line := range lines {
		if len(line) == 0 {
			continue
		}
		if err := emit(sw.w, sw.level, string(line), nil); err != nil {
			return written, err
		}
		written += len(line) + 1 // account for newline
	}
	return written, nil
}

// Debugf logs a debug message.
func Debugf(format string, args ...any) { logf(LevelDebug, format, args...) }

// Infof logs an info message.
func Infof(format string, args ...any) { logf(LevelInfo, format, args...) }

// Warnf logs a warning message.
func Warnf(format string, args ...any) { logf(LevelWarn, format, args...) }

// Errorf logs an error message.
func Errorf(format string, args ...any) { logf(LevelError, format, args...) }

// Debugw logs a debug message with alternating key/value fields.
func Debugw(msg string, kv ...any) { logw(LevelDebug, msg, kv) }

// Infow logs an info message with alternating key/value fields.
func Infow(msg string, kv ...any) { logw(LevelInfo, msg, kv) }

// Warnw logs a warning with alternating key/value fields.
func Warnw(msg string, kv ...any) { logw(LevelWarn, msg, kv) }

// Errorw logs an error with alternating key/value fields.
func Errorw(msg string, kv ...any) { logw(LevelError, msg, kv) }

func logf(lvl Level, format string, args ...any) {
	if !Enabled(lvl) {
		return
	}
	mu.RLock()
	w := out
	mu.RUnlock()
	_ = emit(w, lvl, fmt.Sprintf(format, args...), nil)
}

func logw(lvl Level, msg string, kv []any) {
	if !Enabled(lvl) {
		return
	}
	mu.RLock()
	w := out
	mu.RUnlock()
	_ = emit(w, lvl, msg, fieldsOf(kv))
}

// fieldsOf pairs up kv. A dangling key is kept with a nil value.
func fieldsOf(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	fields := make(map[string]any, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		var val any
		if i+1 < len(kv) {
			val = kv[i+1]
		}
		if err, ok := val.(error); ok {
			val = err.Error()
		}
		fields[key] = val
	}
	return fields
}

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	Msg    string         `json:"msg"`
	Fields map[string]any `json:"fields,omitempty"`
}

func emit(w io.Writer, lvl Level, msg string, fields map[string]any) error {
	mu.RLock()
	ml := minLevel
	v := verbose
	mu.RUnlock()
	if lvl < ml {
		return nil
	}
	if !v {
		msg = truncate(msg, messageLimit)
		for k, val := range fields {
			if s, ok := val.(string); ok {
				fields[k] = truncate(s, messageLimit)
			}
		}
	}
	e := entry{
		TS:     time.Now().Format(time.RFC3339Nano),
		Level:  lvl.String(),
		Msg:    msg,
		Fields: fields,
	}
	b, err := json.Marshal(e)
	if err != nil {
		// fallback to plain message
		_, err2 := io.WriteString(w, msg+"\n")
		return err2
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	// keep last 10 chars to aid context
	suffix := "… [truncated]"
	if limit > len(suffix)+10 {
		head := s[:limit-len(suffix)-10]
		tail := s[len(s)-10:]
		return head + suffix + tail
	}
	return s[:limit]
}
