package httpapi

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, falls back to log.Printf.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// LogLevel controls per-request logging behavior.
type LogLevel int

const (
	LevelOff LogLevel = iota
	LevelError
	LevelInfo
	LevelDebug
)

func parseLevel(s string) LogLevel {
	switch s {
	case "off", "":
		return LevelOff
	case "error":
		return LevelError
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// global default, read once
var defaultLogLevel = func() LogLevel {
	if v := os.Getenv("YIELDD_REQUEST_LOG"); v != "" {
		return parseLevel(v)
	}
	return LevelInfo
}()

// SetDefaultLogLevel overrides the level used when a request carries no
// override.
func SetDefaultLogLevel(s string) { defaultLogLevel = parseLevel(s) }

func requestLogLevel(r *http.Request) LogLevel {
	// Per-request overrides
	if v := r.URL.Query().Get("log"); v != "" {
		if v == "1" {
			return LevelDebug
		}
		return parseLevel(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseLevel(v)
	}
	return defaultLogLevel
}

// logPredictEnd records the outcome of one prediction request. Errors are
// logged from LevelError up, successes from LevelInfo up.
func logPredictEnd(r *http.Request, lvl LogLevel, status int, start time.Time, predictionID string, err error) {
	if lvl == LevelOff || (err == nil && lvl < LevelInfo) {
		return
	}
	dur := time.Since(start)
	if zlog == nil {
		log.Printf("predict end path=%s status=%d dur=%s id=%s err=%v", r.URL.Path, status, dur, predictionID, err)
		return
	}
	z := zlog.Info()
	if err != nil {
		z = zlog.Warn().Err(err)
	}
	z = z.Str("path", r.URL.Path).Int("status", status).Dur("dur", dur)
	if predictionID != "" {
		z = z.Str("prediction_id", predictionID)
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		z = z.Str("request_id", rid)
	}
	z.Msg("predict end")
}

// logDebugInput dumps the decoded form values at debug level.
func logDebugInput(r *http.Request, lvl LogLevel, in any) {
	if lvl < LevelDebug {
		return
	}
	if zlog == nil {
		log.Printf("predict input path=%s input=%+v", r.URL.Path, in)
		return
	}
	zlog.Debug().Str("path", r.URL.Path).Interface("input", in).Msg("predict input")
}
