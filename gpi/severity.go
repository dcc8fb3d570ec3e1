package gpi

import (
	"context"
	"log/slog"
)

// Severity classifies a simulator API error, per spec.md §7.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityCritical:
		return "Critical"
	default:
		return "Severity(?)"
	}
}

// SlogLevel maps a Severity onto the nearest log/slog level. Critical maps
// to LevelError; the caller is additionally responsible for tearing the
// simulation down (see Registry.ReportCritical).
func (s Severity) SlogLevel() slog.Level {
	switch s {
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	case SeverityError, SeverityCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelTrace is a diagnostic level quieter than Info, mirroring the
// teacher's log/slog.Level-above-LevelInfo custom-level convention (here
// placed below LevelInfo instead, since GPI trace output is high-volume
// per-callback chatter rather than the occasional waveform snapshot).
const LevelTrace slog.Level = slog.LevelDebug - 4

// Trace logs at LevelTrace through the default slog logger.
func Trace(msg string, args ...any) {
	slog.Default().Log(context.Background(), LevelTrace, msg, args...)
}
