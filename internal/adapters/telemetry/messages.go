package telemetry

import (
	"time"
)

// MsgInitManifests resets the UI with the manifest set about to be checked.
type MsgInitManifests struct {
	Manifests []string
}

// MsgCheckStart indicates a manifest check (span) has started.
type MsgCheckStart struct {
	SpanID    string
	Name      string
	StartTime time.Time
}

// MsgCheckLog carries a chunk of finding output for a specific check.
type MsgCheckLog struct {
	SpanID string
	Data   []byte
}

// MsgCheckComplete indicates a manifest check (span) has finished.
type MsgCheckComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}
