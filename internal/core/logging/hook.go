package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts the world name and file from the event context and
// adds them to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if name := GetWorld(ctx); name != "" {
		e.Str("world", name)
	}

	if path := GetWorldFile(ctx); path != "" {
		e.Str("world_file", path)
	}
}
