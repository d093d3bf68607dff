package logging

import "context"

type contextKey string

const (
	worldKey     contextKey = "world"
	worldFileKey contextKey = "world_file"
)

// WithWorld adds a world name to the context.
func WithWorld(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, worldKey, name)
}

// WithWorldFile adds the path of the world file to the context.
func WithWorldFile(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, worldFileKey, path)
}

// GetWorld retrieves the world name from the context.
// Returns empty string if not present.
func GetWorld(ctx context.Context) string {
	if v, ok := ctx.Value(worldKey).(string); ok {
		return v
	}
	return ""
}

// GetWorldFile retrieves the world file path from the context.
// Returns empty string if not present.
func GetWorldFile(ctx context.Context) string {
	if v, ok := ctx.Value(worldFileKey).(string); ok {
		return v
	}
	return ""
}
