package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithWorld(t *testing.T) {
	ctx := WithWorld(context.Background(), "avalon")
	assert.Equal(t, "avalon", GetWorld(ctx))
	assert.Empty(t, GetWorldFile(ctx))
}

func TestWithWorldFile(t *testing.T) {
	ctx := WithWorldFile(context.Background(), "/worlds/avalon.yaml")
	assert.Equal(t, "/worlds/avalon.yaml", GetWorldFile(ctx))
	assert.Empty(t, GetWorld(ctx))
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetWorld(ctx))
	assert.Empty(t, GetWorldFile(ctx))
}
