package printer

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext(context.Background(), New(&buf))

	p := Ctx(ctx)
	p.Section("Worlds")
	p.Successf("loaded %d", 3)
	p.Warnf("skipped %s", "a.yaml")
	p.Errorf("failed")
	p.Printf("  plain")

	assert.Equal(t, "Worlds\n✓ loaded 3\n! skipped a.yaml\n✗ failed\n  plain\n", ansi.Strip(buf.String()))
}

func TestCtx_Default(t *testing.T) {
	assert.NotNil(t, Ctx(context.Background()))
}
