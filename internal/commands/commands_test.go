package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mudmap/internal/core/config"
	"github.com/colonyops/mudmap/internal/printer"
	"github.com/colonyops/mudmap/internal/render"
)

const avalonWorld = `name: Avalon
areas:
  - {id: 1, name: Forest, color: "#007800"}
places:
  - {name: Gate, x: 0, y: 0, area: 1, exits: [{direction: north}]}
  - {name: Tower, x: 6, y: 4}
`

const avalonMeta = `# MUD Map (v2) world meta data file
ver 1.1
tile_size 80
enable_place_selection true
lp 0 -3 2
pcv 0 -1 1
`

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

func newTestFlags(t *testing.T) *Flags {
	t.Helper()
	dataDir := t.TempDir()
	cfg, err := config.Load("", dataDir)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(cfg.Worlds.Dir, 0o755))
	return &Flags{DataDir: dataDir, Config: cfg}
}

func writeWorld(t *testing.T, flags *Flags, name, content string) string {
	t.Helper()
	path := filepath.Join(flags.Config.Worlds.Dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, cmd registrar, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer

	app := &cli.Command{
		Name:      "mudmap",
		Writer:    &out,
		ErrWriter: &errOut,

		// keep cli.Exit from terminating the test binary
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	cmd.Register(app)

	ctx := printer.NewContext(context.Background(), printer.New(&errOut))
	err := app.Run(ctx, append([]string{"mudmap"}, args...))
	return out.String(), errOut.String(), err
}

func TestLs_JSON(t *testing.T) {
	flags := newTestFlags(t)
	avalon := writeWorld(t, flags, "avalon.yaml", avalonWorld)
	require.NoError(t, os.WriteFile(avalon+"_meta", []byte(avalonMeta), 0o644))
	writeWorld(t, flags, "sub/camelot.yml", "name: Camelot\n")
	writeWorld(t, flags, "notes.txt", "not a world")

	out, _, err := run(t, NewLsCmd(flags), "ls", "--json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)

	var first, second worldInfo
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, "avalon", first.Name)
	assert.Equal(t, "0 3 2", first.Position)
	assert.Equal(t, 80, first.TileSize)
	assert.Equal(t, 2, first.History)

	assert.Equal(t, "camelot", second.Name)
	assert.Empty(t, second.Position)
	assert.Zero(t, second.History)
}

func TestLs_Table(t *testing.T) {
	flags := newTestFlags(t)
	writeWorld(t, flags, "avalon.yaml", avalonWorld)

	out, _, err := run(t, NewLsCmd(flags), "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "avalon")
	assert.Contains(t, out, "avalon.yaml")
}

func TestLs_NoWorldsDir(t *testing.T) {
	flags := newTestFlags(t)
	flags.Config.Worlds.Dir = filepath.Join(t.TempDir(), "missing")

	out, _, err := run(t, NewLsCmd(flags), "ls", "--json")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMetaShow_JSON(t *testing.T) {
	flags := newTestFlags(t)
	avalon := writeWorld(t, flags, "avalon.yaml", avalonWorld)
	require.NoError(t, os.WriteFile(avalon+"_meta", []byte(avalonMeta+"tile_size big\n"), 0o644))

	out, _, err := run(t, NewMetaCmd(flags), "meta", "show", "--json", "avalon")
	require.NoError(t, err)

	var info metaInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "avalon", info.World)
	assert.Equal(t, "1.1", info.Version)
	assert.Equal(t, 80, info.TileSize)
	require.NotNil(t, info.SelectionEnabled)
	assert.True(t, *info.SelectionEnabled)
	require.NotNil(t, info.Current)
	assert.Equal(t, focusInfo{Layer: 0, X: 3, Y: 2}, *info.Current)
	assert.Equal(t, []focusInfo{{Layer: 0, X: 1, Y: 1}}, info.Previous)
	require.Len(t, info.Warnings, 1)
	assert.Equal(t, 7, info.Warnings[0].Line)
}

func TestMetaShow_Markdown(t *testing.T) {
	flags := newTestFlags(t)
	avalon := writeWorld(t, flags, "avalon.yaml", avalonWorld)
	require.NoError(t, os.WriteFile(avalon+"_meta", []byte(avalonMeta), 0o644))

	out, _, err := run(t, NewMetaCmd(flags), "meta", "show", avalon)
	require.NoError(t, err)

	out = ansi.Strip(out)
	assert.Contains(t, out, "avalon")
	assert.Contains(t, out, "80px")
	assert.Contains(t, out, "current")
}

func TestMetaShow_NothingSaved(t *testing.T) {
	flags := newTestFlags(t)
	writeWorld(t, flags, "avalon.yaml", avalonWorld)

	out, errOut, err := run(t, NewMetaCmd(flags), "meta", "show", "avalon")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "No view state saved")
}

func TestMetaReset(t *testing.T) {
	flags := newTestFlags(t)
	avalon := writeWorld(t, flags, "avalon.yaml", avalonWorld)
	require.NoError(t, os.WriteFile(avalon+"_meta", []byte(avalonMeta), 0o644))

	_, errOut, err := run(t, NewMetaCmd(flags), "meta", "reset", "avalon.yaml")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Removed")
	assert.NoFileExists(t, avalon+"_meta")
	assert.FileExists(t, avalon)
}

func TestMeta_UnknownWorld(t *testing.T) {
	flags := newTestFlags(t)

	_, _, err := run(t, NewMetaCmd(flags), "meta", "show", "lyonesse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `world "lyonesse" not found`)
}

func TestRender_SavedPosition(t *testing.T) {
	flags := newTestFlags(t)
	avalon := writeWorld(t, flags, "avalon.yaml", avalonWorld)
	require.NoError(t, os.WriteFile(avalon+"_meta", []byte(avalonMeta), 0o644))
	before, err := os.ReadFile(avalon + "_meta")
	require.NoError(t, err)

	out, _, err := run(t, NewRenderCmd(flags), "render", "--stats", "avalon")
	require.NoError(t, err)

	var res renderOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Avalon", res.World)
	assert.Equal(t, 80, res.TileSize)
	assert.Equal(t, focusInfo{Layer: 0, X: 3, Y: 2}, res.Focus)
	assert.Equal(t, 2, res.Stats.Places)
	assert.Empty(t, res.Ops)

	after, err := os.ReadFile(avalon + "_meta")
	require.NoError(t, err)
	assert.Equal(t, before, after, "render never writes view state")
}

func TestRender_Request(t *testing.T) {
	flags := newTestFlags(t)
	writeWorld(t, flags, "avalon.yaml", avalonWorld)

	reqPath := filepath.Join(t.TempDir(), "req.json")
	require.NoError(t, os.WriteFile(reqPath,
		[]byte(`{"tile_size": 120, "focus": {"layer": 0, "x": 0, "y": 0}, "selection": {"x": 0, "y": 0}}`), 0o644))

	out, _, err := run(t, NewRenderCmd(flags), "render", "--file", reqPath, "avalon")
	require.NoError(t, err)

	var res renderOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 120, res.TileSize)
	assert.Equal(t, 800, res.Width)
	assert.Equal(t, 600, res.Height)
	assert.Equal(t, 1, res.Stats.Places)
	assert.Zero(t, res.Stats.Failed)

	var texts, lines int
	for _, op := range res.Ops {
		switch op.Kind {
		case render.OpText:
			texts++
			assert.Equal(t, "Gate", op.Text)
		case render.OpLine:
			lines++
		}
	}
	assert.Equal(t, 1, texts)
	assert.Equal(t, 8, lines, "selection brackets")
}

func TestRender_InvalidViewport(t *testing.T) {
	flags := newTestFlags(t)
	writeWorld(t, flags, "avalon.yaml", avalonWorld)

	_, _, err := run(t, NewRenderCmd(flags), "render", "--width", "0", "avalon")
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	flags := newTestFlags(t)

	out, _, err := run(t, NewConfigValidateCmd(flags), "config", "validate", "--format", "json")
	require.NoError(t, err)

	var res struct {
		Valid bool `json:"valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
}

func TestConfigValidate_Errors(t *testing.T) {
	flags := newTestFlags(t)
	flags.Config.TUI.Theme = "neon"

	_, errOut, err := run(t, NewConfigValidateCmd(flags), "config", "validate")
	require.Error(t, err)
	assert.Contains(t, errOut, "neon")
	assert.Contains(t, errOut, "1 error(s) found")
}

func TestResolveWorld(t *testing.T) {
	flags := newTestFlags(t)
	avalon := writeWorld(t, flags, "avalon.yaml", avalonWorld)
	camelot := writeWorld(t, flags, "camelot.yml", "")

	tests := []struct {
		arg  string
		want string
	}{
		{arg: avalon, want: avalon},
		{arg: "avalon", want: avalon},
		{arg: "avalon.yaml", want: avalon},
		{arg: "camelot", want: camelot},
	}
	for _, tt := range tests {
		got, err := resolveWorld(flags.Config, tt.arg)
		require.NoError(t, err, tt.arg)
		assert.Equal(t, tt.want, got, tt.arg)
	}

	_, err := resolveWorld(flags.Config, "")
	require.Error(t, err)
}
