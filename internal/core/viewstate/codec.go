package viewstate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/colonyops/mudmap/internal/core/viewport"
)

var (
	errFieldCount  = errors.New("wrong number of fields")
	errNotFinite   = errors.New("coordinate is not finite")
	errBadBool     = errors.New("expected true or false")
	errBadVersion  = errors.New("expected <major>.<minor>")
	errNewerFormat = errors.New("file was written by a newer format version")
	errLineTooLong = errors.New("line too long")
)

// maxLineLength is the longest line Read interprets. Longer lines are
// skipped with a warning.
const maxLineLength = 64 * 1024

// Read parses a view-state file. Lines that cannot be parsed are skipped and
// reported in State.Warnings; the returned error is only set when reading
// from r fails.
func Read(r io.Reader) (State, error) {
	var st State

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return st, fmt.Errorf("read view state: %w", err)
		}
		if raw == "" && err != nil {
			break
		}
		lineNo++

		line := strings.TrimSpace(raw)
		switch {
		case line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//"):
		case len(line) > maxLineLength:
			st.Warnings = append(st.Warnings, Warning{Line: lineNo, Directive: directiveOf(line), Err: errLineTooLong})
		default:
			fields := strings.Fields(line)
			directive, args := fields[0], fields[1:]
			if err := st.apply(directive, args); err != nil {
				st.Warnings = append(st.Warnings, Warning{Line: lineNo, Directive: directive, Err: err})
			}
		}

		if err != nil {
			break
		}
	}

	return st, nil
}

// directiveOf returns the first token of line, shortened for warnings.
func directiveOf(line string) string {
	d, _, _ := strings.Cut(line, " ")
	if len(d) > 32 {
		d = d[:32]
	}
	return d
}

func (st *State) apply(directive string, args []string) error {
	switch directive {
	case dirVersion:
		v, err := parseVersion(args)
		if err != nil {
			return err
		}
		st.Version = v
		if v.Major > VersionMajor {
			return fmt.Errorf("%w: %s", errNewerFormat, v)
		}
	case dirTileSize:
		if len(args) < 1 {
			return errFieldCount
		}
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		st.TileSize = size
	case dirSelection:
		if len(args) < 1 {
			return errFieldCount
		}
		b, err := parseBool(args[0])
		if err != nil {
			return err
		}
		st.SelectionEnabled = b
		st.HasSelection = true
	case dirLast:
		f, err := parseFocus(args)
		if err != nil {
			return err
		}
		st.Current = &f
	case dirPrevious:
		f, err := parseFocus(args)
		if err != nil {
			return err
		}
		st.Previous = append(st.Previous, f)
	}
	return nil
}

func parseVersion(args []string) (Version, error) {
	if len(args) < 1 {
		return Version{}, errFieldCount
	}
	major, minor, ok := strings.Cut(args[0], ".")
	if !ok {
		return Version{}, errBadVersion
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, errBadVersion
	}
	mnr, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, errBadVersion
	}
	return Version{Major: maj, Minor: mnr}, nil
}

func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	default:
		return false, fmt.Errorf("%w, got %q", errBadBool, s)
	}
}

// parseFocus reads "<layer> <neg_x> <y>".
func parseFocus(args []string) (viewport.Focus, error) {
	if len(args) < 3 {
		return viewport.Focus{}, errFieldCount
	}

	layer, err := strconv.Atoi(args[0])
	if err != nil {
		return viewport.Focus{}, err
	}
	negX, err := parseCoord(args[1])
	if err != nil {
		return viewport.Focus{}, err
	}
	y, err := parseCoord(args[2])
	if err != nil {
		return viewport.Focus{}, err
	}

	return viewport.NewFocus(layer, -negX, y), nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", errNotFinite, s)
	}
	return v, nil
}

// Write serializes st. The current position is written as "lp" and the
// previous ones as "pcv" lines in the order of st.Previous.
func Write(w io.Writer, st State) error {
	bw := bufio.NewWriter(w)

	v := st.Version
	if v.IsZero() {
		v = Version{Major: VersionMajor, Minor: VersionMinor}
	}

	lines := []string{
		Header,
		dirVersion + " " + v.String(),
		dirTileSize + " " + strconv.Itoa(st.TileSize),
		dirSelection + " " + strconv.FormatBool(st.SelectionEnabled),
	}
	if st.Current != nil {
		lines = append(lines, dirLast+" "+formatFocus(*st.Current))
	}
	for _, f := range st.Previous {
		lines = append(lines, dirPrevious+" "+formatFocus(f))
	}

	for _, l := range lines {
		if _, err := bw.WriteString(l + "\n"); err != nil {
			return fmt.Errorf("write view state: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write view state: %w", err)
	}
	return nil
}

func formatFocus(f viewport.Focus) string {
	return strconv.Itoa(f.Layer) + " " + formatCoord(-f.X) + " " + formatCoord(f.Y)
}

// formatCoord prints v the way the legacy editor did, keeping a ".0" on
// integral values so either program can read the other's files.
func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
