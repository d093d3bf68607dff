package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/colonyops/mudmap/internal/core/action"
)

// hostKeys are handled by the terminal host before the session keymap.
type hostKeys struct {
	Quit  key.Binding
	Help  key.Binding
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

func defaultHostKeys() hostKeys {
	return hostKeys{
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "pan north")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "pan south")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan west")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan east")),
	}
}

// withoutConflicts unbinds host keys that the user bound to a map action.
func (k hostKeys) withoutConflicts(km action.Keymap) hostKeys {
	for _, b := range []*key.Binding{&k.Quit, &k.Help, &k.Up, &k.Down, &k.Left, &k.Right} {
		keys := slices.DeleteFunc(slices.Clone(b.Keys()), func(s string) bool {
			_, bound := km[s]
			return bound
		})
		if len(keys) == 0 {
			b.Unbind()
			continue
		}
		b.SetKeys(keys...)
	}
	return k
}

// keyMap adapts the host keys and the session keymap to help.KeyMap.
type keyMap struct {
	host    hostKeys
	actions []key.Binding
}

func newKeyMap(host hostKeys, km action.Keymap) keyMap {
	// one binding per action, keys sorted for a stable help line
	byAction := make(map[action.Type][]string)
	helpText := make(map[action.Type]string)
	for k, a := range km {
		byAction[a.Type] = append(byAction[a.Type], k)
		if a.Help != "" {
			helpText[a.Type] = a.Help
		}
	}

	types := make([]action.Type, 0, len(byAction))
	for t := range byAction {
		types = append(types, t)
	}
	slices.Sort(types)

	bindings := make([]key.Binding, 0, len(types))
	for _, t := range types {
		keys := byAction[t]
		slices.Sort(keys)
		desc := helpText[t]
		if desc == "" {
			desc = strings.ReplaceAll(string(t), "_", " ")
		}
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), desc),
		))
	}

	return keyMap{host: host, actions: bindings}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.host.Help, k.host.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.actions,
		{k.host.Up, k.host.Down, k.host.Left, k.host.Right},
		{k.host.Help, k.host.Quit},
	}
}
