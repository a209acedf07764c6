package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Input modes a binding can be restricted to.
const (
	ModeBrowse = iota
	ModeDataOpen
)

type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	Modes       []int
	Priority    int
}

func (b KeyBinding) AppliesTo(mode int) bool {
	if len(b.Modes) == 0 {
		return true
	}
	for _, v := range b.Modes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// RegisterKeys binds the same handler to several keys; only the first key
// carries the description so help lists it once.
func (r *HandlerRegistry) RegisterKeys(keys []string, h KeyHandler, description string, modes ...int) {
	for i, k := range keys {
		desc := ""
		if i == 0 {
			desc = description
		}
		r.Register(KeyBinding{Key: k, Handler: h, Description: desc, Modes: modes})
	}
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	mode := m.inputMode()
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(mode) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) GetBindingsForMode(mode int) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(mode) {
			out = append(out, b)
		}
	}
	return out
}

func (r *HandlerRegistry) HelpForMode(mode int) string {
	bindings := r.GetBindingsForMode(mode)
	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if b.Description == "" {
			continue
		}
		if seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, "|")
}
