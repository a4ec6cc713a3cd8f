package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action returns the first action bound to msg in scope, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Help converts the scope's bindings for bubbles/help, one entry per action.
func (r *KeyRegistry) Help(scope string) []key.Binding {
	seen := map[string]bool{}
	out := make([]key.Binding, 0, len(r.bindings))
	for _, b := range r.BindingsForScope(scope) {
		if seen[b.Action] || len(b.Keys) == 0 || b.Description == "" {
			continue
		}
		seen[b.Action] = true
		out = append(out, key.NewBinding(
			key.WithKeys(b.Keys...),
			key.WithHelp(strings.Join(b.Keys, "/"), b.Description),
		))
	}
	return out
}

// normalizeKey folds case for named keys only; single runes stay
// case-sensitive so "p" and "P" can carry different actions.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if len([]rune(k)) == 1 {
		return k
	}
	return strings.ToLower(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
