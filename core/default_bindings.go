package core

import "strings"

const (
	ScopePicker = "picker"
	ScopeApp    = "app"
)

const (
	ActionQuit         = "quit"
	ActionFocusNext    = "focus-next"
	ActionHelp         = "help"
	ActionSwitchHour   = "switch-hour"
	ActionSwitchMinute = "switch-minute"
	ActionToggleField  = "toggle-field"
	ActionTogglePeriod = "toggle-period"
	ActionSetAM        = "set-am"
	ActionSetPM        = "set-pm"
	ActionNext         = "next"
	ActionPrev         = "prev"
	ActionSubmit       = "submit"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{ScopeApp}},
		{Keys: []string{"tab"}, Action: ActionFocusNext, Description: "next picker", Scopes: []string{ScopeApp}},
		{Keys: []string{"?"}, Action: ActionHelp, Description: "help", Scopes: []string{ScopeApp}},
		{Keys: []string{"h"}, Action: ActionSwitchHour, Description: "hours", Scopes: []string{ScopePicker}},
		{Keys: []string{"m"}, Action: ActionSwitchMinute, Description: "minutes", Scopes: []string{ScopePicker}},
		{Keys: []string{"f"}, Action: ActionToggleField, Description: "hour/minute", Scopes: []string{ScopePicker}},
		{Keys: []string{"p"}, Action: ActionTogglePeriod, Description: "am/pm", Scopes: []string{ScopePicker}},
		{Keys: []string{"a"}, Action: ActionSetAM, Description: "am", Scopes: []string{ScopePicker}},
		{Keys: []string{"P"}, Action: ActionSetPM, Description: "pm", Scopes: []string{ScopePicker}},
		{Keys: []string{"right", "up", "l", "k"}, Action: ActionNext, Description: "clockwise", Scopes: []string{ScopePicker}},
		{Keys: []string{"left", "down", "j"}, Action: ActionPrev, Description: "anticlockwise", Scopes: []string{ScopePicker}},
		{Keys: []string{"enter"}, Action: ActionSubmit, Description: "confirm", Scopes: []string{ScopePicker}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings returns a copy of bindings with keys replaced for
// every action present in actionKeys.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
