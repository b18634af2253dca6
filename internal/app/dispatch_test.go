package app

import (
	"testing"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/chatter/keygrid/internal/ui/help"
)

// testAction creates an action that sends a specific message
func testAction(msg string) Action {
	return func(m *Model) (Model, tea.Cmd) {
		return *m, func() tea.Msg { return testMsg{msg} }
	}
}

type testMsg struct {
	value string
}

func press(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func actionBinding(binding key.Binding, action Action) ActionBinding {
	return ActionBinding{HelpBinding: help.HelpBinding{Binding: binding}, Action: action}
}

func TestDispatch_MatchesAndExecutes(t *testing.T) {
	bindings := []ActionBinding{
		actionBinding(key.NewBinding(key.WithKeys("a")), testAction("action-a")),
		actionBinding(key.NewBinding(key.WithKeys("b")), testAction("action-b")),
	}

	m := &Model{}

	newModel, cmd := dispatchKey(m, press('b'), bindings)
	if newModel == nil {
		t.Fatal("expected model to be returned")
	}

	if cmd == nil {
		t.Fatal("expected cmd to be returned")
	}

	msg := cmd()
	if tm, ok := msg.(testMsg); !ok || tm.value != "action-b" {
		t.Errorf("expected action-b, got %v", msg)
	}
}

func TestDispatch_NoMatchNoAction(t *testing.T) {
	bindings := []ActionBinding{
		actionBinding(key.NewBinding(key.WithKeys("a")), testAction("action-a")),
	}

	m := &Model{}

	newModel, cmd := dispatchKey(m, press('z'), bindings)
	if newModel != nil {
		t.Error("expected nil model for no match")
	}
	if cmd != nil {
		t.Error("expected nil cmd for no match")
	}
}

func TestDispatch_NilActionSkipped(t *testing.T) {
	bindings := []ActionBinding{
		actionBinding(key.NewBinding(key.WithKeys("a")), nil), // display-only binding
		actionBinding(key.NewBinding(key.WithKeys("a")), testAction("fallback")),
	}

	m := &Model{}

	newModel, cmd := dispatchKey(m, press('a'), bindings)
	if newModel == nil || cmd == nil {
		t.Fatal("expected to fall through to second binding")
	}

	msg := cmd()
	if tm, ok := msg.(testMsg); !ok || tm.value != "fallback" {
		t.Errorf("expected fallback action, got %v", msg)
	}
}

func TestDispatch_FirstMatchWins(t *testing.T) {
	bindings := []ActionBinding{
		actionBinding(key.NewBinding(key.WithKeys("a")), testAction("first")),
		actionBinding(key.NewBinding(key.WithKeys("a")), testAction("second")),
	}

	m := &Model{}

	_, cmd := dispatchKey(m, press('a'), bindings)
	if cmd == nil {
		t.Fatal("expected cmd")
	}

	msg := cmd()
	if tm, ok := msg.(testMsg); !ok || tm.value != "first" {
		t.Errorf("expected first action to win, got %v", msg)
	}
}

func TestDispatch_DisabledBindingSkipped(t *testing.T) {
	disabledBinding := key.NewBinding(key.WithKeys("a"))
	disabledBinding.SetEnabled(false)

	bindings := []ActionBinding{
		actionBinding(disabledBinding, testAction("disabled")),
		actionBinding(key.NewBinding(key.WithKeys("a")), testAction("enabled")),
	}

	m := &Model{}

	_, cmd := dispatchKey(m, press('a'), bindings)
	if cmd == nil {
		t.Fatal("expected cmd")
	}

	msg := cmd()
	if tm, ok := msg.(testMsg); !ok || tm.value != "enabled" {
		t.Errorf("expected enabled action, got %v", msg)
	}
}

func TestDispatch_ModifiedKeys(t *testing.T) {
	bindings := []ActionBinding{
		actionBinding(key.NewBinding(key.WithKeys("q", "ctrl+c")), testAction("quit")),
	}

	m := &Model{}

	_, cmd := dispatchKey(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, bindings)
	if cmd == nil {
		t.Fatal("expected ctrl+c to match")
	}
	if tm, ok := cmd().(testMsg); !ok || tm.value != "quit" {
		t.Errorf("expected quit action, got %v", tm)
	}
}
