package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestMultiChoice_NumberKeySubmits(t *testing.T) {
	m := NewMultiChoice([]int{2000, 2400, 3000, 2500}, 1)

	m, _ = m.Update(keyPress('2'))
	if !m.Submitted {
		t.Fatal("expected submission on number key")
	}
	if !m.IsCorrect() {
		t.Error("expected choice 2 to be correct")
	}
	if v, ok := m.Chosen(); !ok || v != 2400 {
		t.Errorf("Chosen() = %d, %v", v, ok)
	}

	// Further keys are ignored once submitted.
	m, _ = m.Update(keyPress('1'))
	if m.ChosenIndex != 1 {
		t.Errorf("ChosenIndex changed to %d after submission", m.ChosenIndex)
	}
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	m := NewMultiChoice([]int{6, 7, 1, 2}, 2)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 3 {
		t.Fatalf("Selected = %d, want 3 (clamped)", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.IsCorrect() {
		t.Error("expected option 3 to be correct")
	}

	m.Reset()
	if m.Submitted || m.ChosenIndex != -1 {
		t.Error("Reset should clear submission")
	}
}

func TestMultiChoice_View(t *testing.T) {
	m := NewMultiChoice([]int{6, 7, 1, 2}, 2)
	view := m.View()
	for _, want := range []string{"1)", "4)", "7"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestAnswerInput_RejectsLetters(t *testing.T) {
	in := NewAnswerInput("answer", 10)
	in, _ = in.Update(keyPress('4'))
	in, _ = in.Update(keyPress('x'))
	in, _ = in.Update(keyPress('2'))
	if in.Value() != "42" {
		t.Errorf("Value() = %q, want 42", in.Value())
	}

	in.Clear()
	if in.Value() != "" {
		t.Errorf("Value() after Clear = %q", in.Value())
	}
}

func TestMenu_NumberKeyActivates(t *testing.T) {
	pressed := ""
	m := NewMenu([]MenuItem{
		{Label: "Play again", Action: func() tea.Cmd { pressed = "again"; return nil }},
		{Label: "Quit", Action: func() tea.Cmd { pressed = "quit"; return nil }},
	})

	m, _ = m.Update(keyPress('2'))
	if pressed != "quit" || m.Selected != 1 {
		t.Errorf("pressed = %q, selected = %d", pressed, m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("selection should wrap, got %d", m.Selected)
	}
}

func TestButton_Press(t *testing.T) {
	pressed := false
	b := NewButton("Next", true, func() tea.Cmd { pressed = true; return nil })
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !pressed {
		t.Error("expected button press on Enter")
	}

	pressed = false
	b.Active = false
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed {
		t.Error("inactive button should not fire")
	}
}

func TestProgressBar_Percent(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 5, 0},
		{2, 5, 0.4},
		{5, 5, 1},
		{7, 5, 1},
		{1, 0, 0},
	}
	for _, tc := range tests {
		p := NewProgressBar("", tc.done, tc.total, 30)
		if got := p.Percent(); got != tc.want {
			t.Errorf("Percent(%d/%d) = %v, want %v", tc.done, tc.total, got, tc.want)
		}
	}
}

func TestHearts(t *testing.T) {
	if got := strings.Count(Hearts(2, 3), "♥"); got != 3 {
		t.Errorf("expected 3 hearts drawn, got %d", got)
	}
}
