package portal

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberquest/internal/screen"
)

func sendTicks(p *PortalScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = p.Update(tickMsg(time.Now()))
	}
	return cmd
}

func isAdvance(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(screen.AdvanceMsg)
	return ok
}

func TestAutoAdvanceAfterThreeSeconds(t *testing.T) {
	p := New()

	if cmd := sendTicks(p, 29); isAdvance(cmd) {
		t.Fatal("advanced before 3 seconds")
	}
	if cmd := sendTicks(p, 1); !isAdvance(cmd) {
		t.Fatal("expected advance at 3 seconds")
	}
	if p.elapsed != totalDur {
		t.Errorf("elapsed = %v, want %v", p.elapsed, totalDur)
	}

	// Late ticks stop the timer.
	if cmd := sendTicks(p, 1); cmd != nil {
		t.Error("expected no command after transition")
	}
}

func TestKeypressBeforeSwirlIgnored(t *testing.T) {
	p := New()
	sendTicks(p, 2)
	_, cmd := p.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("keypress before the swirl should be ignored")
	}
}

func TestKeypressSkips(t *testing.T) {
	p := New()
	sendTicks(p, 5)
	_, cmd := p.Update(tea.KeyPressMsg{Code: ' '})
	if !isAdvance(cmd) {
		t.Fatal("keypress after the swirl should advance")
	}
	_, cmd = p.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("second keypress should not advance again")
	}
}

func TestCaptionAppears(t *testing.T) {
	p := New()
	if strings.Contains(p.View(80, 24), "library") {
		t.Error("caption should not be visible at start")
	}
	sendTicks(p, 15)
	if !strings.Contains(p.View(80, 24), "library") {
		t.Error("caption should be visible after 1.5s")
	}
}
