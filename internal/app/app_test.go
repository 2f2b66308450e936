package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/numberquest/internal/adventure"
	"github.com/abhisek/numberquest/internal/problemgen"
	"github.com/abhisek/numberquest/internal/screen"
	"github.com/abhisek/numberquest/internal/screens/challenge"
	"github.com/abhisek/numberquest/internal/screens/portal"
	"github.com/abhisek/numberquest/internal/screens/story"
	"github.com/abhisek/numberquest/internal/screens/summary"
	"github.com/abhisek/numberquest/internal/ui/layout"
)

func testModel(start adventure.Stage) AppModel {
	return newAppModel(Options{
		Generator:  problemgen.NewSeeded(11),
		StartStage: start,
	})
}

func advance(t *testing.T, m AppModel) AppModel {
	t.Helper()
	updated, _ := m.Update(screen.AdvanceMsg{})
	return updated.(AppModel)
}

func TestNewAppModel_StartsAtIntro(t *testing.T) {
	m := testModel(adventure.Intro)
	if _, ok := m.router.Active().(*story.StoryScreen); !ok {
		t.Fatalf("active = %T, want story screen", m.router.Active())
	}
	if m.state.Stage != adventure.Intro {
		t.Errorf("stage = %v", m.state.Stage)
	}
}

func TestAdvance_SwapsScenes(t *testing.T) {
	m := testModel(adventure.Intro)

	want := []struct {
		stage adventure.Stage
		check func(screen.Screen) bool
	}{
		{adventure.Portal, func(s screen.Screen) bool { _, ok := s.(*portal.PortalScreen); return ok }},
		{adventure.MeetGenie, func(s screen.Screen) bool { _, ok := s.(*story.StoryScreen); return ok }},
		{adventure.SecretCipher, func(s screen.Screen) bool { _, ok := s.(*challenge.ChallengeScreen); return ok }},
		{adventure.PerilousPath, func(s screen.Screen) bool { _, ok := s.(*challenge.ChallengeScreen); return ok }},
		{adventure.Relationship, func(s screen.Screen) bool { _, ok := s.(*story.StoryScreen); return ok }},
		{adventure.VaultChallenge, func(s screen.Screen) bool { _, ok := s.(*challenge.ChallengeScreen); return ok }},
		{adventure.Outro, func(s screen.Screen) bool { _, ok := s.(*summary.SummaryScreen); return ok }},
		{adventure.Intro, func(s screen.Screen) bool { _, ok := s.(*story.StoryScreen); return ok }},
	}

	for _, w := range want {
		m = advance(t, m)
		if m.state.Stage != w.stage {
			t.Fatalf("stage = %v, want %v", m.state.Stage, w.stage)
		}
		if !w.check(m.router.Active()) {
			t.Fatalf("%v: unexpected screen %T", w.stage, m.router.Active())
		}
		if m.router.Depth() != 1 {
			t.Fatalf("depth = %d, want 1", m.router.Depth())
		}
	}
}

func TestPlayAgainStartsNewRun(t *testing.T) {
	m := testModel(adventure.Outro)
	run := m.state.RunID
	m = advance(t, m)
	if m.state.RunID == run {
		t.Error("expected a new run id after playing again")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := testModel(adventure.Intro)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestView_TooSmall(t *testing.T) {
	m := testModel(adventure.Intro)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected min-size message")
	}
}

func TestView_ChallengeStatus(t *testing.T) {
	m := testModel(adventure.PerilousPath)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(AppModel)
	if cmd := m.Init(); cmd != nil {
		updated, _ = m.Update(cmd())
		m = updated.(AppModel)
	}
	frame := m.render()
	if !strings.Contains(frame, layout.AppName) {
		t.Error("expected header in frame")
	}
	if !strings.Contains(frame, "steps 0/5") {
		t.Error("expected path progress in header")
	}
}
