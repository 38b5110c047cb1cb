package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-worms/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{State: g.state} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return g.state }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zeta", func() Game { return &stubGame{id: "test_zeta"} })
	Register("test_alpha", func() Game { return &stubGame{id: "test_alpha"} })

	if !Exists("test_alpha") {
		t.Fatal("test_alpha should be registered")
	}

	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "test_zeta" {
		t.Errorf("ID() = %q", g.ID())
	}

	alpha, zeta := -1, -1
	for i, info := range List() {
		switch info.ID {
		case "test_alpha":
			alpha = i
			if info.Title != "Stub test_alpha" {
				t.Errorf("title = %q", info.Title)
			}
		case "test_zeta":
			zeta = i
		}
	}
	if alpha < 0 || zeta < 0 || alpha > zeta {
		t.Errorf("List() should be sorted by ID, alpha at %d zeta at %d", alpha, zeta)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test_missing")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(missing) = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("test_dup", func() Game { return &stubGame{id: "test_dup"} })
}
