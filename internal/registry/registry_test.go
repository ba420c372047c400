package registry

import (
	"testing"

	"github.com/vovakirdan/memerun/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (stubGame) Reset(core.RuntimeConfig) {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen) {}
func (stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	g, err := Create("zz-stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz-stub" {
		t.Errorf("ID = %q", g.ID())
	}

	list := List()
	if len(list) < 2 || list[0].ID != "aa-stub" {
		t.Errorf("List not sorted: %v", list)
	}
	for _, info := range list {
		if info.ID == "aa-stub" && info.Title != "Stub aa-stub" {
			t.Errorf("Title = %q", info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate id")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("nope"); err == nil {
		t.Error("expected error for unknown id")
	}
}
