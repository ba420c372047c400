package memerun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/memerun/internal/config"
	"github.com/vovakirdan/memerun/internal/core"
)

func stockSolver() *Solver {
	return NewSolver(RulesFromConfig(config.DefaultMemerunConfig()))
}

var openField = Region{Left: 0, Top: 20, Right: 920, Bottom: 430}

func TestFindSafePositionAcceptsClearProposal(t *testing.T) {
	s := stockSolver()
	proposed := core.NewBox(820, 200, 60, 40)

	got, ok := s.FindSafePosition(PlacementRequest{
		Kind:     KindObstacle,
		Proposed: proposed,
		Region:   openField,
	}, constRNG{0.5})

	require.True(t, ok)
	assert.Equal(t, proposed, got)
}

func TestFindSafePositionPackedField(t *testing.T) {
	s := stockSolver()
	wall := core.NewBox(-1000, -1000, 4000, 4000)

	for _, kind := range []EntityKind{KindObstacle, KindToken} {
		_, ok := s.FindSafePosition(PlacementRequest{
			Kind:      kind,
			Proposed:  core.NewBox(820, 200, 40, 40),
			Obstacles: []core.Box{wall},
			Region:    openField,
		}, NewRNG(7))
		assert.False(t, ok, "kind %d placed on a packed field", kind)
	}
}

func TestFindSafePositionJittersAwayFromNeighbour(t *testing.T) {
	s := stockSolver()
	neighbour := core.NewBox(820, 200, 60, 40)
	proposed := core.NewBox(820, 200, 60, 40)

	got, ok := s.FindSafePosition(PlacementRequest{
		Kind:      KindObstacle,
		Proposed:  proposed,
		Obstacles: []core.Box{neighbour},
		Region:    openField,
	}, NewRNG(3))

	require.True(t, ok)
	assert.NotEqual(t, proposed, got)
	assert.False(t, core.Overlaps(got, neighbour, 50))
	assert.GreaterOrEqual(t, got.Y, openField.Top)
	assert.LessOrEqual(t, got.Bottom(), openField.Bottom)
}

func TestSafeMargins(t *testing.T) {
	s := stockSolver()
	obstacle := core.NewBox(400, 200, 50, 50)
	token := core.NewBox(400, 200, 40, 40)

	tests := []struct {
		name      string
		kind      EntityKind
		candidate core.Box
		obstacles []core.Box
		tokens    []core.Box
		want      bool
	}{
		{"obstacle far from obstacle", KindObstacle, core.NewBox(400, 360, 50, 50), []core.Box{obstacle}, nil, true},
		{"obstacle inside obstacle margin", KindObstacle, core.NewBox(400, 290, 50, 50), []core.Box{obstacle}, nil, false},
		{"obstacle inside token margin", KindObstacle, core.NewBox(400, 300, 50, 50), nil, []core.Box{token}, false},
		{"obstacle clear of token margin", KindObstacle, core.NewBox(400, 320, 50, 50), nil, []core.Box{token}, true},
		{"token inside obstacle margin", KindToken, core.NewBox(400, 330, 40, 40), []core.Box{obstacle}, nil, false},
		{"token clear of obstacle margin", KindToken, core.NewBox(400, 340, 40, 40), []core.Box{obstacle}, nil, true},
		{"token inside token margin", KindToken, core.NewBox(400, 280, 40, 40), nil, []core.Box{token}, false},
		{"token clear of token margin", KindToken, core.NewBox(400, 300, 40, 40), nil, []core.Box{token}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Safe(tt.kind, tt.candidate, tt.obstacles, tt.tokens))
		})
	}
}

func TestSafeTokenLookAhead(t *testing.T) {
	s := stockSolver()
	token := core.NewBox(300, 200, 40, 40)

	sameRow := core.NewBox(600, 205, 50, 50)
	assert.False(t, s.Safe(KindToken, token, []core.Box{sameRow}, nil), "obstacle ahead in the token's row")

	otherRow := core.NewBox(600, 350, 50, 50)
	assert.True(t, s.Safe(KindToken, token, []core.Box{otherRow}, nil))

	// Within 150 units the look-ahead does not apply; only the margin does.
	near := core.NewBox(440, 205, 50, 50)
	assert.True(t, s.Safe(KindToken, token, []core.Box{near}, nil))
}

func TestRegionClampKeepsWholeBox(t *testing.T) {
	r := Region{Left: 800, Top: 20, Right: 920, Bottom: 430}

	got := r.clamp(core.NewBox(700, 420, 60, 40))
	assert.Equal(t, 800.0, got.X)
	assert.Equal(t, 390.0, got.Y)

	got = r.clamp(core.NewBox(900, 0, 60, 40))
	assert.Equal(t, 860.0, got.X)
	assert.Equal(t, 20.0, got.Y)
}
