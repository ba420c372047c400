package memerun

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/memerun/internal/core"
)

func TestStoreAdvanceMovesAndCulls(t *testing.T) {
	s := NewEntityStore()
	s.AddObstacles(10,
		Obstacle{Box: core.NewBox(100, 50, 50, 50)},
		Obstacle{Box: core.NewBox(-46, 50, 50, 50)},
	)
	s.AddToken(10, core.NewBox(2, 10, 40, 40))
	s.AddToken(10, core.NewBox(-38, 10, 40, 40))

	s.Advance(4)

	require.Len(t, s.Obstacles(), 1)
	assert.Equal(t, 96.0, s.Obstacles()[0].Box.X)
	require.Len(t, s.Tokens(), 1)
	assert.Equal(t, -2.0, s.Tokens()[0].Box.X, "still partly on screen")
}

func TestStoreCapsDropExcess(t *testing.T) {
	s := NewEntityStore()

	added := s.AddObstacles(2,
		Obstacle{Type: ObstacleRug},
		Obstacle{Type: ObstacleFud},
		Obstacle{Type: ObstacleBear},
	)
	assert.Equal(t, 2, added)
	assert.Len(t, s.Obstacles(), 2)

	assert.True(t, s.AddToken(1, core.NewBox(0, 0, 40, 40)))
	assert.False(t, s.AddToken(1, core.NewBox(100, 0, 40, 40)))
	assert.Len(t, s.Tokens(), 1)
}

func TestStoreAssignsUniqueIDs(t *testing.T) {
	s := NewEntityStore()
	s.AddObstacles(10, Obstacle{}, Obstacle{})
	s.AddToken(10, core.Box{})

	ids := map[int]bool{}
	for _, o := range s.Obstacles() {
		ids[o.ID] = true
	}
	for _, tk := range s.Tokens() {
		ids[tk.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestStoreRemoveByID(t *testing.T) {
	s := NewEntityStore()
	s.AddObstacles(10, Obstacle{}, Obstacle{}, Obstacle{})
	middle := s.Obstacles()[1].ID

	assert.True(t, s.RemoveObstacle(middle))
	assert.False(t, s.RemoveObstacle(middle))
	assert.Len(t, s.Obstacles(), 2)
	for _, o := range s.Obstacles() {
		assert.NotEqual(t, middle, o.ID)
	}
}

func TestStoreCloneIsIndependent(t *testing.T) {
	s := NewEntityStore()
	s.AddObstacles(10, Obstacle{Box: core.NewBox(100, 0, 10, 10)})

	c := s.Clone()
	c.Advance(4)
	c.AddToken(10, core.Box{})

	assert.Equal(t, 100.0, s.Obstacles()[0].Box.X)
	assert.Empty(t, s.Tokens())
	assert.Equal(t, 96.0, c.Obstacles()[0].Box.X)
}
