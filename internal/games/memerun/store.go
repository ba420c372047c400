package memerun

import "github.com/vovakirdan/memerun/internal/core"

// EntityStore holds the active obstacles and tokens of one session.
// It is a value type so a State can be cloned without sharing slices.
type EntityStore struct {
	obstacles []Obstacle
	tokens    []Token
	nextID    int
}

// NewEntityStore creates an empty store.
func NewEntityStore() EntityStore {
	return EntityStore{
		obstacles: make([]Obstacle, 0, 16),
		tokens:    make([]Token, 0, 8),
		nextID:    1,
	}
}

// Reset clears all entities and restarts ID assignment.
func (s *EntityStore) Reset() {
	s.obstacles = s.obstacles[:0]
	s.tokens = s.tokens[:0]
	s.nextID = 1
}

// Clone returns a deep copy.
func (s EntityStore) Clone() EntityStore {
	c := EntityStore{nextID: s.nextID}
	c.obstacles = append(make([]Obstacle, 0, len(s.obstacles)+4), s.obstacles...)
	c.tokens = append(make([]Token, 0, len(s.tokens)+2), s.tokens...)
	return c
}

// Obstacles returns the active obstacles. Callers must not modify the slice.
func (s *EntityStore) Obstacles() []Obstacle {
	return s.obstacles
}

// Tokens returns the active tokens. Callers must not modify the slice.
func (s *EntityStore) Tokens() []Token {
	return s.tokens
}

// AddObstacles appends obstacles while the store holds fewer than limit.
// IDs are assigned here. Obstacles beyond the cap are dropped, not queued.
// Returns the number added.
func (s *EntityStore) AddObstacles(limit int, obs ...Obstacle) int {
	added := 0
	for _, o := range obs {
		if len(s.obstacles) >= limit {
			break
		}
		o.ID = s.nextID
		s.nextID++
		s.obstacles = append(s.obstacles, o)
		added++
	}
	return added
}

// AddToken appends a token if the store holds fewer than limit tokens.
func (s *EntityStore) AddToken(limit int, box core.Box) bool {
	if len(s.tokens) >= limit {
		return false
	}
	s.tokens = append(s.tokens, Token{ID: s.nextID, Box: box})
	s.nextID++
	return true
}

// Advance moves every entity left by speed and drops the ones whose right
// edge has crossed the left boundary.
func (s *EntityStore) Advance(speed float64) {
	for i := range s.obstacles {
		s.obstacles[i].Box.X -= speed
	}
	for i := range s.tokens {
		s.tokens[i].Box.X -= speed
	}

	validObstacles := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.Box.Right() > 0 {
			validObstacles = append(validObstacles, o)
		}
	}
	s.obstacles = validObstacles

	validTokens := s.tokens[:0]
	for _, t := range s.tokens {
		if t.Box.Right() > 0 {
			validTokens = append(validTokens, t)
		}
	}
	s.tokens = validTokens
}

// RemoveObstacle deletes the obstacle with the given ID.
func (s *EntityStore) RemoveObstacle(id int) bool {
	for i, o := range s.obstacles {
		if o.ID == id {
			s.obstacles = append(s.obstacles[:i], s.obstacles[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveToken deletes the token with the given ID.
func (s *EntityStore) RemoveToken(id int) bool {
	for i, t := range s.tokens {
		if t.ID == id {
			s.tokens = append(s.tokens[:i], s.tokens[i+1:]...)
			return true
		}
	}
	return false
}
