// Package gate decides whether a player may start a Meme Run session.
//
// HolderGate implements token-holder gating: a YAML file lists balances per
// player and a minimum balance required to play.
package gate

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/memerun/internal/games/memerun"
)

// AllowAll admits every player.
type AllowAll struct{}

// CanStart always returns true.
func (AllowAll) CanStart(context.Context, string) bool { return true }

var _ memerun.Gate = AllowAll{}

// HolderFile is the on-disk holder list.
//
//	min_balance: 1000
//	holders:
//	  alice: 2500
//	  bob: 10
type HolderFile struct {
	MinBalance int64            `yaml:"min_balance"`
	Holders    map[string]int64 `yaml:"holders"`
}

// HolderGate admits players whose balance reaches the minimum.
// Player names are matched case-insensitively.
type HolderGate struct {
	mu         sync.RWMutex
	minBalance int64
	balances   map[string]int64
}

// NewHolderGate builds a gate from an in-memory holder list.
func NewHolderGate(f HolderFile) *HolderGate {
	g := &HolderGate{}
	g.set(f)
	return g
}

// LoadHolders reads a holder list from a YAML file.
func LoadHolders(path string) (*HolderGate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gate: failed to read holders %s: %w", path, err)
	}
	var f HolderFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("gate: failed to parse holders %s: %w", path, err)
	}
	return NewHolderGate(f), nil
}

// Reload replaces the holder list from path. The previous list stays active
// if the file cannot be read.
func (g *HolderGate) Reload(path string) error {
	fresh, err := LoadHolders(path)
	if err != nil {
		return err
	}
	fresh.mu.RLock()
	f := HolderFile{MinBalance: fresh.minBalance, Holders: fresh.balances}
	fresh.mu.RUnlock()
	g.set(f)
	return nil
}

func (g *HolderGate) set(f HolderFile) {
	balances := make(map[string]int64, len(f.Holders))
	for name, bal := range f.Holders {
		balances[strings.ToLower(name)] = bal
	}
	g.mu.Lock()
	g.minBalance = f.MinBalance
	g.balances = balances
	g.mu.Unlock()
}

// Balance returns the listed balance for a player, 0 if unlisted.
func (g *HolderGate) Balance(player string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.balances[strings.ToLower(player)]
}

// CanStart reports whether player holds at least the minimum balance.
// Unlisted players are admitted only when the minimum is zero.
func (g *HolderGate) CanStart(ctx context.Context, player string) bool {
	if ctx.Err() != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.balances[strings.ToLower(player)] >= g.minBalance
}

var _ memerun.Gate = (*HolderGate)(nil)
