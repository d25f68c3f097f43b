package minesweeper

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// DefaultHintMax is the number of hints granted per board.
const DefaultHintMax = 3

// HintStrategy selects how a safe cell is chosen.
type HintStrategy string

const (
	// StrategyRandom picks uniformly among all hidden safe cells.
	StrategyRandom HintStrategy = "random"
	// StrategyDeduce prefers cells that follow logically from the revealed
	// numbers and falls back to StrategyRandom.
	StrategyDeduce HintStrategy = "deduce"
)

// ParseHintStrategy validates a strategy name. Empty means StrategyDeduce.
func ParseHintStrategy(s string) (HintStrategy, error) {
	switch HintStrategy(s) {
	case "", StrategyDeduce:
		return StrategyDeduce, nil
	case StrategyRandom:
		return StrategyRandom, nil
	default:
		return "", fmt.Errorf("minesweeper: unknown hint strategy %q", s)
	}
}

// HintBudget counts the hints left on the current board. It never goes
// below zero.
type HintBudget struct {
	max  int
	left int
}

// NewHintBudget creates a full budget. Negative values mean no hints.
func NewHintBudget(max int) HintBudget {
	if max < 0 {
		max = 0
	}
	return HintBudget{max: max, left: max}
}

func (h HintBudget) Max() int  { return h.max }
func (h HintBudget) Left() int { return h.left }
func (h HintBudget) Used() int { return h.max - h.left }

// Refill restores the budget to its maximum.
func (h *HintBudget) Refill() {
	h.left = h.max
}

func (h *HintBudget) spend() {
	if h.left > 0 {
		h.left--
	}
}

// SuggestSafe returns a hidden, unflagged cell that is not a mine.
// It does not reveal the cell or touch any budget.
//
// Before mines exist every cell qualifies; the chosen one is reserved so
// placement will keep it mine-free.
func (b *Board) SuggestSafe(strategy HintStrategy, rng *rand.Rand) (Position, error) {
	if b.state.Over() {
		return Position{}, ErrNoSafeCellAvailable
	}
	if !b.placed {
		return b.reserveSafe(rng)
	}

	if strategy == StrategyDeduce {
		if safe := b.deducibleSafe(); len(safe) > 0 {
			return safe[rng.IntN(len(safe))], nil
		}
	}

	var candidates []Position
	b.each(func(p Position, c *Cell) {
		if c.State == Hidden && !c.Mine {
			candidates = append(candidates, p)
		}
	})
	if len(candidates) == 0 {
		return Position{}, ErrNoSafeCellAvailable
	}
	return candidates[rng.IntN(len(candidates))], nil
}

// reserveSafe promises a cell on an unplaced board. A reservation is only
// made while any first click can still fit all mines outside its 3×3
// opening and the reserved cells.
func (b *Board) reserveSafe(rng *rand.Rand) (Position, error) {
	if b.difficulty.Mines >= b.difficulty.Cells()-9-(b.reserved.Size()+1) {
		return Position{}, ErrNoSafeCellAvailable
	}

	var candidates []Position
	b.each(func(p Position, c *Cell) {
		if c.State == Hidden && !b.reserved.Has(p) {
			candidates = append(candidates, p)
		}
	})
	if len(candidates) == 0 {
		return Position{}, ErrNoSafeCellAvailable
	}

	p := candidates[rng.IntN(len(candidates))]
	b.reserved.Put(p)
	return p, nil
}

// deducibleSafe applies single-point deduction to the revealed numbers.
// A number whose covered neighbors equal its count marks them all as
// mines; a number whose known mines equal its count clears the rest.
func (b *Board) deducibleSafe() []Position {
	mines := mapset.New[Position]()
	b.each(func(p Position, c *Cell) {
		if c.State != Revealed || c.Adjacent == 0 {
			return
		}
		covered := b.covered(p)
		if len(covered) == c.Adjacent {
			for _, q := range covered {
				mines.Put(q)
			}
		}
	})

	safe := mapset.New[Position]()
	var out []Position
	b.each(func(p Position, c *Cell) {
		if c.State != Revealed || c.Adjacent == 0 {
			return
		}
		covered := b.covered(p)
		known := 0
		for _, q := range covered {
			if mines.Has(q) {
				known++
			}
		}
		if known != c.Adjacent {
			return
		}
		for _, q := range covered {
			qc := b.at(q)
			if mines.Has(q) || safe.Has(q) || qc.State != Hidden || qc.Mine {
				continue
			}
			safe.Put(q)
			out = append(out, q)
		}
	})
	return out
}

// covered returns the hidden or flagged neighbors of p. Flags are player
// guesses, so deduction treats them as unknown.
func (b *Board) covered(p Position) []Position {
	var out []Position
	for _, n := range b.Neighbors(p) {
		if b.at(n).State != Revealed {
			out = append(out, n)
		}
	}
	return out
}
