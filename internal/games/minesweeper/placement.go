package minesweeper

import "github.com/zyedidia/generic/mapset"

// placeMines distributes the board's mines uniformly over every cell except
// first, its neighbors, and any reserved cells, then numbers the board.
// Nothing is mutated when the remaining candidates cannot hold the mines.
func (b *Board) placeMines(first Position) error {
	excluded := mapset.New[Position]()
	excluded.Put(first)
	for _, n := range b.Neighbors(first) {
		excluded.Put(n)
	}

	candidates := make([]int, 0, len(b.cells))
	for i := range b.cells {
		p := b.position(i)
		if excluded.Has(p) || b.reserved.Has(p) {
			continue
		}
		candidates = append(candidates, i)
	}

	if b.difficulty.Mines >= len(candidates) {
		return &ConfigurationError{
			Width:  b.difficulty.Width,
			Height: b.difficulty.Height,
			Mines:  b.difficulty.Mines,
			Reason: "not enough cells outside the opening area",
		}
	}

	b.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, i := range candidates[:b.difficulty.Mines] {
		b.cells[i].Mine = true
	}

	b.number()
	b.placed = true
	return nil
}

// number computes Adjacent for every cell.
func (b *Board) number() {
	b.each(func(p Position, c *Cell) {
		count := 0
		for _, n := range b.Neighbors(p) {
			if b.at(n).Mine {
				count++
			}
		}
		c.Adjacent = count
	})
}

// MinePositions lists the mines in row-major order. Empty before placement.
func (b *Board) MinePositions() []Position {
	var out []Position
	b.each(func(p Position, c *Cell) {
		if c.Mine {
			out = append(out, p)
		}
	})
	return out
}
