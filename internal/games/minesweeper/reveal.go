package minesweeper

import "github.com/zyedidia/generic/queue"

// Outcome summarizes what a reveal did to the game.
type Outcome int

const (
	OutcomeUnchanged Outcome = iota
	OutcomeContinue
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeContinue:
		return "continue"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// RevealResult lists the cells a reveal touched, in discovery order.
type RevealResult struct {
	Outcome  Outcome
	Revealed []Position
	Flagged  []Position // mines flagged automatically by a win
	Wrong    []Position // flags on safe cells, exposed by a loss
}

// Reveal opens the cell at p.
//
// Revealing a flagged or already revealed cell, or any cell after the game
// ended, is a no-op. The first reveal places the mines around p. Opening a
// zero cell floods outward through hidden, unflagged neighbors.
func (b *Board) Reveal(p Position) (RevealResult, error) {
	if !b.InBounds(p) {
		return RevealResult{}, ErrOutOfBounds
	}
	if b.state.Over() || b.at(p).State != Hidden {
		return RevealResult{Outcome: OutcomeUnchanged}, nil
	}

	if !b.placed {
		if err := b.placeMines(p); err != nil {
			return RevealResult{}, err
		}
	}
	if b.state == NotStarted {
		b.state = InProgress
	}

	if b.at(p).Mine {
		return b.explode(p), nil
	}

	res := RevealResult{Outcome: OutcomeContinue, Revealed: b.flood(p)}
	if b.revealed == b.difficulty.SafeCells() {
		res.Outcome = OutcomeWon
		res.Flagged = b.win()
	}
	return res, nil
}

// flood reveals start and, if it is a zero, every cell reachable through
// zeros. The Hidden→Revealed transition marks a cell as visited.
func (b *Board) flood(start Position) []Position {
	b.open(start)
	revealed := []Position{start}
	if b.at(start).Adjacent != 0 {
		return revealed
	}

	work := queue.New[Position]()
	work.Enqueue(start)
	for !work.Empty() {
		p := work.Dequeue()
		for _, n := range b.Neighbors(p) {
			c := b.at(n)
			if c.State != Hidden || c.Mine {
				continue
			}
			b.open(n)
			revealed = append(revealed, n)
			if c.Adjacent == 0 {
				work.Enqueue(n)
			}
		}
	}
	return revealed
}

func (b *Board) open(p Position) {
	b.at(p).State = Revealed
	b.revealed++
}

// explode ends the game on the mine at p and uncovers every mine,
// the detonated one first. Wrong flags stay in place but now show as
// wrong, so they are reported too.
func (b *Board) explode(p Position) RevealResult {
	b.state = Lost
	b.exploded = p
	b.at(p).State = Revealed

	res := RevealResult{Outcome: OutcomeLost, Revealed: []Position{p}}
	b.each(func(q Position, c *Cell) {
		switch {
		case q == p:
		case !c.Mine && c.State == Flagged:
			res.Wrong = append(res.Wrong, q)
		case c.Mine:
			if c.State == Flagged {
				b.flagged--
			}
			c.State = Revealed
			res.Revealed = append(res.Revealed, q)
		}
	})
	return res
}

// win flags every mine still hidden.
func (b *Board) win() []Position {
	b.state = Won
	var flagged []Position
	b.each(func(p Position, c *Cell) {
		if c.Mine && c.State == Hidden {
			c.State = Flagged
			b.flagged++
			flagged = append(flagged, p)
		}
	})
	return flagged
}

// Chord reveals every hidden neighbor of a revealed number whose flagged
// neighbors already account for all its mines. Wrong flags lose the game.
func (b *Board) Chord(p Position) (RevealResult, error) {
	if !b.InBounds(p) {
		return RevealResult{}, ErrOutOfBounds
	}
	unchanged := RevealResult{Outcome: OutcomeUnchanged}
	c := b.at(p)
	if b.state != InProgress || c.State != Revealed || c.Adjacent == 0 {
		return unchanged, nil
	}

	flags := 0
	var targets []Position
	for _, n := range b.Neighbors(p) {
		switch b.at(n).State {
		case Flagged:
			flags++
		case Hidden:
			targets = append(targets, n)
		}
	}
	if flags != c.Adjacent || len(targets) == 0 {
		return unchanged, nil
	}

	res := RevealResult{Outcome: OutcomeContinue}
	for _, t := range targets {
		// An earlier target's cascade may already have opened this one.
		if b.at(t).State != Hidden {
			continue
		}
		r, err := b.Reveal(t)
		if err != nil {
			return res, err
		}
		res.Revealed = append(res.Revealed, r.Revealed...)
		res.Flagged = append(res.Flagged, r.Flagged...)
		res.Wrong = append(res.Wrong, r.Wrong...)
		if r.Outcome == OutcomeWon || r.Outcome == OutcomeLost {
			res.Outcome = r.Outcome
			break
		}
	}
	return res, nil
}
