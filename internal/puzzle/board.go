// Package puzzle implements the 15-puzzle board: shuffle generation,
// adjacency-based move legality, and win detection. It contains pure logic
// with no external dependencies so the session layer stays fully testable.
package puzzle

import "math/rand"

// Size is the board dimension.
const Size = 4

// Cells is the total cell count.
const Cells = Size * Size

// Empty is the sentinel value of the empty cell.
const Empty = 0

// ShuffleSwaps is the number of random adjacent swaps performed by Shuffle.
// Swapping only with neighbors keeps the board reachable from the solved
// state, so every shuffled board is solvable.
const ShuffleSwaps = 150

// Board is a 4x4 sliding-tile board stored row-major: index i maps to
// (row, col) = (i/Size, i%Size). The values form a permutation of 0..15
// where Empty marks the hole.
type Board [Cells]int

// Position is a cell index in [0, Cells).
type Position int

// Row returns the grid row of the position.
func (p Position) Row() int { return int(p) / Size }

// Col returns the grid column of the position.
func (p Position) Col() int { return int(p) % Size }

// Valid reports whether the position is on the board.
func (p Position) Valid() bool { return p >= 0 && p < Cells }

// PositionAt returns the position for a (row, col) pair.
func PositionAt(row, col int) Position { return Position(row*Size + col) }

// Solved returns the solved board [1, 2, ..., 15, 0].
func Solved() Board {
	var b Board
	for i := range Cells - 1 {
		b[i] = i + 1
	}
	b[Cells-1] = Empty
	return b
}

// Shuffle returns a board produced by ShuffleSwaps random adjacent swaps of
// the empty cell, starting from the solved board. The same rng state yields
// the same board.
func Shuffle(rng *rand.Rand) Board {
	return ShuffleN(rng, ShuffleSwaps)
}

// ShuffleN is Shuffle with a caller-chosen swap count. Counts below
// ShuffleSwaps still produce solvable boards, just less mixed ones.
func ShuffleN(rng *rand.Rand, swaps int) Board {
	b := Solved()
	empty := b.EmptyPos()
	for range swaps {
		ns := Neighbors(empty)
		next := ns[rng.Intn(len(ns))]
		b[empty], b[next] = b[next], b[empty]
		empty = next
	}
	return b
}

// Neighbors returns the 2-4 grid-adjacent positions of p, respecting board
// edges. Diagonal and wraparound cells are never neighbors.
func Neighbors(p Position) []Position {
	ns := make([]Position, 0, 4)
	if p.Row() > 0 {
		ns = append(ns, p-Size)
	}
	if p.Row() < Size-1 {
		ns = append(ns, p+Size)
	}
	if p.Col() > 0 {
		ns = append(ns, p-1)
	}
	if p.Col() < Size-1 {
		ns = append(ns, p+1)
	}
	return ns
}

// Adjacent reports whether a and b differ by exactly one row or one column
// step.
func Adjacent(a, b Position) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	dr := a.Row() - b.Row()
	dc := a.Col() - b.Col()
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// At returns the value at p.
func (b Board) At(p Position) int { return b[p] }

// EmptyPos returns the position of the empty cell.
func (b Board) EmptyPos() Position {
	for i, v := range b {
		if v == Empty {
			return Position(i)
		}
	}
	return 0 // unreachable on a valid board
}

// Valid reports whether the board holds each value of 0..15 exactly once.
func (b Board) Valid() bool {
	var seen [Cells]bool
	for _, v := range b {
		if v < 0 || v >= Cells || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

// Move slides the tile at target into the empty cell if the two are
// adjacent. Returns the new board and whether it changed; an illegal target
// is a silent no-op, not an error.
func Move(b Board, target Position) (Board, bool) {
	if !target.Valid() {
		return b, false
	}
	empty := b.EmptyPos()
	if !Adjacent(empty, target) {
		return b, false
	}
	b[empty], b[target] = b[target], b[empty]
	return b, true
}

// ForceSwap exchanges two cells regardless of adjacency. It backs the
// override mechanic and may leave the board unsolvable; normal play never
// reaches it.
func ForceSwap(b Board, a, c Position) Board {
	if !a.Valid() || !c.Valid() || a == c {
		return b
	}
	b[a], b[c] = b[c], b[a]
	return b
}

// IsSolved reports whether every tile is home: indices 0..14 hold values
// 1..15 and the empty cell sits at the bottom-right corner.
func IsSolved(b Board) bool {
	for i := range Cells - 1 {
		if b[i] != i+1 {
			return false
		}
	}
	return b[Cells-1] == Empty
}
