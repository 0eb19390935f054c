// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package othello implements the rules of Othello on square boards of any
// even size below 255.
package othello

import "slices"

// MaxSize is the exclusive upper bound of a Board's size.
const MaxSize = 255

// Board is a square Othello board. Boards never share their cells, so a
// *Board can only be aliased on purpose; use Clone to get an independent copy.
type Board struct {
	size  int
	cells []Cell // row-major
}

// New creates a board of the given size with the four centre cells set to
// the standard opening. The size has to be even and less than MaxSize.
func New(size int) *Board {
	if size%2 != 0 || size < 2 {
		panic("othello: board size must be a positive even number")
	}

	if size >= MaxSize {
		panic("othello: board size must be less than 255")
	}

	board := newEmpty(size)

	mid := size / 2
	_ = board.set(Point{mid - 1, mid - 1}, CellBlack)
	_ = board.set(Point{mid, mid - 1}, CellWhite)
	_ = board.set(Point{mid - 1, mid}, CellWhite)
	_ = board.set(Point{mid, mid}, CellBlack)

	return board
}

func newEmpty(size int) *Board {
	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the number of rows (and columns) of the board.
func (board *Board) Size() int {
	return board.size
}

// Contains checks if the point lies on the board.
func (board *Board) Contains(at Point) bool {
	return at.X >= 0 && at.Y >= 0 && at.X < board.size && at.Y < board.size
}

// Get returns the Cell at the given point.
func (board *Board) Get(at Point) (Cell, error) {
	if !board.Contains(at) {
		return Empty, ErrOutOfBoundary
	}

	return board.cells[at.Y*board.size+at.X], nil
}

// set is the primitive write. It doesn't check any of the game's rules.
func (board *Board) set(at Point, cell Cell) error {
	if !board.Contains(at) {
		return ErrOutOfBoundary
	}

	board.cells[at.Y*board.size+at.X] = cell
	return nil
}

// Clone returns a deep copy of the board.
func (board *Board) Clone() *Board {
	return &Board{
		size:  board.size,
		cells: slices.Clone(board.cells),
	}
}

// Equal checks if both boards have the same size and contents.
func (board *Board) Equal(other *Board) bool {
	return board.size == other.size && slices.Equal(board.cells, other.cells)
}

// Cells calls fn for every cell of the board in row-major order.
func (board *Board) Cells(fn func(Point, Cell)) {
	for i, cell := range board.cells {
		fn(Point{X: i % board.size, Y: i / board.size}, cell)
	}
}

// Score returns the number of cells occupied by the given piece.
func (board *Board) Score(piece Piece) int {
	target := piece.Cell()

	count := 0
	for _, cell := range board.cells {
		if cell == target {
			count++
		}
	}

	return count
}

// Empty returns the number of unoccupied cells.
func (board *Board) Empty() int {
	count := 0
	for _, cell := range board.cells {
		if cell == Empty {
			count++
		}
	}

	return count
}

// Placeable returns every point where the given piece can be placed. The
// board is scanned column by column (x in the outer loop, y in the inner
// one) and the points are returned in that order.
func (board *Board) Placeable(piece Piece) []Point {
	// O(n²) per call is fine since n < 255 and usually around 8.
	var points []Point
	for x := 0; x < board.size; x++ {
		for y := 0; y < board.size; y++ {
			point := Point{X: x, Y: y}
			if board.CountFlips(point, piece) > 0 {
				points = append(points, point)
			}
		}
	}

	return points
}

// HasMoves checks if the given piece can be placed anywhere.
func (board *Board) HasMoves(piece Piece) bool {
	for x := 0; x < board.size; x++ {
		for y := 0; y < board.size; y++ {
			if board.CountFlips(Point{X: x, Y: y}, piece) > 0 {
				return true
			}
		}
	}

	return false
}

// IsOver checks if neither player has a legal move left.
func (board *Board) IsOver() bool {
	return !board.HasMoves(Black) && !board.HasMoves(White)
}

func (board *Board) String() string {
	return board.Encode()
}
