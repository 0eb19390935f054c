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

package othello

// Place puts the piece at the given point and flips every run of opponent
// pieces it encloses. It returns the number of flipped pieces, which is at
// least one on success. The board is left untouched if an error is returned.
//
//	board, _ := othello.Decode(".wwb\n....\n....\n....", 4)
//	flipped, _ := board.Place(othello.NewPoint(0, 0), othello.Black)
//	// flipped == 2, board is now "bbbb\n....\n....\n...."
func (board *Board) Place(at Point, piece Piece) (int, error) {
	prev, err := board.Get(at)
	if err != nil {
		return 0, board.placeError(OutOfBoundary, at, piece)
	}

	if prev != Empty {
		return 0, board.placeError(AlreadyOccupied, at, piece)
	}

	if board.CountFlips(at, piece) == 0 {
		return 0, board.placeError(NoPiecesChanged, at, piece)
	}

	_ = board.set(at, piece.Cell())

	flipped := 0
	for _, dir := range Directions {
		flipped += board.flipInDirection(at, piece, dir)
	}

	return flipped, nil
}

func (board *Board) placeError(kind PlaceErrorKind, at Point, piece Piece) error {
	return &PlaceError{
		Kind:  kind,
		Point: at,
		Piece: piece,
		Board: board.Clone(),
	}
}

// CanPlace checks if placing the piece at the given point is a legal move.
func (board *Board) CanPlace(at Point, piece Piece) bool {
	return board.CountFlips(at, piece) > 0
}

// CountFlips returns the number of pieces that placing the piece at the
// given point would flip, without modifying the board. It is zero if the
// point is off the board or already occupied.
func (board *Board) CountFlips(at Point, piece Piece) int {
	if cell, err := board.Get(at); err != nil || cell != Empty {
		return 0
	}

	count := 0
	for _, dir := range Directions {
		count += board.runLength(at, piece, dir)
	}

	return count
}

// runLength returns the number of opponent pieces enclosed between the
// given point and the nearest piece of the same colour in the direction.
// Runs which are not closed by an anchor are worth nothing.
func (board *Board) runLength(at Point, piece Piece, dir Direction) int {
	own, opponent := piece.Cell(), piece.Flip().Cell()

	for length := 0; ; length++ {
		pos, ok := at.Move(dir.Times(length + 1))
		if !ok {
			return 0
		}

		cell, err := board.Get(pos)
		switch {
		case err != nil:
			return 0
		case cell == own:
			return length // zero when the anchor is adjacent
		case cell != opponent:
			return 0
		}
	}
}

// flipInDirection flips the run enclosed in the given direction and returns
// its length. Nothing past the anchor is touched.
func (board *Board) flipInDirection(at Point, piece Piece, dir Direction) int {
	length := board.runLength(at, piece, dir)
	for i := 1; i <= length; i++ {
		pos, _ := at.Move(dir.Times(i))
		_ = board.set(pos, piece.Cell())
	}

	return length
}
