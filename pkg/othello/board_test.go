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

import (
	"errors"
	"slices"
	"testing"
)

func mustDecode(t *testing.T, serialized string, size int) *Board {
	t.Helper()

	board, err := Decode(serialized, size)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	return board
}

func TestNew(t *testing.T) {
	board := New(8)
	expected := mustDecode(t, `
		........
		........
		........
		...bw...
		...wb...
		........
		........
		........
	`, 8)

	if !board.Equal(expected) {
		t.Errorf("New(8) =%s, want%s", board, expected)
	}

	if got := board.Score(Black); got != 2 {
		t.Errorf("Score(Black) = %d, want 2", got)
	}
	if got := board.Score(White); got != 2 {
		t.Errorf("Score(White) = %d, want 2", got)
	}
	if got := board.Empty(); got != 60 {
		t.Errorf("Empty() = %d, want 60", got)
	}
}

func TestNewInvalidSize(t *testing.T) {
	for _, size := range []int{0, 3, 7, 255, 256} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%d) did not panic", size)
				}
			}()

			New(size)
		}()
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		input    string
		moves    []Point
		expected string
		flipped  int
	}{
		{
			name: "simple",
			size: 4,
			input: `
				.wwb
				....
				....
				....
			`,
			moves: []Point{{0, 0}},
			expected: `
				bbbb
				....
				....
				....
			`,
			flipped: 2,
		},
		{
			name: "complex",
			size: 6,
			input: `
				bbw.bb
				.wwbww
				bw.wb.
				wwbwb.
				ww.bww
				ww.bbb
			`,
			moves: []Point{{2, 2}},
			expected: `
				bbw.bb
				.bwbww
				bbbbb.
				wwbbb.
				ww.bbw
				ww.bbb
			`,
			flipped: 5,
		},
		{
			name: "no overwrite past anchor",
			size: 6,
			input: `
				.wwwb.
				.wwwbw
				.wwwbb
				.wwwwb
				......
				......
			`,
			moves: []Point{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
			expected: `
				bbbbb.
				bbbbbw
				bbbbbb
				bbbbbb
				......
				......
			`,
			flipped: 13,
		},
		{
			name: "eight directions",
			size: 6,
			input: `
				b.b.b.
				.www..
				bw.wwb
				.www..
				b.w.w.
				..b..b
			`,
			moves: []Point{{2, 2}},
			expected: `
				b.b.b.
				.bbb..
				bbbbbb
				.bbb..
				b.b.b.
				..b..b
			`,
			flipped: 11,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			board := mustDecode(t, test.input, test.size)
			expected := mustDecode(t, test.expected, test.size)

			flipped := 0
			for _, move := range test.moves {
				n, err := board.Place(move, Black)
				if err != nil {
					t.Fatalf("Place(%s): %v", move, err)
				}
				flipped += n
			}

			if !board.Equal(expected) {
				t.Errorf("board =%s, want%s", board, expected)
			}

			if flipped != test.flipped {
				t.Errorf("flipped %d pieces, want %d", flipped, test.flipped)
			}
		})
	}
}

func TestPlaceErrors(t *testing.T) {
	board := mustDecode(t, `
		ww.b
		bwbw
		w..b
		bwbw
	`, 4)

	tests := []struct {
		at   Point
		kind PlaceErrorKind
		err  error
	}{
		{Point{4, 0}, OutOfBoundary, ErrOutOfBoundary},
		{Point{0, 4}, OutOfBoundary, ErrOutOfBoundary},
		{Point{100, 100}, OutOfBoundary, ErrOutOfBoundary},
		{Point{0, 0}, AlreadyOccupied, ErrAlreadyOccupied},
		{Point{3, 3}, AlreadyOccupied, ErrAlreadyOccupied},
		{Point{2, 0}, NoPiecesChanged, ErrNoPiecesChanged},
		{Point{1, 2}, NoPiecesChanged, ErrNoPiecesChanged},
	}

	for _, test := range tests {
		before := board.Clone()

		flipped, err := board.Place(test.at, Black)
		if !errors.Is(err, test.err) {
			t.Errorf("Place(%s) error = %v, want %v", test.at, err, test.err)
			continue
		}

		var placeErr *PlaceError
		if !errors.As(err, &placeErr) {
			t.Errorf("Place(%s) error is %T, want *PlaceError", test.at, err)
			continue
		}

		if placeErr.Kind != test.kind || placeErr.Point != test.at || placeErr.Piece != Black {
			t.Errorf("Place(%s) error = %+v", test.at, placeErr)
		}

		if !placeErr.Board.Equal(before) {
			t.Errorf("Place(%s) error carries board%s, want%s", test.at, placeErr.Board, before)
		}

		if flipped != 0 {
			t.Errorf("Place(%s) flipped %d pieces on error", test.at, flipped)
		}

		if !board.Equal(before) {
			t.Errorf("Place(%s) modified the board on error:%s", test.at, board)
		}

		if n := board.CountFlips(test.at, Black); n != 0 {
			t.Errorf("CountFlips(%s) = %d, want 0", test.at, n)
		}
	}
}

func TestPlaceable(t *testing.T) {
	board := mustDecode(t, `
		......
		.bbb..
		._w_..
		.bwb..
		.b_b..
		......
	`, 6)

	expected := []Point{{1, 2}, {2, 4}, {3, 2}}
	if got := board.Placeable(Black); !slices.Equal(got, expected) {
		t.Errorf("Placeable(Black) = %v, want %v", got, expected)
	}
}

func TestPlaceableMatchesCountFlips(t *testing.T) {
	boards := []*Board{
		New(8),
		mustDecode(t, `
			bbw.bb
			.wwbww
			bw.wb.
			wwbwb.
			ww.bww
			ww.bbb
		`, 6),
		mustDecode(t, `
			ww.b
			bwbw
			w..b
			bwbw
		`, 4),
	}

	for _, board := range boards {
		for _, piece := range []Piece{Black, White} {
			placeable := board.Placeable(piece)

			var expected []Point
			for x := 0; x < board.Size(); x++ {
				for y := 0; y < board.Size(); y++ {
					if board.CountFlips(Point{x, y}, piece) > 0 {
						expected = append(expected, Point{x, y})
					}
				}
			}

			if !slices.Equal(placeable, expected) {
				t.Errorf("Placeable(%s) = %v, want %v on%s", piece, placeable, expected, board)
			}

			if board.HasMoves(piece) != (len(placeable) > 0) {
				t.Errorf("HasMoves(%s) disagrees with Placeable on%s", piece, board)
			}
		}
	}
}

func TestPlaceFlipCount(t *testing.T) {
	board := New(8)

	// Play out a game, always taking the first legal move, and check every
	// placement against a cell-by-cell diff.
	piece := Black
	for !board.IsOver() {
		moves := board.Placeable(piece)
		if len(moves) == 0 {
			piece = piece.Flip()
			continue
		}

		before := board.Clone()
		total := before.Score(Black) + before.Score(White)
		predicted := board.CountFlips(moves[0], piece)

		flipped, err := board.Place(moves[0], piece)
		if err != nil {
			t.Fatalf("Place(%s, %s): %v", moves[0], piece, err)
		}

		changed := 0
		board.Cells(func(at Point, cell Cell) {
			prev, _ := before.Get(at)
			if prev != cell && at != moves[0] {
				changed++
			}
		})

		if flipped != changed || flipped != predicted || flipped < 1 {
			t.Fatalf("Place(%s, %s) flipped %d, CountFlips %d, changed %d", moves[0], piece, flipped, predicted, changed)
		}

		if after := board.Score(Black) + board.Score(White); after != total+1 {
			t.Fatalf("piece count went from %d to %d", total, after)
		}

		piece = piece.Flip()
	}
}

func TestGet(t *testing.T) {
	board := New(4)

	if cell, err := board.Get(Point{1, 1}); err != nil || cell != CellBlack {
		t.Errorf("Get(1,1) = %v, %v, want b, nil", cell, err)
	}

	if cell, err := board.Get(Point{2, 1}); err != nil || cell != CellWhite {
		t.Errorf("Get(2,1) = %v, %v, want w, nil", cell, err)
	}

	if _, err := board.Get(Point{4, 1}); !errors.Is(err, ErrOutOfBoundary) {
		t.Errorf("Get(4,1) error = %v, want %v", err, ErrOutOfBoundary)
	}

	if _, err := board.Get(Point{-1, 0}); !errors.Is(err, ErrOutOfBoundary) {
		t.Errorf("Get(-1,0) error = %v, want %v", err, ErrOutOfBoundary)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := New(4)
	clone := board.Clone()

	if _, err := clone.Place(Point{0, 0}, White); !errors.Is(err, ErrNoPiecesChanged) {
		t.Fatalf("Place(0,0) error = %v, want %v", err, ErrNoPiecesChanged)
	}

	if _, err := clone.Place(Point{1, 0}, White); err != nil {
		t.Fatalf("Place(1,0): %v", err)
	}

	if !board.Equal(New(4)) {
		t.Errorf("placing on a clone modified the original:%s", board)
	}
}

func TestPieceCell(t *testing.T) {
	for _, piece := range []Piece{Black, White} {
		back, ok := piece.Cell().Piece()
		if !ok || back != piece {
			t.Errorf("%s.Cell().Piece() = %s, %t", piece, back, ok)
		}

		if piece.Flip().Flip() != piece || piece.Flip() == piece {
			t.Errorf("%s.Flip() = %s", piece, piece.Flip())
		}

		if piece.Cell().Flip() != piece.Flip().Cell() {
			t.Errorf("%s.Cell().Flip() = %s", piece, piece.Cell().Flip())
		}
	}

	if _, ok := Empty.Piece(); ok {
		t.Error("Empty.Piece() returned a piece")
	}

	if Empty.Flip() != Empty {
		t.Error("Empty.Flip() is not Empty")
	}
}
