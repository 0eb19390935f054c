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

package host

import (
	"errors"
	"strings"
	"testing"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

func TestOpening(t *testing.T) {
	board := NewBoard(8)

	if got := Score(board); got != (Scores{Black: 2, White: 2}) {
		t.Errorf("Score = %+v, want {2 2}", got)
	}

	if got := PlaceableCount(board, othello.Black); got != 4 {
		t.Errorf("PlaceableCount(Black) = %d, want 4", got)
	}

	if !CanPlace(board, othello.NewPoint(3, 2), othello.White) {
		t.Error("CanPlace(3,2, White) = false, want true")
	}

	if CanPlace(board, othello.NewPoint(3, 3), othello.White) {
		t.Error("CanPlace(3,3, White) = true on an occupied cell")
	}
}

func TestPlaceAt(t *testing.T) {
	board := NewBoard(8)
	before := board.Clone()

	next, err := PlaceAt(board, othello.Black, othello.NewPoint(4, 2))
	if err != nil {
		t.Fatalf("PlaceAt: %v", err)
	}

	if !board.Equal(before) {
		t.Errorf("PlaceAt modified its input:%s", board)
	}

	if got := Score(next); got != (Scores{Black: 4, White: 1}) {
		t.Errorf("Score after PlaceAt = %+v, want {4 1}", got)
	}
}

func TestPlaceAtError(t *testing.T) {
	board := NewBoard(4)

	_, err := PlaceAt(board, othello.White, othello.NewPoint(0, 0))
	if !errors.Is(err, othello.ErrNoPiecesChanged) {
		t.Fatalf("PlaceAt error = %v, want %v", err, othello.ErrNoPiecesChanged)
	}

	msg := err.Error()
	for _, want := range []string{"no pieces changed", "white", "0,0", board.Encode()} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}

	if _, err := PlaceAt(board, othello.Black, othello.NewPoint(1, 1)); !errors.Is(err, othello.ErrAlreadyOccupied) {
		t.Errorf("PlaceAt error = %v, want %v", err, othello.ErrAlreadyOccupied)
	}

	if _, err := PlaceAt(board, othello.Black, othello.NewPoint(9, 1)); !errors.Is(err, othello.ErrOutOfBoundary) {
		t.Errorf("PlaceAt error = %v, want %v", err, othello.ErrOutOfBoundary)
	}
}

func TestGenerateAIPlay(t *testing.T) {
	board := NewBoard(8)
	before := board.Clone()

	next := GenerateAIPlay(board, othello.Black, 3)
	if !board.Equal(before) {
		t.Errorf("GenerateAIPlay modified its input:%s", board)
	}

	if got := Score(next); got.Black != 4 || got.White != 1 {
		t.Errorf("Score after the first AI play = %+v, want {4 1}", got)
	}

	// Strengths beyond the search limit are capped instead of panicking.
	GenerateAIPlay(board, othello.White, 100)
}

func TestGenerateAIPlayPass(t *testing.T) {
	board, err := othello.Decode(`
		ww.b
		bwbw
		w..b
		bwbw
	`, 4)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	next := GenerateAIPlay(board, othello.Black, 2)
	if !next.Equal(board) {
		t.Errorf("GenerateAIPlay without a legal move =%s, want%s", next, board)
	}

	if next == board {
		t.Error("GenerateAIPlay returned its input instead of a copy")
	}
}
