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

// Package host is the surface front-ends bind to. None of its functions
// modify the boards passed to them.
package host

import (
	"github.com/sirupsen/logrus"

	"github.com/ut-code/othello-revamp/pkg/othello"
	"github.com/ut-code/othello-revamp/pkg/predictor"
)

// DefaultBreadth is the search breadth used by GenerateAIPlay.
const DefaultBreadth = 5

// Scores is the number of pieces of each player on a board.
type Scores struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// NewBoard creates a board of the given size set up for a new game.
func NewBoard(size int) *othello.Board {
	return othello.New(size)
}

// PlaceableCount returns the number of legal moves of the player.
func PlaceableCount(board *othello.Board, player othello.Piece) int {
	return len(board.Placeable(player))
}

// CanPlace checks if the player can place a piece at the given point.
func CanPlace(board *othello.Board, at othello.Point, player othello.Piece) bool {
	return board.CanPlace(at, player)
}

// Score counts the pieces of both players.
func Score(board *othello.Board) Scores {
	return Scores{
		Black: board.Score(othello.Black),
		White: board.Score(othello.White),
	}
}

// PlaceAt returns a copy of the board with the player's piece placed at the
// given point. The error is an *othello.PlaceError, and its message names
// the failure along with the rejected point, piece, and board.
func PlaceAt(board *othello.Board, player othello.Piece, at othello.Point) (*othello.Board, error) {
	next := board.Clone()
	if _, err := next.Place(at, player); err != nil {
		return nil, err
	}

	return next, nil
}

// GenerateAIPlay returns a copy of the board with the predicted move of the
// player applied, or an unchanged copy if the player has no legal move.
// The strength is the search depth, capped at predictor.MaxDepth.
func GenerateAIPlay(board *othello.Board, player othello.Piece, strength int) *othello.Board {
	depth := min(max(strength, 0), predictor.MaxDepth)

	next := board.Clone()
	play, ok := predictor.Predict(board, player, depth, DefaultBreadth)
	if !ok {
		logrus.WithField("player", player).Debug("No legal move, passing")
		return next
	}

	flipped, err := next.Place(play, player)
	if err != nil {
		// The predictor only returns legal moves.
		panic(err)
	}

	logrus.WithFields(logrus.Fields{
		"player":  player,
		"point":   play,
		"flipped": flipped,
		"depth":   depth,
	}).Debug("Generated AI play")

	return next
}
