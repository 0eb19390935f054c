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

// Package predictor chooses moves for an Othello player using a breadth
// limited look-ahead over a static positional evaluation.
//
// Every layer of the search scores the legal moves by their immediate
// evaluation and keeps only the best few. Each survivor is then played, the
// opponent answers with its greedy best reply, and the follow-up of the
// player is searched one layer shallower with a breadth of two. Boards are
// cloned for every branch, so the caller's board is never modified.
package predictor

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

// MaxDepth is the deepest search allowed. The breadth limit keeps each
// layer small, but the work still multiplies with every extra layer.
const MaxDepth = 10

// followBreadth is the breadth of the follow-up searches below the top
// layer.
const followBreadth = 2

// Candidate is a legal move along with its search score.
type Candidate struct {
	Point othello.Point
	Score Score
}

// Predictor is a search configuration. The zero value searches one layer
// with a breadth of one, on a single goroutine.
type Predictor struct {
	Depth   int // look-ahead layers after the immediate move, at most MaxDepth
	Breadth int // candidates kept at the top layer, at least 1

	// Workers is the number of goroutines the top layer candidates are
	// searched on. Values below 2 search sequentially. The ranking does not
	// depend on it.
	Workers int
}

// Predict returns the best move for the piece, or false if it has no legal
// move on the board.
func Predict(board *othello.Board, piece othello.Piece, depth, breadth int) (othello.Point, bool) {
	return Predictor{Depth: depth, Breadth: breadth}.Predict(board, piece)
}

// Rank returns the top candidates for the piece sorted from best to worst.
// Ties keep the order of board.Placeable.
func Rank(board *othello.Board, piece othello.Piece, depth, breadth int) []Candidate {
	return Predictor{Depth: depth, Breadth: breadth}.Rank(board, piece)
}

// Predict returns the best move for the piece, or false if it has no legal
// move on the board.
func (predictor Predictor) Predict(board *othello.Board, piece othello.Piece) (othello.Point, bool) {
	candidates := predictor.Rank(board, piece)
	if len(candidates) == 0 {
		return othello.Point{}, false
	}

	return candidates[0].Point, true
}

// Rank returns the top candidates for the piece sorted from best to worst.
// It panics if the Predictor's depth or breadth is out of range.
func (predictor Predictor) Rank(board *othello.Board, piece othello.Piece) []Candidate {
	if predictor.Breadth < 0 {
		panic(fmt.Sprintf("predictor: breadth %d is negative", predictor.Breadth))
	}

	if predictor.Depth < 0 || predictor.Depth > MaxDepth {
		panic(fmt.Sprintf("predictor: depth %d is not in [0, %d]", predictor.Depth, MaxDepth))
	}

	candidates := immediate(board, piece, max(predictor.Breadth, 1))
	if predictor.Depth > 0 {
		if predictor.Workers > 1 {
			predictor.lookaheadParallel(board, piece, candidates)
		} else {
			for i := range candidates {
				candidates[i].Score = lookahead(board, piece, candidates[i], predictor.Depth)
			}
		}

		sortCandidates(candidates)
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		for i, candidate := range candidates {
			logrus.WithFields(logrus.Fields{
				"piece": piece,
				"rank":  i + 1,
				"point": candidate.Point,
				"score": candidate.Score,
			}).Trace("Ranked candidate")
		}
	}

	return candidates
}

func (predictor Predictor) lookaheadParallel(board *othello.Board, piece othello.Piece, candidates []Candidate) {
	var group errgroup.Group
	group.SetLimit(predictor.Workers)

	// Every goroutine only reads the shared board and writes its own slot.
	for i := range candidates {
		i := i
		group.Go(func() error {
			candidates[i].Score = lookahead(board, piece, candidates[i], predictor.Depth)
			return nil
		})
	}

	_ = group.Wait()
}

// rank is the search of a single layer.
func rank(board *othello.Board, piece othello.Piece, depth, breadth int) []Candidate {
	candidates := immediate(board, piece, breadth)
	if depth == 0 {
		return candidates
	}

	for i := range candidates {
		candidates[i].Score = lookahead(board, piece, candidates[i], depth)
	}

	sortCandidates(candidates)
	return candidates
}

// immediate scores every legal move by the evaluation of the position
// right after it, and keeps the best breadth of them.
func immediate(board *othello.Board, piece othello.Piece, breadth int) []Candidate {
	points := board.Placeable(piece)

	candidates := make([]Candidate, len(points))
	for i, point := range points {
		candidates[i] = Candidate{
			Point: point,
			Score: Evaluate(play(board, point, piece), piece),
		}
	}

	sortCandidates(candidates)
	if len(candidates) > breadth {
		candidates = candidates[:breadth]
	}

	return candidates
}

// lookahead plays the candidate, lets the opponent answer greedily, and
// adds the value of the best follow-up to the candidate's immediate score.
func lookahead(board *othello.Board, piece othello.Piece, candidate Candidate, depth int) Score {
	after := play(board, candidate.Point, piece)

	// The opponent passes if it has no reply.
	if replies := immediate(after, piece.Flip(), 1); len(replies) > 0 {
		after = play(after, replies[0].Point, piece.Flip())
	}

	follow := rank(after, piece, depth-1, followBreadth)
	if len(follow) == 0 {
		return candidate.Score + Evaluate(after, piece)
	}

	best := follow[0]
	return candidate.Score + Evaluate(play(after, best.Point, piece), piece) + best.Score
}

// play returns a copy of the board with the piece placed at the point. The
// move must be legal.
func play(board *othello.Board, at othello.Point, piece othello.Piece) *othello.Board {
	next := board.Clone()
	if _, err := next.Place(at, piece); err != nil {
		panic(fmt.Sprintf("predictor: chose an illegal move: %v", err))
	}

	return next
}

func sortCandidates(candidates []Candidate) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
}
