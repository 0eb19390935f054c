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

package match

// PairResult represents the result of a single game pair.
type PairResult int

const (
	WinWin   = PairResult(Player1Wins + Player1Wins) // Player 1 Double kills
	WinDraw  = PairResult(Player1Wins + Draw)        // Player 1 Wins and Holds
	DrawDraw = PairResult(Draw + Draw)               // Win-Loss or Draw-Draw
	DrawLoss = PairResult(Draw + Player2Wins)        // Player 2 Wins and Holds
	LossLoss = PairResult(Player2Wins + Player2Wins) // Player 2 Double kills
)

// GetPairResult returns the PairResult given the Result of each game in the
// pair, both from the point of view of Player 1. Game 1 should be Player 1
// vs 2 and Game 2 should be Player 2 vs 1, with the second result flipped.
func GetPairResult(result1, result2 Result) PairResult {
	return PairResult(result1 + result2)
}

// Result represents the result of a single game from Player 1's view.
type Result int

const (
	Player1Wins Result = +1
	Draw        Result = 0
	Player2Wins Result = -1
)

// GameLostBy maps the losing player to the game's Result.
var GameLostBy = [2]Result{
	0: Player2Wins,
	1: Player1Wins,
}

// Flip returns the result from the point of view of the other player.
func (result Result) Flip() Result {
	return -result
}

// String returns a string representation of the given Result.
func (result Result) String() string {
	switch result {
	case Player1Wins:
		return "1-0"
	case Draw:
		return "1/2-1/2"
	case Player2Wins:
		return "0-1"
	default:
		return "?-?"
	}
}
