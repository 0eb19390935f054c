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

import (
	"testing"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

func TestRun(t *testing.T) {
	for _, size := range []int{4, 6, 8} {
		config := Config{
			Size: size,
			Players: [2]PlayerConfig{
				{Name: "deep", Depth: 2, Breadth: 3},
				{Name: "greedy", Depth: 0, Breadth: 1},
			},
		}

		result, reason := Run(&config)
		if result < Player2Wins || result > Player1Wins {
			t.Errorf("size %d: Run returned %d", size, result)
		}

		if reason != "Disc Count" && reason != "Wipeout" {
			t.Errorf("size %d: game ended by %q", size, reason)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	config := Config{
		Position: othello.New(6),
		Players: [2]PlayerConfig{
			{Depth: 1, Breadth: 2},
			{Depth: 2, Breadth: 2, Workers: 2},
		},
	}

	result, reason := Run(&config)
	for i := 0; i < 3; i++ {
		if r, why := Run(&config); r != result || why != reason {
			t.Fatalf("Run = %s {%s}, earlier %s {%s}", r, why, result, reason)
		}
	}
}

func TestRunForfeits(t *testing.T) {
	tests := []struct {
		name     string
		players  [2]PlayerConfig
		expected Result
		reason   string
	}{
		{
			name: "invalid depth",
			players: [2]PlayerConfig{
				{Depth: 11, Breadth: 1},
				{Depth: 0, Breadth: 1},
			},
			expected: Player2Wins,
		},
		{
			name: "invalid breadth",
			players: [2]PlayerConfig{
				{Depth: 0, Breadth: 1},
				{Depth: 0, Breadth: 0},
			},
			expected: Player1Wins,
		},
		{
			name: "invalid time control",
			players: [2]PlayerConfig{
				{Depth: 0, Breadth: 1, TimeC: "fast"},
				{Depth: 0, Breadth: 1},
			},
			expected: Player2Wins,
		},
		{
			name: "out of time",
			players: [2]PlayerConfig{
				{Depth: 3, Breadth: 5, TimeC: "0.000000001+0"},
				{Depth: 0, Breadth: 1},
			},
			expected: Player2Wins,
			reason:   "Time Forfeit",
		},
	}

	for _, test := range tests {
		config := Config{Size: 8, Players: test.players}

		result, reason := Run(&config)
		if result != test.expected {
			t.Errorf("%s: Run = %s {%s}, want %s", test.name, result, reason, test.expected)
		}

		if test.reason != "" && reason != test.reason {
			t.Errorf("%s: reason %q, want %q", test.name, reason, test.reason)
		}
	}
}

func TestPairResult(t *testing.T) {
	tests := []struct {
		game1, game2 Result
		expected     PairResult
	}{
		{Player1Wins, Player2Wins.Flip(), WinWin},
		{Player1Wins, Draw, WinDraw},
		{Player1Wins, Player1Wins.Flip(), DrawDraw},
		{Draw, Draw, DrawDraw},
		{Player2Wins, Draw, DrawLoss},
		{Player2Wins, Player1Wins.Flip(), LossLoss},
	}

	for _, test := range tests {
		if got := GetPairResult(test.game1, test.game2); got != test.expected {
			t.Errorf("GetPairResult(%s, %s) = %d, want %d", test.game1, test.game2, got, test.expected)
		}
	}
}
