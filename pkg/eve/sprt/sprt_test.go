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

package sprt

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ut-code/othello-revamp/pkg/common"
	"github.com/ut-code/othello-revamp/pkg/eve/match"
	"github.com/ut-code/othello-revamp/pkg/eve/stats"
)

func testConfig() Config {
	return Config{
		Name: "depth",
		Players: [2]match.PlayerConfig{
			{Name: "deep", Depth: 2, Breadth: 3},
			{Name: "greedy", Depth: 0, Breadth: 1},
		},
		Size:        6,
		Concurrency: 2,
		Elo0:        0,
		Elo1:        10,
		MaxPairs:    4,
	}
}

func TestValidate(t *testing.T) {
	config := testConfig()
	config.Size = 0
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if config.Size != 8 || config.Alpha != 0.05 || config.Beta != 0.05 {
		t.Errorf("defaults not filled in: %+v", config)
	}

	invalid := []func(*Config){
		func(config *Config) { config.Name = "" },
		func(config *Config) { config.Size = 5 },
		func(config *Config) { config.Alpha = 1.5 },
		func(config *Config) { config.Elo1 = config.Elo0 },
	}

	for i, modify := range invalid {
		config := testConfig()
		modify(&config)

		if err := config.Validate(); err == nil {
			t.Errorf("invalid config %d passed validation", i)
		}
	}
}

func TestSPRT(t *testing.T) {
	test, err := NewTournament(testConfig())
	if err != nil {
		t.Fatalf("NewTournament: %v", err)
	}

	var output bytes.Buffer
	test.Output = &output
	test.SaveFile = filepath.Join(t.TempDir(), "paused", "depth.yaml")

	hypothesis, err := test.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	pairs := test.State.Pairs.Pairs()
	if pairs < 1 || pairs > 4 || (hypothesis == stats.Undecided && pairs != 4) {
		t.Errorf("%s after %d pairs, want at most 4", hypothesis, pairs)
	}

	if games := test.State.Games.Games(); games != 2*pairs {
		t.Errorf("%d games in %d pairs", games, pairs)
	}

	if !strings.Contains(output.String(), "LLR") {
		t.Errorf("no report written:\n%s", output.String())
	}

	var saved Config
	if _, err := common.LoadConfig("sprt", test.SaveFile, &saved); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if saved.State != test.State {
		t.Errorf("saved state %+v, want %+v", saved.State, test.State)
	}

	// A restarted test keeps counting from the saved state.
	saved.MaxPairs = pairs + 1
	restarted, err := NewTournament(saved)
	if err != nil {
		t.Fatalf("NewTournament(saved): %v", err)
	}
	restarted.Output = &bytes.Buffer{}
	restarted.SaveFile = ""

	if _, err := restarted.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if got := restarted.State.Pairs.Pairs(); got != pairs+1 && restarted.Hypothesis() == stats.Undecided {
		t.Errorf("restarted test played up to %d pairs, want %d", got, pairs+1)
	}
}

func TestResultString(t *testing.T) {
	game := &Match{
		Config: match.Config{
			Players: [2]match.PlayerConfig{{Name: "greedy"}, {Name: "deep"}},
		},
		Player1: 1,
		Player2: 0,
	}

	result := Result{Match: game, Result: match.Player1Wins, Reason: "Disc Count"}
	if got := result.String(); got != "deep wins by Disc Count" {
		t.Errorf("String = %q, want deep wins by Disc Count", got)
	}
}
