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

package tournament

import (
	"errors"
	"fmt"

	"github.com/ut-code/othello-revamp/pkg/eve/match"
)

// Config is the setup of a tournament, usually read from a yaml file.
type Config struct {
	// The players participating in the tournament.
	Players []match.PlayerConfig `yaml:"players"`

	// Size of the boards the games are played on.
	Size int `yaml:"size"`

	// Number of games that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	Scheduler string `yaml:"scheduler"`

	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games
	Rounds    int `yaml:"rounds"`     // Number of rounds to run the tournament for.
	GamePairs int `yaml:"game-pairs"` // Number of games per encounter in every round.

	Openings match.OpeningConfig `yaml:"openings"`
}

// DefaultSize is the board size used when a config does not name one.
const DefaultSize = 8

// Validate fills in the defaults of the config and checks its values.
func (config *Config) Validate() error {
	if len(config.Players) < 2 {
		return errors.New("new tour: at least two players are needed")
	}

	for i := range config.Players {
		if config.Players[i].Name == "" {
			config.Players[i].Name = fmt.Sprintf("player-%d", i+1)
		}
	}

	if config.Size == 0 {
		config.Size = DefaultSize
	}

	if err := ValidateSize(config.Size); err != nil {
		return fmt.Errorf("new tour: %w", err)
	}

	config.Concurrency = max(config.Concurrency, 1)
	config.Rounds = max(config.Rounds, 1)
	config.GamePairs = max(config.GamePairs, 1)
	return nil
}

// ValidateSize checks if boards of the given size can be played on.
func ValidateSize(size int) error {
	if size < 2 || size%2 != 0 || size >= 255 {
		return fmt.Errorf("invalid board size %d", size)
	}

	return nil
}
