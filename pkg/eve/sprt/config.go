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
	"errors"
	"fmt"

	"github.com/ut-code/othello-revamp/pkg/eve/match"
	"github.com/ut-code/othello-revamp/pkg/eve/stats"
	"github.com/ut-code/othello-revamp/pkg/eve/tournament"
)

// Config is the setup of a test of the first player against the second,
// along with the results collected so far.
type Config struct {
	Name string `yaml:"name"`

	// The players being tested, the first is the candidate.
	Players [2]match.PlayerConfig `yaml:"players"`

	// Size of the boards the games are played on.
	Size int `yaml:"size"`

	// Number of game pairs that will be played concurrently.
	Concurrency int `yaml:"concurrency"`

	// Use the trinomial model instead of the pentanomial one.
	Legacy bool `yaml:"legacy"`

	Elo0 float64 `yaml:"elo0"` // The null elo hypothesis.
	Elo1 float64 `yaml:"elo1"` // The alternate elo hypothesis.

	Alpha float64 `yaml:"alpha"` // Probability of a type I error.
	Beta  float64 `yaml:"beta"`  // Probability of a type II error.

	// Number of game pairs after which the test is stopped even if it is
	// undecided. Zero means no limit.
	MaxPairs int `yaml:"max-pairs"`

	Openings match.OpeningConfig `yaml:"openings"`

	State State `yaml:"state"`
}

// State is the tally of a test, saved along with the config so that a
// paused test can be restarted.
type State struct {
	Games stats.WDL   `yaml:"games"`
	Pairs stats.Penta `yaml:"pairs"`
}

// Validate fills in the defaults of the config and checks its values.
func (config *Config) Validate() error {
	if config.Name == "" {
		return errors.New("new sprt: the test has no name")
	}

	for i := range config.Players {
		if config.Players[i].Name == "" {
			config.Players[i].Name = fmt.Sprintf("player-%d", i+1)
		}
	}

	if config.Size == 0 {
		config.Size = tournament.DefaultSize
	}

	if err := tournament.ValidateSize(config.Size); err != nil {
		return fmt.Errorf("new sprt: %w", err)
	}

	if config.Alpha == 0 {
		config.Alpha = 0.05
	}

	if config.Beta == 0 {
		config.Beta = 0.05
	}

	if config.Alpha <= 0 || config.Alpha >= 1 || config.Beta <= 0 || config.Beta >= 1 {
		return fmt.Errorf("new sprt: error bounds %f, %f are not in (0, 1)", config.Alpha, config.Beta)
	}

	if config.Elo0 >= config.Elo1 {
		return fmt.Errorf("new sprt: elo0 %f is not below elo1 %f", config.Elo0, config.Elo1)
	}

	config.Concurrency = max(config.Concurrency, 1)
	return nil
}
