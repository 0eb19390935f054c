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
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ut-code/othello-revamp/pkg/othello"
	"github.com/ut-code/othello-revamp/pkg/predictor"
)

// PlayerConfig describes a predictor configuration taking part in a match.
type PlayerConfig struct {
	Name string `yaml:"name"`

	Depth   int `yaml:"depth"`
	Breadth int `yaml:"breadth"`
	Workers int `yaml:"workers"`

	TimeC string `yaml:"tc"`
}

func (config PlayerConfig) String() string {
	if config.Name != "" {
		return config.Name
	}

	return fmt.Sprintf("d%d-b%d", config.Depth, config.Breadth)
}

// NewPlayer checks the search budget of the config and creates a Player.
func NewPlayer(config PlayerConfig) (*Player, error) {
	if config.Depth < 0 || config.Depth > predictor.MaxDepth {
		return nil, fmt.Errorf("player %s: depth %d is not in [0, %d]", config, config.Depth, predictor.MaxDepth)
	}

	if config.Breadth < 1 {
		return nil, fmt.Errorf("player %s: breadth %d is less than 1", config, config.Breadth)
	}

	return &Player{
		config: config,
		predictor: predictor.Predictor{
			Depth:   config.Depth,
			Breadth: config.Breadth,
			Workers: config.Workers,
		},
	}, nil
}

// Player is an in-process opponent backed by the predictor.
type Player struct {
	config    PlayerConfig
	predictor predictor.Predictor
}

// Name returns the display name of the player.
func (player *Player) Name() string {
	return player.config.String()
}

// Play returns the move the player picks for the piece, or false if it has
// none. The time spent searching is returned with it.
func (player *Player) Play(board *othello.Board, piece othello.Piece) (othello.Point, bool, time.Duration) {
	start := time.Now()
	point, ok := player.predictor.Predict(board, piece)
	spent := time.Since(start)

	logrus.WithFields(logrus.Fields{
		"player": player.Name(),
		"piece":  piece,
		"point":  point,
		"ok":     ok,
		"time":   spent,
	}).Debug("Player moved")

	return point, ok, spent
}
