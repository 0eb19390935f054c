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

// Package match plays single games of Othello between two predictor
// configurations and adjudicates them.
package match

import (
	"github.com/sirupsen/logrus"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

// Config is the setup of a single game. The first player plays Black.
type Config struct {
	Size int

	// Position is the starting position of the game. If it is nil, the
	// game starts from the opening position of the given size.
	Position *othello.Board

	Players [2]PlayerConfig
}

// Run plays the game described by the config and returns its result from
// the point of view of the first player, along with the reason for it.
func Run(config *Config) (Result, string) {
	players := [2]*Player{}
	clocks := [2]*Clock{}

	for i, player := range config.Players {
		tc, err := ParseTime(player.TimeC)
		if err != nil {
			return GameLostBy[i], err.Error()
		}

		clocks[i] = NewClock(tc)
		if players[i], err = NewPlayer(player); err != nil {
			return GameLostBy[i], err.Error()
		}
	}

	position := config.Position
	if position == nil {
		position = othello.New(config.Size)
	}

	var oracle Oracle
	oracle.Initialize(position, othello.Black)

	for {
		outcome, reason := oracle.GameResult()
		if outcome != Ongoing {
			logrus.WithFields(logrus.Fields{
				"plies":  oracle.Plies(),
				"passes": oracle.Passes(),
				"black":  oracle.board.Score(othello.Black),
				"white":  oracle.board.Score(othello.White),
			}).Debug("Game over")
		}

		switch outcome {
		case BlackWins:
			return Player1Wins, reason
		case WhiteWins:
			return Player2Wins, reason
		case Drawn:
			return Draw, reason
		}

		// Black is always played by the first player.
		turn := oracle.SideToMove()
		index := int(turn)

		point, ok, spent := players[index].Play(oracle.Board(), turn)
		if !clocks[index].Charge(spent) {
			return GameLostBy[index], "Time Forfeit"
		}

		if !ok {
			return GameLostBy[index], "Illegal Move"
		}

		if err := oracle.MakeMove(point); err != nil {
			logrus.WithFields(logrus.Fields{
				"player": players[index].Name(),
				"point":  point,
			}).Debug(err)
			return GameLostBy[index], "Illegal Move"
		}
	}
}
