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

// Package tournament runs self-play tournaments between predictor
// configurations and reports their relative strength.
package tournament

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/ut-code/othello-revamp/pkg/eve/match"
	"github.com/ut-code/othello-revamp/pkg/eve/stats"
	"github.com/ut-code/othello-revamp/pkg/eve/tournament/schedule"
)

func NewTournament(config Config) (*Tournament, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var tour Tournament
	tour.Config = config
	tour.Scores = make([]stats.WDL, len(config.Players))
	tour.Output = os.Stdout

	var err error
	tour.openings, err = config.Openings.Book(config.Size)
	if err != nil {
		return nil, fmt.Errorf("new tour: %w", err)
	}

	tour.games = make(chan *Match)
	tour.results = make(chan Result)
	tour.complete = make(chan bool)

	tour.Scheduler, err = schedule.New(config.Scheduler)
	if err != nil {
		return nil, err
	}

	return &tour, nil
}

type Tournament struct {
	Config Config

	// Output is where the standings are reported.
	Output io.Writer

	Scheduler schedule.Scheduler
	openings  *match.Book

	games    chan *Match
	results  chan Result
	complete chan bool

	Games  int
	Scores []stats.WDL
}

func (tour *Tournament) Start() error {
	// 1 Tournament = {ROUNDS} Rounds
	// 1 Round      = {SOME_N} Encounters
	// 1 Encounter  = {GAME_P} Game Pairs
	// 1 Game Pair  = 2 Games

	tour.Scheduler.Initialize(len(tour.Config.Players))
	target := tour.Config.Rounds * tour.Scheduler.TotalEncounters() * tour.Config.GamePairs * 2

	go tour.ResultHandler(target)
	for i := 0; i < tour.Config.Concurrency; i++ {
		go tour.Thread()
	}

	number := 0
	for round := 0; round < tour.Config.Rounds; round++ {
		tour.Scheduler.Initialize(len(tour.Config.Players))

		for encounter := 0; encounter < tour.Scheduler.TotalEncounters(); encounter++ {
			p1, p2 := tour.Scheduler.NextEncounter()

			for pair := 0; pair < tour.Config.GamePairs; pair++ {
				for game := 0; game < 2; game++ {
					number++
					tour.games <- &Match{
						Config: match.Config{
							Size:     tour.Config.Size,
							Position: tour.openings.Current(),
							Players: [2]match.PlayerConfig{
								tour.Config.Players[p1],
								tour.Config.Players[p2],
							},
						},

						Round:  round + 1,
						Number: number,

						Player1: p1,
						Player2: p2,
					}

					// Switch colours.
					p1, p2 = p2, p1
				}

				tour.openings.Next()
			}
		}
	}

	close(tour.games)
	<-tour.complete

	tour.Report()
	return nil
}

func (tour *Tournament) Thread() {
	for game := range tour.games {
		tour.RunGame(game)
	}
}

// Match is a single game of the tournament. Player1 plays Black.
type Match struct {
	match.Config

	Round, Number    int
	Player1, Player2 int
}

func (tour *Tournament) RunGame(game *Match) {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Round #%d Game #%d: %s vs %s",
		game.Round,
		game.Number,
		game.Players[0],
		game.Players[1],
	)

	score, reason := match.Run(&game.Config)

	tour.results <- Result{
		Match:  game,
		Result: score,
		Reason: reason,
	}
}

func (tour *Tournament) ResultHandler(target int) {
	for result := range tour.results {
		tour.Games++

		tour.Scores[result.Match.Player1].Add(result.Result)
		tour.Scores[result.Match.Player2].Add(result.Result.Flip())

		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Round #%d Game #%d: %s vs %s: %s",
			result.Match.Round,
			result.Match.Number,
			result.Match.Players[0],
			result.Match.Players[1],
			result,
		)

		if tour.Games%5 == 0 && tour.Games != target {
			tour.Report()
		}

		if tour.Games == target {
			close(tour.results)
			tour.complete <- true
			return
		}
	}
}

func (tour *Tournament) Report() {
	fmt.Fprintln(tour.Output, "╔══════════════════════════════════════════════════════════╗")
	fmt.Fprintln(tour.Output, "║    Name               Elo Error   Wins Loss Draw   Total ║")
	fmt.Fprintln(tour.Output, "╠══════════════════════════════════════════════════════════╣")
	for i, player := range tour.Config.Players {
		score := tour.Scores[i]
		elo := score.Elo()

		format := "║ %2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d ║\n"
		if tour.Config.Scheduler == "gauntlet" && i == 0 {
			if elo.Mu >= 0 {
				format = "║ \x1b[32m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			} else {
				format = "║ \x1b[31m%2d. %-15s   %+4.0f %4.0f   %4d %4d %4d   %5d\x1b[0m ║\n"
			}
		}

		fmt.Fprintf(
			tour.Output,
			format,
			i+1, player.Name,
			elo.Mu, math.Abs(math.Max(elo.Max-elo.Mu, elo.Mu-elo.Min)),
			score.Wins, score.Losses, score.Draws,
			score.Games())
	}
	fmt.Fprintln(tour.Output, "╚══════════════════════════════════════════════════════════╝")
}

type Result struct {
	Match *Match

	Result match.Result
	Reason string
}

func (result Result) String() string {
	switch result.Result {
	case match.Player1Wins:
		return fmt.Sprintf("%s wins by %s", result.Match.Players[0], result.Reason)
	case match.Player2Wins:
		return fmt.Sprintf("%s wins by %s", result.Match.Players[1], result.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Reason)
	}

	return "illegal result"
}
