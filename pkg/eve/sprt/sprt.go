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

// Package sprt runs sequential probability ratio tests between two
// predictor configurations, playing game pairs until one of the elo
// hypotheses is accepted.
package sprt

import (
	"fmt"
	"io"
	"math"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ut-code/othello-revamp/pkg/common"
	"github.com/ut-code/othello-revamp/pkg/eve/match"
	"github.com/ut-code/othello-revamp/pkg/eve/stats"
)

func NewTournament(config Config) (*SPRT, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var sprt SPRT
	sprt.Config = config
	sprt.Output = os.Stdout
	sprt.SaveFile = common.PausedFile("sprt", config.Name)

	var err error
	sprt.openings, err = config.Openings.Book(config.Size)
	if err != nil {
		return nil, fmt.Errorf("new sprt: %w", err)
	}

	return &sprt, nil
}

type SPRT struct {
	Config

	// Output is where the reports are written.
	Output io.Writer

	// SaveFile is where the test is paused to after every report. The
	// test is not saved if it is empty.
	SaveFile string

	openings *match.Book
	bookMu   sync.Mutex

	lower, upper float64
}

// pair is a game pair waiting to be played.
type pair struct {
	games [2]*Match
}

func (sprt *SPRT) Start() (stats.Hypothesis, error) {
	sprt.lower, sprt.upper = stats.StoppingBounds(sprt.Config.Alpha, sprt.Config.Beta)

	pairs := make(chan pair)
	results := make(chan PairResult)
	done := make(chan struct{})

	go sprt.schedule(pairs, done)

	var wg sync.WaitGroup
	for i := 0; i < sprt.Config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sprt.Thread(pairs, results)
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	hypothesis, stopped := stats.Undecided, false
	for result := range results {
		// Pairs which were already running when the test stopped are
		// drained without being counted.
		if stopped {
			continue
		}

		sprt.record(result)

		hypothesis = sprt.Hypothesis()
		limited := sprt.Config.MaxPairs > 0 && sprt.State.Pairs.Pairs() >= sprt.Config.MaxPairs
		if hypothesis != stats.Undecided || limited {
			stopped = true
			close(done)
		} else if sprt.State.Pairs.Pairs()%5 == 0 {
			sprt.Report()
		}
	}

	sprt.Report()
	switch hypothesis {
	case stats.H0:
		fmt.Fprintln(sprt.Output, "\x1b[31mH0 Accepted\x1b[0m")
	case stats.H1:
		fmt.Fprintln(sprt.Output, "\x1b[32mH1 Accepted\x1b[0m")
	default:
		fmt.Fprintln(sprt.Output, "Stopped after", sprt.State.Pairs.Pairs(), "pairs without a decision")
	}

	return hypothesis, nil
}

// schedule hands out game pairs until the test is done.
func (sprt *SPRT) schedule(pairs chan<- pair, done <-chan struct{}) {
	defer close(pairs)

	number := sprt.State.Games.Games()
	for {
		sprt.bookMu.Lock()
		opening := sprt.openings.Current()
		sprt.openings.Next()
		sprt.bookMu.Unlock()

		next := pair{}
		p1, p2 := 0, 1
		for game := 0; game < 2; game++ {
			number++
			next.games[game] = &Match{
				Config: match.Config{
					Size:     sprt.Config.Size,
					Position: opening.Clone(),
					Players: [2]match.PlayerConfig{
						sprt.Config.Players[p1],
						sprt.Config.Players[p2],
					},
				},

				Number: number,

				Player1: p1,
				Player2: p2,
			}

			p1, p2 = p2, p1
		}

		select {
		case pairs <- next:
		case <-done:
			return
		}
	}
}

func (sprt *SPRT) Thread(pairs <-chan pair, results chan<- PairResult) {
	for next := range pairs {
		var result PairResult
		for game, m := range next.games {
			result.Matches[game] = sprt.RunGame(m)
		}

		result.Result = match.GetPairResult(
			result.Matches[0].Result,
			result.Matches[1].Result,
		)

		results <- result
	}
}

// Match is a single game of the test. Player1 plays Black.
type Match struct {
	match.Config
	Number int

	Player1, Player2 int
}

// RunGame plays the game and returns its result from the candidate's view.
func (sprt *SPRT) RunGame(game *Match) Result {
	logrus.Infof(
		"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s",
		game.Number,
		game.Players[0],
		game.Players[1],
	)

	score, reason := match.Run(&game.Config)
	if game.Player2 == 0 {
		score = score.Flip()
	}

	return Result{
		Match:  game,
		Result: score,
		Reason: reason,
	}
}

func (sprt *SPRT) record(pair PairResult) {
	sprt.State.Pairs.Add(pair.Result)

	for _, result := range pair.Matches {
		sprt.State.Games.Add(result.Result)

		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s",
			result.Match.Number,
			result.Match.Players[0],
			result.Match.Players[1],
			result,
		)
	}
}

func (sprt *SPRT) Report() {
	if sprt.SaveFile != "" {
		if err := common.SaveYAML(sprt.SaveFile, sprt.Wrap()); err != nil {
			logrus.WithField("file", sprt.SaveFile).Warn(err)
		}
	}

	var elo stats.Estimate
	if sprt.Config.Legacy {
		elo = sprt.State.Games.Elo()
	} else {
		elo = sprt.State.Pairs.Elo()
	}

	err := math.Abs(math.Max(elo.Max-elo.Mu, elo.Mu-elo.Min))
	games := sprt.State.Games

	elo_str := fmt.Sprintf("║ ELO   | %.2f +- %.2f (95%%)", elo.Mu, err)
	llr_str := fmt.Sprintf("║ LLR   | %.2f (%.2f, %.2f) [%.2f, %.2f]", sprt.LLR(), sprt.lower, sprt.upper, sprt.Config.Elo0, sprt.Config.Elo1)
	gam_str := fmt.Sprintf("║ GAMES | N: %d W: %d L: %d D: %d", games.Games(), games.Wins, games.Losses, games.Draws)

	fmt.Fprintln(sprt.Output, "╔═════════════════════════════════════════════════╗")
	fmt.Fprintf(sprt.Output, "%-50s║\n", elo_str)
	fmt.Fprintf(sprt.Output, "%-50s║\n", llr_str)
	fmt.Fprintf(sprt.Output, "%-50s║\n", gam_str)
	if !sprt.Config.Legacy {
		penta_str := fmt.Sprintf("║ PENTA | %s", sprt.State.Pairs)
		fmt.Fprintf(sprt.Output, "%-50s║\n", penta_str)
	}
	fmt.Fprintln(sprt.Output, "╚═════════════════════════════════════════════════╝")
}

func (sprt *SPRT) LLR() float64 {
	if sprt.Config.Legacy {
		return sprt.State.Games.SPRT(sprt.Config.Elo0, sprt.Config.Elo1)
	}

	return sprt.State.Pairs.SPRT(sprt.Config.Elo0, sprt.Config.Elo1)
}

// Hypothesis returns the hypothesis accepted by the results so far.
func (sprt *SPRT) Hypothesis() stats.Hypothesis {
	return stats.Decide(sprt.LLR(), sprt.lower, sprt.upper)
}

// Wrap returns the config which restarts the test from its current state.
func (sprt *SPRT) Wrap() Config {
	sprt.bookMu.Lock()
	defer sprt.bookMu.Unlock()

	config := sprt.Config
	config.Openings = sprt.openings.Wrap()
	return config
}

type PairResult struct {
	Result  match.PairResult
	Matches [2]Result
}

type Result struct {
	Match *Match

	Result match.Result
	Reason string
}

func (result Result) String() string {
	candidate, opponent := result.Match.Players[0], result.Match.Players[1]
	if result.Match.Player1 != 0 {
		candidate, opponent = opponent, candidate
	}

	switch result.Result {
	case match.Player1Wins:
		return fmt.Sprintf("%s wins by %s", candidate, result.Reason)
	case match.Player2Wins:
		return fmt.Sprintf("%s wins by %s", opponent, result.Reason)
	case match.Draw:
		return fmt.Sprintf("Draw by %s", result.Reason)
	}

	return "illegal result"
}
