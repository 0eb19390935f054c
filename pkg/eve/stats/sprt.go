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

package stats

import (
	"fmt"
	"math"

	"github.com/ut-code/othello-revamp/pkg/eve/match"
)

// WDL is a tally of single game results from the first player's view.
type WDL struct {
	Wins, Draws, Losses int
}

// Add tallies the result of a game.
func (wdl *WDL) Add(result match.Result) {
	switch result {
	case match.Player1Wins:
		wdl.Wins++
	case match.Draw:
		wdl.Draws++
	case match.Player2Wins:
		wdl.Losses++
	}
}

// Games returns the number of games tallied.
func (wdl WDL) Games() int {
	return wdl.Wins + wdl.Draws + wdl.Losses
}

// Score returns the points scored, with a draw being worth half a point.
func (wdl WDL) Score() float64 {
	return float64(wdl.Wins) + float64(wdl.Draws)/2
}

func (wdl WDL) String() string {
	return fmt.Sprintf("+%d =%d -%d", wdl.Wins, wdl.Draws, wdl.Losses)
}

// SPRT does a statistical probability ratio test calculation on the tally
// and returns the log-likelihood ratio (llr) for whether elo0 or elo1 is
// more likely to be correct.
func (wdl WDL) SPRT(elo0, elo1 float64) (llr float64) {
	w := float64(wdl.Wins) + 0.5
	d := float64(wdl.Draws) + 0.5
	l := float64(wdl.Losses) + 0.5

	N := w + d + l // total number of games
	_, dlo := wdlToElo(w/N, d/N, l/N)

	w0, d0, l0 := eloToWDL(elo0, dlo) // elo0 WDL probabilities
	w1, d1, l1 := eloToWDL(elo1, dlo) // elo1 WDL probabilities

	// log-likelihood ratio (llr)
	return w*math.Log(w1/w0) +
		d*math.Log(d1/d0) +
		l*math.Log(l1/l0)
}

// Elo returns the likely elo difference of the tally along with its p < 0.05
// bounds.
func (wdl WDL) Elo() Estimate {
	N := float64(wdl.Games()) + 1.5 // total number of games

	w := (float64(wdl.Wins) + 0.5) / N   // measured win probability
	d := (float64(wdl.Draws) + 0.5) / N  // measured draw probability
	l := (float64(wdl.Losses) + 0.5) / N // measured loss probability

	// empirical mean of random variable
	mu := w + d/2

	// standard deviation of the random variable
	sigma := math.Sqrt(
		w*math.Pow(1-mu, 2)+
			d*math.Pow(0.5-mu, 2)+
			l*math.Pow(0-mu, 2),
	) / math.Sqrt(N)

	return newEstimate(mu, sigma)
}
