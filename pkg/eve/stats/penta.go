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

// Penta is a tally of game pair results from the first player's view.
type Penta struct {
	LL, LD, DD, WD, WW int
}

// Add tallies the result of a game pair.
func (penta *Penta) Add(result match.PairResult) {
	switch result {
	case match.LossLoss:
		penta.LL++
	case match.DrawLoss:
		penta.LD++
	case match.DrawDraw:
		penta.DD++
	case match.WinDraw:
		penta.WD++
	case match.WinWin:
		penta.WW++
	}
}

// Pairs returns the number of game pairs tallied.
func (penta Penta) Pairs() int {
	return penta.LL + penta.LD + penta.DD + penta.WD + penta.WW
}

func (penta Penta) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d, %d]", penta.LL, penta.LD, penta.DD, penta.WD, penta.WW)
}

// probabilities returns the measured probability of every pair result with
// a half pair of each added as a prior, along with the number of pairs.
func (penta Penta) probabilities() (ll, ld, dd, wd, ww, N float64) {
	N = float64(penta.Pairs()) + 2.5

	ll = (float64(penta.LL) + 0.5) / N // measured loss-loss probability
	ld = (float64(penta.LD) + 0.5) / N // measured loss-draw probability
	dd = (float64(penta.DD) + 0.5) / N // measured win-loss/draw-draw probability
	wd = (float64(penta.WD) + 0.5) / N // measured win-draw probability
	ww = (float64(penta.WW) + 0.5) / N // measured win-win probability
	return
}

// SPRT takes the two elo hypotheses and returns a log-likelihood ratio which
// compares the fit of the two hypotheses to the game pair data using a
// pentanomial model. In an SPRT test, either hypothesis might be accepted
// based on the llr and the stopping bounds of the test.
func (penta Penta) SPRT(elo0, elo1 float64) (llr float64) {
	ll, ld, dd, wd, ww, N := penta.probabilities()

	variance := func(mu float64) float64 {
		return ww*math.Pow(1-mu, 2) +
			wd*math.Pow(0.75-mu, 2) +
			dd*math.Pow(0.50-mu, 2) +
			ld*math.Pow(0.25-mu, 2) +
			ll*math.Pow(0.00-mu, 2)
	}

	// empirical mean of random variable
	mu := ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation (multiplied by sqrt of N) of the random variable
	r := math.Sqrt(variance(mu))

	// deviation to the score bounds
	r0 := variance(nEloToScore(elo0, r))
	r1 := variance(nEloToScore(elo1, r))

	if r0 == 0 || r1 == 0 {
		return 0
	}

	// log-likelihood ratio (llr)
	// note: this is not the exact llr formula but rather a simplified yet
	// very accurate approximation. see http://hardy.uhasselt.be/Fishtest/support_MLE_multinomial.pdf
	return 0.5 * N * math.Log(r0/r1)
}

// Elo calculates the best fit elo for the game pair results using a
// pentanomial model, with its error bounds at p < 0.05.
func (penta Penta) Elo() Estimate {
	ll, ld, dd, wd, ww, N := penta.probabilities()

	// empirical mean of random variable
	mu := ww + 0.75*wd + 0.5*dd + 0.25*ld

	// standard deviation of the random variable
	sigma := math.Sqrt(
		ww*math.Pow(1-mu, 2)+
			wd*math.Pow(0.75-mu, 2)+
			dd*math.Pow(0.50-mu, 2)+
			ld*math.Pow(0.25-mu, 2)+
			ll*math.Pow(0.00-mu, 2),
	) / math.Sqrt(N)

	return newEstimate(mu, sigma)
}
