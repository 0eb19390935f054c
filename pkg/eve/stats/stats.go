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

// Package stats estimates the strength difference between two players from
// their game results and runs sequential probability ratio tests on them.
package stats

import (
	"fmt"
	"math"
)

// Estimate is an elo difference along with its 95% confidence interval.
type Estimate struct {
	Min, Mu, Max float64
}

func (estimate Estimate) String() string {
	return fmt.Sprintf("%.2f ± %.2f", estimate.Mu, (estimate.Max-estimate.Min)/2)
}

// Hypothesis is the state of a sequential probability ratio test.
type Hypothesis int

const (
	Undecided Hypothesis = iota
	H0                   // elo0 accepted, the test failed
	H1                   // elo1 accepted, the test passed
)

func (hypothesis Hypothesis) String() string {
	switch hypothesis {
	case H0:
		return "H0 accepted"
	case H1:
		return "H1 accepted"
	default:
		return "undecided"
	}
}

// StoppingBounds returns the llr bounds of an SPRT with the given type I
// and type II error probabilities.
func StoppingBounds(alpha, beta float64) (lower float64, upper float64) {
	lower = math.Log(beta / (1 - alpha))
	upper = math.Log((1 - beta) / alpha)
	return
}

// Decide checks the llr against the stopping bounds.
func Decide(llr, lower, upper float64) Hypothesis {
	switch {
	case llr <= lower:
		return H0
	case llr >= upper:
		return H1
	default:
		return Undecided
	}
}

func clampElo(x float64) float64 {
	switch {
	case x <= 0, x >= 1:
		return 0

	default:
		return -400 * math.Log10(1/x-1)
	}
}

func newEstimate(mu, sigma float64) Estimate {
	return Estimate{
		Min: clampElo(mu + phiInv(0.025)*sigma),
		Mu:  clampElo(mu),
		Max: clampElo(mu + phiInv(0.975)*sigma),
	}
}

// eloToWDL converts the bayesian elo to its wdl probabilities.
func eloToWDL(elo, dlo float64) (w float64, d float64, l float64) {
	w = 1 / (1 + math.Pow(10, (-elo+dlo)/400)) // win probability sigmoid
	l = 1 / (1 + math.Pow(10, (+elo+dlo)/400)) // loss probability sigmoid
	d = 1 - w - l                              // draw probability curve
	return w, d, l
}

// wdlToElo converts the wdl probabilities to it's bayesian elo.
func wdlToElo(w, d, l float64) (elo float64, dlo float64) {
	elo = 200 * math.Log10((w/l)*((1-l)/(1-w)))
	dlo = 200 * math.Log10(((1-l)/l)*((1-w)/w))
	return elo, dlo
}

func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}

func nEloToScore(nelo, r float64) float64 {
	return nelo*math.Sqrt2*r/(800/math.Ln10) + 0.5
}
