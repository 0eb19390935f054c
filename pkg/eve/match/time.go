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
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeControl is the thinking time given to a player. A zero TimeControl
// places no limit on the player.
type TimeControl struct {
	MovesToGo int // moves per period, -1 if the whole game is one period
	Base, Inc time.Duration
}

// Unlimited checks if the time control puts no limit on the player.
func (tc TimeControl) Unlimited() bool {
	return tc == TimeControl{}
}

// ParseTime parses a time control of the form movestogo/time+increment,
// with both time and increment in seconds. The movestogo part is optional.
// An empty string or "inf" is an unlimited time control.
func ParseTime(str string) (TimeControl, error) {
	if str == "" || str == "inf" {
		return TimeControl{}, nil
	}

	tc := TimeControl{MovesToGo: -1}

	moves, clock, found := strings.Cut(str, "/")
	if found {
		n, err := strconv.Atoi(moves)
		if err != nil || n < 1 {
			return TimeControl{}, fmt.Errorf("parse tc: invalid moves to go %q", moves)
		}

		tc.MovesToGo = n
	} else {
		clock = moves
	}

	base, inc, found := strings.Cut(clock, "+")
	if !found {
		return TimeControl{}, errors.New("parse tc: increment not found")
	}

	secs, err := strconv.ParseFloat(base, 64)
	if err != nil || secs <= 0 {
		return TimeControl{}, fmt.Errorf("parse tc: invalid base time %q", base)
	}

	incs, err := strconv.ParseFloat(inc, 64)
	if err != nil || incs < 0 {
		return TimeControl{}, fmt.Errorf("parse tc: invalid increment %q", inc)
	}

	tc.Base = time.Duration(secs * float64(time.Second))
	tc.Inc = time.Duration(incs * float64(time.Second))
	return tc, nil
}

func (tc TimeControl) String() string {
	if tc.Unlimited() {
		return "inf"
	}

	clock := strconv.FormatFloat(tc.Base.Seconds(), 'f', -1, 64) + "+" +
		strconv.FormatFloat(tc.Inc.Seconds(), 'f', -1, 64)
	if tc.MovesToGo > 0 {
		return strconv.Itoa(tc.MovesToGo) + "/" + clock
	}

	return clock
}

// Clock is the running time of a player during a game.
type Clock struct {
	control   TimeControl
	remaining time.Duration
	moves     int
}

// NewClock creates a clock with a full period of the time control.
func NewClock(control TimeControl) *Clock {
	return &Clock{
		control:   control,
		remaining: control.Base,
		moves:     control.MovesToGo,
	}
}

// Remaining returns the time left in the current period.
func (clock *Clock) Remaining() time.Duration {
	return clock.remaining
}

// Charge takes the time spent on a move off the clock and reports whether
// the player made it in time. The increment is added after every move and
// the period is refilled once its moves have been played.
func (clock *Clock) Charge(spent time.Duration) bool {
	if clock.control.Unlimited() {
		return true
	}

	clock.remaining -= spent
	if clock.remaining < 0 {
		return false
	}

	clock.remaining += clock.control.Inc

	if clock.control.MovesToGo > 0 {
		if clock.moves--; clock.moves == 0 {
			clock.moves = clock.control.MovesToGo
			clock.remaining += clock.control.Base
		}
	}

	return true
}
