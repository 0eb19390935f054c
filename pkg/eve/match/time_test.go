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
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		str      string
		expected TimeControl
	}{
		{"", TimeControl{}},
		{"inf", TimeControl{}},
		{"8+0.08", TimeControl{MovesToGo: -1, Base: 8 * time.Second, Inc: 80 * time.Millisecond}},
		{"40/60+0", TimeControl{MovesToGo: 40, Base: time.Minute}},
		{"0.5+1", TimeControl{MovesToGo: -1, Base: 500 * time.Millisecond, Inc: time.Second}},
	}

	for _, test := range tests {
		got, err := ParseTime(test.str)
		if err != nil {
			t.Errorf("ParseTime(%q): %v", test.str, err)
			continue
		}

		if got != test.expected {
			t.Errorf("ParseTime(%q) = %+v, want %+v", test.str, got, test.expected)
		}
	}

	for _, str := range []string{"10", "a+1", "10+b", "x/10+1", "0/10+1", "0+1", "10+-1"} {
		if _, err := ParseTime(str); err == nil {
			t.Errorf("ParseTime(%q) did not fail", str)
		}
	}
}

func TestTimeControlString(t *testing.T) {
	for _, str := range []string{"inf", "8+0.08", "40/60+0"} {
		tc, err := ParseTime(str)
		if err != nil {
			t.Fatalf("ParseTime(%q): %v", str, err)
		}

		if got := tc.String(); got != str {
			t.Errorf("ParseTime(%q).String() = %q", str, got)
		}
	}
}

func TestClock(t *testing.T) {
	tc, err := ParseTime("2/1+0.5")
	if err != nil {
		t.Fatalf("ParseTime: %v", err)
	}

	clock := NewClock(tc)

	steps := []struct {
		spent     time.Duration
		ok        bool
		remaining time.Duration
	}{
		{400 * time.Millisecond, true, 1100 * time.Millisecond},
		{100 * time.Millisecond, true, 2500 * time.Millisecond},
		{3 * time.Second, false, -500 * time.Millisecond},
	}

	for i, step := range steps {
		if ok := clock.Charge(step.spent); ok != step.ok {
			t.Errorf("move %d: Charge = %t, want %t", i+1, ok, step.ok)
		}

		if got := clock.Remaining(); got != step.remaining {
			t.Errorf("move %d: Remaining = %s, want %s", i+1, got, step.remaining)
		}
	}

	if !NewClock(TimeControl{}).Charge(time.Hour) {
		t.Error("an unlimited clock ran out of time")
	}
}
