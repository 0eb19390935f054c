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

package schedule

// RoundRobin pits every player against every other player once per round.
// Encounters are ordered with the circle method, so consecutive ones
// involve different players wherever possible.
type RoundRobin struct {
	encounters [][2]int
	next       int
}

func (r *RoundRobin) Initialize(n int) {
	r.encounters = r.encounters[:0]
	r.next = 0

	// An odd number of players gets a dummy player, whoever meets it
	// sits out that turn.
	m := n + n%2
	circle := make([]int, m)
	for i := range circle {
		circle[i] = i
	}

	for turn := 0; turn < m-1; turn++ {
		for i := 0; i < m/2; i++ {
			p1, p2 := circle[i], circle[m-1-i]
			if p1 < n && p2 < n {
				r.encounters = append(r.encounters, [2]int{p1, p2})
			}
		}

		// Keep the first player fixed and rotate the rest.
		last := circle[m-1]
		copy(circle[2:], circle[1:m-1])
		circle[1] = last
	}
}

func (r *RoundRobin) NextEncounter() (int, int) {
	encounter := r.encounters[r.next]
	r.next++
	return encounter[0], encounter[1]
}

func (r *RoundRobin) TotalEncounters() int {
	return len(r.encounters)
}
