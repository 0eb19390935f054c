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

package othello

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a cell coordinate on a Board. X is the column and Y is the row,
// both counted from the top-left corner.
type Point struct {
	X, Y int
}

// NewPoint is a shorthand for Point{X: x, Y: y}.
func NewPoint(x, y int) Point {
	return Point{X: x, Y: y}
}

// ParsePoint parses a point from the "{x},{y}" format.
func ParsePoint(str string) (Point, error) {
	x_str, y_str, found := strings.Cut(str, ",")
	if !found {
		return Point{}, fmt.Errorf("parse point: %q is not in the x,y format", str)
	}

	x, err := strconv.Atoi(strings.TrimSpace(x_str))
	if err != nil {
		return Point{}, fmt.Errorf("parse point: %w", err)
	}

	y, err := strconv.Atoi(strings.TrimSpace(y_str))
	if err != nil {
		return Point{}, fmt.Errorf("parse point: %w", err)
	}

	if x < 0 || y < 0 {
		return Point{}, fmt.Errorf("parse point: %q has a negative coordinate", str)
	}

	return Point{X: x, Y: y}, nil
}

// Move returns the point reached by stepping along the given Direction. The
// boolean is false if the step leaves the non-negative quadrant; the upper
// bound is the Board's business.
func (point Point) Move(dir Direction) (Point, bool) {
	moved := Point{X: point.X + dir.X, Y: point.Y + dir.Y}
	if moved.X < 0 || moved.Y < 0 {
		return Point{}, false
	}

	return moved, true
}

// String returns the point in the "{x},{y}" format accepted by ParsePoint.
func (point Point) String() string {
	return strconv.Itoa(point.X) + "," + strconv.Itoa(point.Y)
}

// Direction is a step between two neighbouring cells.
type Direction struct {
	X, Y int
}

// Times scales the Direction so that a single Move covers n steps.
func (dir Direction) Times(n int) Direction {
	return Direction{X: dir.X * n, Y: dir.Y * n}
}

// Directions are the eight directions a run of flipped pieces can go in.
var Directions = [8]Direction{
	{-1, -1},
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
}
