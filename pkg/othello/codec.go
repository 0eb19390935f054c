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

import "strings"

// Decode parses a board from its text fixture format. Every row of the
// board is a line of '.' or '_' (empty), 'b' (black), and 'w' (white)
// characters. Blank lines and whitespace around each line are ignored, so
// fixtures can be indented freely:
//
//	......
//	..w...
//	..wb..
//	.wwb..
//	...b..
//	......
//
// The number of rows and the length of each row must equal size.
func Decode(serialized string, size int) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(serialized, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}

	if len(rows) != size {
		return nil, &DecodeError{
			Kind:     UnmatchedOverallLength,
			Expected: size,
			Got:      len(rows),
		}
	}

	board := newEmpty(size)
	for y, row := range rows {
		x := 0
		for _, char := range row {
			var cell Cell
			switch char {
			case '.', '_': // '_' can be used to emphasize cells
				cell = Empty
			case 'b':
				cell = CellBlack
			case 'w':
				cell = CellWhite
			default:
				return nil, &DecodeError{Kind: UnknownChar, Char: char}
			}

			if x < size {
				board.cells[y*size+x] = cell
			}
			x++
		}

		if x != size {
			return nil, &DecodeError{
				Kind:     UnmatchedLocalLength,
				Row:      y,
				Expected: size,
				Got:      x,
			}
		}
	}

	return board, nil
}

// Encode serializes the board into the text fixture format understood by
// Decode. The result starts and ends with a newline.
func (board *Board) Encode() string {
	var builder strings.Builder
	builder.Grow((board.size+1)*board.size + 1)

	builder.WriteByte('\n')
	for i, cell := range board.cells {
		builder.WriteString(cell.String())
		if i%board.size == board.size-1 {
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}
