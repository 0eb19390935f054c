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
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/ut-code/othello-revamp/pkg/othello"
)

// NewBook reads an opening book from the given file. Positions are written
// in the board fixture format and separated by blank lines. The strategy is
// either "sequential" or "random".
func NewBook(name, strategy string, size int) (*Book, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}

	book, err := ParseBook(string(data), strategy, size)
	if err != nil {
		return nil, fmt.Errorf("book %s: %w", name, err)
	}

	return book, nil
}

// ParseBook parses the positions of an opening book.
func ParseBook(data, strategy string, size int) (*Book, error) {
	switch strategy {
	case "", "sequential", "random":
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	book := Book{strategy: strategy}

	var rows []string
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}

		board, err := othello.Decode(strings.Join(rows, "\n"), size)
		if err != nil {
			return fmt.Errorf("position %d: %w", len(book.entries)+1, err)
		}

		book.entries = append(book.entries, board)
		rows = rows[:0]
		return nil
	}

	for _, line := range strings.Split(data, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			rows = append(rows, line)
			continue
		}

		if err := flush(); err != nil {
			return nil, err
		}
	}

	if err := flush(); err != nil {
		return nil, err
	}

	if len(book.entries) == 0 {
		return nil, fmt.Errorf("no positions found")
	}

	return &book, nil
}

// StartingBook is a book holding only the opening position.
func StartingBook(size int) *Book {
	return &Book{entries: []*othello.Board{othello.New(size)}}
}

// OpeningConfig selects the starting positions of a run of games. Without
// a file every game starts from the opening position.
type OpeningConfig struct {
	File  string `yaml:"file,omitempty"`
	Order string `yaml:"order,omitempty"` // sequential or random
	Start int    `yaml:"start,omitempty"` // index of the first position
}

// Book loads the opening book the config points to.
func (config OpeningConfig) Book(size int) (*Book, error) {
	if config.File == "" {
		return StartingBook(size), nil
	}

	book, err := NewBook(config.File, config.Order, size)
	if err != nil {
		return nil, err
	}

	book.file = config.File
	book.current = max(config.Start, 0) % len(book.entries)
	return book, nil
}

// Book is a list of opening positions handed out one game pair at a time.
type Book struct {
	entries  []*othello.Board
	strategy string
	current  int

	file string
}

// Wrap returns the config which reopens the book at its current position.
func (book *Book) Wrap() OpeningConfig {
	return OpeningConfig{
		File:  book.file,
		Order: book.strategy,
		Start: book.current,
	}
}

// Len returns the number of positions in the book.
func (book *Book) Len() int {
	return len(book.entries)
}

// Next moves on to the next position.
func (book *Book) Next() {
	switch book.strategy {
	case "random":
		book.current = rand.Intn(len(book.entries))
	default:
		book.current = (book.current + 1) % len(book.entries)
	}
}

// Current returns a copy of the current position.
func (book *Book) Current() *othello.Board {
	return book.entries[book.current].Clone()
}
