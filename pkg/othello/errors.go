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
	"errors"
	"fmt"
)

var (
	ErrOutOfBoundary   = errors.New("out of boundary")
	ErrAlreadyOccupied = errors.New("already occupied")
	ErrNoPiecesChanged = errors.New("no pieces changed")
)

// PlaceErrorKind tells why a placement was rejected.
type PlaceErrorKind uint8

const (
	OutOfBoundary PlaceErrorKind = iota
	AlreadyOccupied
	NoPiecesChanged
)

func (kind PlaceErrorKind) err() error {
	switch kind {
	case OutOfBoundary:
		return ErrOutOfBoundary
	case AlreadyOccupied:
		return ErrAlreadyOccupied
	default:
		return ErrNoPiecesChanged
	}
}

func (kind PlaceErrorKind) String() string {
	return kind.err().Error()
}

// PlaceError is returned by Board.Place. It carries the rejected move and
// a snapshot of the board it was rejected on.
type PlaceError struct {
	Kind PlaceErrorKind

	Point Point
	Piece Piece
	Board *Board
}

func (err *PlaceError) Error() string {
	msg := fmt.Sprintf("place: %s: %s at %s", err.Kind, err.Piece, err.Point)
	if err.Board != nil {
		msg += " on board" + err.Board.Encode()
	}

	return msg
}

// Unwrap makes errors.Is work with ErrOutOfBoundary, ErrAlreadyOccupied,
// and ErrNoPiecesChanged.
func (err *PlaceError) Unwrap() error {
	return err.Kind.err()
}

// DecodeErrorKind tells why a board fixture could not be decoded.
type DecodeErrorKind uint8

const (
	UnknownChar DecodeErrorKind = iota
	UnmatchedOverallLength
	UnmatchedLocalLength
)

// DecodeError is returned by Decode. Char is set for UnknownChar, Expected
// and Got for both length errors, and Row only for UnmatchedLocalLength.
type DecodeError struct {
	Kind DecodeErrorKind

	Char rune

	Row           int
	Expected, Got int
}

func (err *DecodeError) Error() string {
	switch err.Kind {
	case UnknownChar:
		return fmt.Sprintf("decode: unknown character %q", err.Char)
	case UnmatchedOverallLength:
		return fmt.Sprintf("decode: expected %d rows, got %d", err.Expected, err.Got)
	default:
		return fmt.Sprintf("decode: expected %d cells in row %d, got %d", err.Expected, err.Row, err.Got)
	}
}
