// susen.go - a web-based Sudoku game and teaching tool.
// Copyright (C) 2015 Daniel C. Brotsky.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
// Licensed under the LGPL v3.  See the LICENSE file for details

package slant

import (
	"fmt"
	"strings"
)

/*

Givens codec

A givens string is a run-length encoding of the (Width+1)*(Height+1)
vertex clues, read in row-major order starting at (0,0).  A digit
'0'-'4' is a literal clue for the next vertex.  A lowercase letter
'a'-'z' encodes a run of 1-26 consecutive unclued vertices.  Any other
character is tolerated and skipped, so callers can use punctuation to
make long strings more readable without it affecting decoding.

*/

// DecodeGivens expands givensString into one entry per vertex: a
// clue value 0-4, or -1 for an unclued vertex.
func DecodeGivens(givensString string) ([]int, error) {
	var result []int
	for _, ch := range givensString {
		switch {
		case ch >= '0' && ch <= '4':
			result = append(result, int(ch-'0'))
		case ch >= 'a' && ch <= 'z':
			run := int(ch-'a') + 1
			for i := 0; i < run; i++ {
				result = append(result, -1)
			}
		default:
			// unrecognized characters are skipped, not rejected
		}
	}
	return result, nil
}

// EncodeGivens run-length encodes one clue per vertex (0-4, or -1 for
// unclued) into a givens string, the inverse of DecodeGivens.
func EncodeGivens(clues []int) string {
	var b strings.Builder
	i := 0
	for i < len(clues) {
		if clues[i] >= 0 {
			b.WriteString(fmt.Sprintf("%d", clues[i]))
			i++
			continue
		}
		run := 0
		for i < len(clues) && clues[i] < 0 && run < 26 {
			run++
			i++
		}
		b.WriteByte(byte('a' + run - 1))
	}
	return b.String()
}

// ToSolutionString renders the board's cell values as one character
// per cell in row-major order: '/' for Slash, '\' for Backslash, '.'
// for Unknown.
func (b *Board) ToSolutionString() string {
	var out strings.Builder
	for _, c := range b.Cells {
		switch c.Value {
		case Slash:
			out.WriteByte('/')
		case Backslash:
			out.WriteByte('\\')
		default:
			out.WriteByte('.')
		}
	}
	return out.String()
}

// String renders the board as a grid, with vertex clues (or '.' for
// unclued vertices) at the lattice points and cell values (or '.' for
// unknown) between them. Intended for debugging and test failures,
// not for machine parsing.
func (b *Board) String() string {
	var lines []string

	var top strings.Builder
	for vx := 0; vx <= b.Width; vx++ {
		writeVertex(&top, b.GetVertex(vx, 0))
		if vx < b.Width {
			top.WriteByte('-')
		}
	}
	lines = append(lines, top.String())

	for y := 0; y < b.Height; y++ {
		var row strings.Builder
		row.WriteByte('|')
		for x := 0; x < b.Width; x++ {
			switch b.GetCell(x, y).Value {
			case Slash:
				row.WriteByte('/')
			case Backslash:
				row.WriteByte('\\')
			default:
				row.WriteByte('.')
			}
			row.WriteByte('|')
		}
		lines = append(lines, row.String())

		var bottom strings.Builder
		for vx := 0; vx <= b.Width; vx++ {
			writeVertex(&bottom, b.GetVertex(vx, y+1))
			if vx < b.Width {
				bottom.WriteByte('-')
			}
		}
		lines = append(lines, bottom.String())
	}

	return strings.Join(lines, "\n")
}

func writeVertex(b *strings.Builder, v *Vertex) {
	if v.HasClue {
		fmt.Fprintf(b, "%d", v.Clue)
	} else {
		b.WriteByte('.')
	}
}
