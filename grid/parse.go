package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse builds a rune grid from line-delimited text.
// Each line becomes one row and each rune one cell, left-to-right,
// top-to-bottom. Only line terminators are stripped ("\n" or "\r\n"); a final
// terminator is optional. The width is the rune count of the first line and
// every other line must match it exactly.
//
// Errors (all match ErrMalformedGrid):
//   - ErrEmptyGrid if the text has no rows or the first row is empty.
//   - ErrNonRectangular, naming the row and both widths, otherwise.
func Parse(text string) (*Grid[rune], error) {
	return ParseFunc(text, func(_ Position, r rune) (rune, error) { return r, nil })
}

// ParseFunc is Parse with a per-cell conversion, e.g. digits to heights.
// A conversion error aborts parsing and is returned wrapped with the cell's
// position.
func ParseFunc[T any](text string, conv func(Position, rune) (T, error)) (*Grid[T], error) {
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, emptyGrid()
	}
	w := utf8.RuneCountInString(lines[0])
	if w == 0 {
		return nil, emptyGrid()
	}
	cells := make([]T, 0, w*len(lines))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, nonRectangular(y, w, n)
		}
		x := 0
		for _, r := range line {
			p := Position{X: x, Y: y}
			v, err := conv(p, r)
			if err != nil {
				return nil, fmt.Errorf("grid: cell %v %q: %w", p, r, err)
			}
			cells = append(cells, v)
			x++
		}
	}
	return &Grid[T]{h: len(lines), w: w, cells: cells}, nil
}

// ParseDigits parses a grid of decimal digits into their integer values.
// Any other rune fails with ErrInvalidCell.
func ParseDigits(text string) (*Grid[int], error) {
	return ParseFunc(text, func(_ Position, r rune) (int, error) {
		if r < '0' || r > '9' {
			return 0, ErrInvalidCell
		}
		return int(r - '0'), nil
	})
}

// splitLines splits on "\n", dropping one trailing terminator and the "\r"
// of any "\r\n" pair. Nothing else is trimmed.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
