package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridray/grid"
)

// readText returns the contents of path, or stdin when path is "-".
func readText(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read grid %s: %w", path, err)
	}
	return string(data), nil
}

// loadGrid reads and parses a rune grid.
func (a *app) loadGrid(path string) (*grid.Grid[rune], error) {
	text, err := readText(path)
	if err != nil {
		return nil, err
	}
	g, err := grid.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	h, w := g.Dimensions()
	a.logger.Debug("grid loaded", "file", path, "height", h, "width", w)
	return g, nil
}

// parsePair parses "a,b" into two integers.
func parsePair(s string) (int, int, error) {
	first, second, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("want two comma-separated integers, got %q", s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer in %q: %w", s, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(second))
	if err != nil {
		return 0, 0, fmt.Errorf("bad integer in %q: %w", s, err)
	}
	return a, b, nil
}

// parsePosition parses "x,y". Negative coordinates are rejected.
func parsePosition(s string) (grid.Position, error) {
	x, y, err := parsePair(s)
	if err != nil {
		return grid.Position{}, err
	}
	if x < 0 || y < 0 {
		return grid.Position{}, fmt.Errorf("position %q has a negative coordinate", s)
	}
	return grid.P(x, y), nil
}

// parseDirection parses "dx,dy" or a compass name such as "ne".
func parseDirection(s string) (grid.Direction, error) {
	switch strings.ToLower(s) {
	case "n", "north":
		return grid.North, nil
	case "ne", "northeast":
		return grid.NorthEast, nil
	case "e", "east":
		return grid.East, nil
	case "se", "southeast":
		return grid.SouthEast, nil
	case "s", "south":
		return grid.South, nil
	case "sw", "southwest":
		return grid.SouthWest, nil
	case "w", "west":
		return grid.West, nil
	case "nw", "northwest":
		return grid.NorthWest, nil
	}
	dx, dy, err := parsePair(s)
	if err != nil {
		return grid.Direction{}, err
	}
	return grid.D(dx, dy), nil
}

// firstRune returns the single rune of s.
func firstRune(flag, s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("--%s must be a single character, got %q", flag, s)
	}
	return r[0], nil
}
