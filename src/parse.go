package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KasumiL5x/hmath/src/vec"
)

var (
	reNumber = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?$`)
	reSplit  = regexp.MustCompile(`\s*,\s*`)
)

// parseNumbers parses a comma separated list of numbers. want < 0 accepts
// any non-zero count.
func parseNumbers(s string, want int) ([]float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty list")
	}

	fields := reSplit.Split(s, -1)
	if want >= 0 && len(fields) != want {
		return nil, fmt.Errorf("%q has %d values, want %d", s, len(fields), want)
	}

	values := make([]float32, len(fields))
	for i, field := range fields {
		if !reNumber.MatchString(field) {
			return nil, fmt.Errorf("invalid number %q", field)
		}

		f, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", field, err)
		}
		values[i] = float32(f)
	}

	return values, nil
}

func parseVec3(s string) (vec.Vec3, error) {
	values, err := parseNumbers(s, 3)
	if err != nil {
		return vec.Vec3{}, err
	}
	return vec.Vec3{values[0], values[1], values[2]}, nil
}

// parseMatrix parses "a,b;c,d" into row-major values and the matrix size.
func parseMatrix(s string) ([]float32, int, error) {
	rows := strings.Split(strings.TrimSpace(s), ";")
	n := len(rows)

	values := make([]float32, 0, n*n)
	for r, row := range rows {
		v, err := parseNumbers(row, n)
		if err != nil {
			return nil, 0, fmt.Errorf("row %d: %w", r, err)
		}
		values = append(values, v...)
	}

	return values, n, nil
}
