// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/dedekind/laurent"
)

// ParseDense reads a nested list literal such as
//
//	[[z, z^2], [z^-1, z^3 + 1]]
//
// Each entry is parsed with ring.Parse. Rows must have equal length.
// A leading "Matrix(" ... ")" wrapper is accepted and ignored.
//
// Errors: ErrSyntax for malformed literals (wrapping the polynomial parser's
// error when an entry fails), ErrBadShape for empty or jagged rows.
func ParseDense(ring *laurent.Ring, s string) (*Dense, error) {
	src := strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(src, "Matrix("); ok {
		inner, ok = strings.CutSuffix(strings.TrimSpace(inner), ")")
		if !ok {
			return nil, fmt.Errorf("ParseDense: missing ')': %w", ErrSyntax)
		}
		src = strings.TrimSpace(inner)
	}

	outer, err := brackets(src)
	if err != nil {
		return nil, err
	}
	rowSrc, err := splitTopLevel(outer)
	if err != nil {
		return nil, err
	}

	rows := make([][]*laurent.Poly, 0, len(rowSrc))
	for i, rs := range rowSrc {
		body, err := brackets(strings.TrimSpace(rs))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		cells, err := splitTopLevel(body)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		row := make([]*laurent.Poly, len(cells))
		for j, cell := range cells {
			p, err := ring.Parse(cell)
			if err != nil {
				return nil, fmt.Errorf("ParseDense(%d,%d): %w: %w", i, j, ErrSyntax, err)
			}
			row[j] = p
		}
		rows = append(rows, row)
	}

	return NewFromRows(ring, rows)
}

// brackets strips one pair of enclosing square brackets.
func brackets(s string) (string, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return "", fmt.Errorf("ParseDense: expected [...] in %q: %w", s, ErrSyntax)
	}

	return s[1 : len(s)-1], nil
}

// splitTopLevel splits on commas that are not nested inside brackets or
// parentheses. Empty input yields no parts; empty parts are rejected.
func splitTopLevel(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("ParseDense: unbalanced %q: %w", s[i], ErrSyntax)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("ParseDense: unbalanced brackets: %w", ErrSyntax)
	}
	parts = append(parts, s[start:])
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return nil, fmt.Errorf("ParseDense: empty element: %w", ErrSyntax)
		}
	}

	return parts, nil
}
