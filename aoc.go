// Package aoc are quick & dirty utilities for solving Advent of Code
// problems. (forked from maisem/aoc, which was forked from bradfitz/aoc)
package aoc

import "strings"

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Line is a single non-blank line of input.
type Line struct {
	// Num is the 1-based line number in the original text.
	Num  int
	Text string
}

// Lines returns the trimmed, non-blank lines of s. Windows line endings are
// accepted.
func Lines(s string) []Line {
	var out []Line
	for i, l := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		out = append(out, Line{Num: i + 1, Text: l})
	}
	return out
}
