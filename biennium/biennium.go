// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package biennium

import (
	"fmt"
	"regexp"
	"time"
)

var bienniumPattern = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// Current returns the biennium covering today, e.g. "2025-26".
func Current() string {
	return At(time.Now())
}

// At returns the biennium covering the given time.
// Washington legislative bienniums begin in odd-numbered years.
func At(t time.Time) string {
	start := t.Year()
	if start%2 == 0 {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// Valid reports whether s is a well-formed biennium identifier:
// "YYYY-YY" with an odd start year and a consecutive end year.
func Valid(s string) bool {
	m := bienniumPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	var start, end int
	fmt.Sscanf(m[1], "%d", &start)
	fmt.Sscanf(m[2], "%d", &end)
	if start%2 == 0 {
		return false
	}
	return (start+1)%100 == end
}
