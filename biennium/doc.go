// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package biennium resolves and validates Washington legislative bienniums.

A biennium is a two-year legislative period identified as "YYYY-YY",
for example "2023-24". Bienniums always begin in odd-numbered years,
so a date in an even-numbered year belongs to the biennium that started
the year before.

	biennium.At(time.Date(2024, 6, 1, ...)) // "2023-24"
	biennium.Current()                      // biennium covering today
	biennium.Valid("2025-26")               // true
*/
package biennium
