// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"testing"

	"github.com/fishbits/wa-leg-mcp/wslclient"
)

// fakeUpstream implements Upstream with overridable call functions.
// Unset calls return nil, the same "nothing there" signal the real
// client produces.
type fakeUpstream struct {
	rollCalls   func(biennium string, billNumber int) []wslclient.Record
	legislation func(biennium, billNumber string) []wslclient.Record
	documents   func(biennium, namedLike string) []wslclient.Record
	committees  func(biennium string) []wslclient.Record
	meetings    func(beginDate, endDate string) []wslclient.Record
	amendments  func(year, billNumber int) []wslclient.Record
	sessionLaw  func(biennium, billNumber string) wslclient.Record
}

func (f *fakeUpstream) GetRollCalls(_ context.Context, biennium string, billNumber int) []wslclient.Record {
	if f.rollCalls == nil {
		return nil
	}
	return f.rollCalls(biennium, billNumber)
}

func (f *fakeUpstream) GetLegislation(_ context.Context, biennium, billNumber string) []wslclient.Record {
	if f.legislation == nil {
		return nil
	}
	return f.legislation(biennium, billNumber)
}

func (f *fakeUpstream) GetDocuments(_ context.Context, biennium, namedLike string) []wslclient.Record {
	if f.documents == nil {
		return nil
	}
	return f.documents(biennium, namedLike)
}

func (f *fakeUpstream) GetCommittees(_ context.Context, biennium string) []wslclient.Record {
	if f.committees == nil {
		return nil
	}
	return f.committees(biennium)
}

func (f *fakeUpstream) GetCommitteeMeetings(_ context.Context, beginDate, endDate string) []wslclient.Record {
	if f.meetings == nil {
		return nil
	}
	return f.meetings(beginDate, endDate)
}

func (f *fakeUpstream) GetAmendmentsForYear(_ context.Context, year, billNumber int) []wslclient.Record {
	if f.amendments == nil {
		return nil
	}
	return f.amendments(year, billNumber)
}

func (f *fakeUpstream) GetSessionLawByBill(_ context.Context, biennium, billNumber string) wslclient.Record {
	if f.sessionLaw == nil {
		return nil
	}
	return f.sessionLaw(biennium, billNumber)
}

func TestParseBillNumber(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"HB 1234", 1234},
		{"SB 5678", 5678},
		{"1234", 1234},
		{"5678", 5678},
		{"  HB 1234  ", 1234},
		{"ESHB 2SHB 1000", 1000}, // last token wins
		{"HB1234", 1234},         // no space: strip the prefix letters
		{"E2SHB1234", 21234},     // every digit in the token survives stripping
	}

	for _, tc := range cases {
		got, err := parseBillNumber(tc.in)
		if err != nil {
			t.Errorf("parseBillNumber(%q) failed: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseBillNumber(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestParseBillNumber_Invalid(t *testing.T) {
	for _, in := range []string{"INVALID", "", "   ", "HB", "SB ???"} {
		if _, err := parseBillNumber(in); err == nil {
			t.Errorf("parseBillNumber(%q) should fail", in)
		}
	}

	// Too many digits for an int: format error, not a panic
	if _, err := parseBillNumber("99999999999999999999999"); err == nil {
		t.Error("parseBillNumber should fail on overflow")
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"7", "7"},
		{1, "1"},
		{42.0, "42"},
		{true, "true"},
	}
	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Errorf("stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
