// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fishbits/wa-leg-mcp/middleware"
	"github.com/fishbits/wa-leg-mcp/models"
	"github.com/fishbits/wa-leg-mcp/wslclient"
)

// Upstream is the slice of the legislature client the tools call.
// Implementations never return errors: a nil result means "nothing
// there or the call failed", and the two cases are indistinguishable.
type Upstream interface {
	GetRollCalls(ctx context.Context, biennium string, billNumber int) []wslclient.Record
	GetLegislation(ctx context.Context, biennium, billNumber string) []wslclient.Record
	GetDocuments(ctx context.Context, biennium, namedLike string) []wslclient.Record
	GetCommittees(ctx context.Context, biennium string) []wslclient.Record
	GetCommitteeMeetings(ctx context.Context, beginDate, endDate string) []wslclient.Record
	GetAmendmentsForYear(ctx context.Context, year, billNumber int) []wslclient.Record
	GetSessionLawByBill(ctx context.Context, biennium, billNumber string) wslclient.Record
}

var (
	errNoDigits   = errors.New("no digits in bill number")
	errNotANumber = errors.New("bill number out of range")
)

// parseBillNumber canonicalizes a bill identifier ("HB 1234", "SB 5678",
// or "1234") to its integer bill number: take the last whitespace-separated
// token, strip every non-digit character, and parse what remains.
func parseBillNumber(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if fields := strings.Fields(s); len(fields) > 0 {
		s = fields[len(fields)-1]
	}

	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0, errNoDigits
	}

	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, errNotANumber
	}
	return n, nil
}

// billNumberValidation maps a parseBillNumber failure to its envelope.
func billNumberValidation(err error, toolName, apiCall, raw string) models.Envelope {
	if errors.Is(err, errNotANumber) {
		return middleware.ValidationError(toolName, apiCall,
			fmt.Sprintf("Invalid bill number: %s. Must be a valid number.", raw))
	}
	return middleware.ValidationError(toolName, apiCall,
		fmt.Sprintf("Invalid bill number format: %s. Expected format: 'HB 1234', 'SB 5678', or '1234'", raw))
}

// Record field helpers: upstream records are loosely typed, so every
// read degrades to a zero value rather than failing.

func intField(rec wslclient.Record, key string) int {
	switch v := rec[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return 0
}

func stringField(rec wslclient.Record, key string) string {
	if v, ok := rec[key].(string); ok {
		return v
	}
	return ""
}

// stringify renders any scalar as its string form; nil becomes "".
func stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// anySlice widens decoded records for inclusion in envelope data.
func anySlice(records []wslclient.Record) []any {
	out := make([]any, len(records))
	for i, rec := range records {
		out[i] = rec
	}
	return out
}
