// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fishbits/wa-leg-mcp/middleware"
	"github.com/fishbits/wa-leg-mcp/models"
)

const (
	amendmentsToolName = "get_bill_amendments"
	amendmentsAPICall  = "GetAmendmentsForYear"
)

// AmendmentTool lists proposed and adopted amendments for a bill.
type AmendmentTool struct {
	client      Upstream
	currentYear func() int
}

func NewAmendmentTool(client Upstream) *AmendmentTool {
	return &AmendmentTool{
		client:      client,
		currentYear: func() int { return time.Now().Year() },
	}
}

func (t *AmendmentTool) Definition() mcp.Tool {
	return mcp.NewTool(amendmentsToolName,
		mcp.WithDescription("List amendments proposed for a bill in a given year, with sponsors and floor action."),
		mcp.WithString("bill_number",
			mcp.Required(),
			mcp.Description("Bill number in format 'HB 1234' or 'SB 5678' or just the number (e.g. '1234')"),
		),
		mcp.WithNumber("year",
			mcp.Description("Legislative year (e.g. 2023); defaults to the current year"),
		),
	)
}

func (t *AmendmentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	billNumber, err := req.RequireString("bill_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return middleware.ToolResult(t.GetBillAmendments(ctx, billNumber, req.GetInt("year", 0)))
}

// GetBillAmendments fetches the amendments for a bill in a year.
// A zero year means the current year.
func (t *AmendmentTool) GetBillAmendments(ctx context.Context, billNumber string, year int) models.Envelope {
	if year == 0 {
		year = t.currentYear()
	}

	num, err := parseBillNumber(billNumber)
	if err != nil {
		return billNumberValidation(err, amendmentsToolName, amendmentsAPICall, billNumber)
	}

	records := t.client.GetAmendmentsForYear(ctx, year, num)

	if len(records) == 0 {
		return middleware.Success(models.AmendmentData{
			BillNumber: billNumber,
			Year:       year,
			Amendments: []any{},
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No amendments found for bill %s in %d", billNumber, year),
			models.MetaAPICall: amendmentsAPICall,
		})
	}

	return middleware.Success(models.AmendmentData{
		BillNumber: billNumber,
		Year:       year,
		Amendments: anySlice(records),
	}, map[string]any{
		models.MetaAPICall: amendmentsAPICall,
		models.MetaCount:   len(records),
	})
}
