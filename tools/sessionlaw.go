// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fishbits/wa-leg-mcp/biennium"
	"github.com/fishbits/wa-leg-mcp/middleware"
	"github.com/fishbits/wa-leg-mcp/models"
)

const (
	sessionLawToolName = "get_session_law"
	sessionLawAPICall  = "GetSessionLawByBill"
)

// SessionLawTool looks up the session law chapter for an enacted bill.
type SessionLawTool struct {
	client          Upstream
	currentBiennium func() string
}

func NewSessionLawTool(client Upstream) *SessionLawTool {
	return &SessionLawTool{client: client, currentBiennium: biennium.Current}
}

func (t *SessionLawTool) Definition() mcp.Tool {
	return mcp.NewTool(sessionLawToolName,
		mcp.WithDescription("Get the session law chapter for an enacted bill, including chapter number and effective date."),
		mcp.WithString("bill_number",
			mcp.Required(),
			mcp.Description("Bill number in format 'HB 1234' or 'SB 5678' or just the number (e.g. '1234')"),
		),
		mcp.WithString("biennium",
			mcp.Description("Legislative biennium in format 'YYYY-YY' (e.g. '2023-24'); defaults to the current biennium"),
		),
	)
}

func (t *SessionLawTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	billNumber, err := req.RequireString("bill_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return middleware.ToolResult(t.GetSessionLaw(ctx, billNumber, req.GetString("biennium", "")))
}

// GetSessionLaw fetches the session law record for a bill, if the bill
// was enacted.
func (t *SessionLawTool) GetSessionLaw(ctx context.Context, billNumber, bienniumArg string) models.Envelope {
	b := bienniumArg
	if b == "" {
		b = t.currentBiennium()
	}

	num, err := parseBillNumber(billNumber)
	if err != nil {
		return billNumberValidation(err, sessionLawToolName, sessionLawAPICall, billNumber)
	}

	law := t.client.GetSessionLawByBill(ctx, b, strconv.Itoa(num))

	if law == nil {
		return middleware.Success(models.SessionLawData{
			BillNumber: billNumber,
			Biennium:   b,
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No session law found for bill %s in biennium %s", billNumber, b),
			models.MetaAPICall: sessionLawAPICall,
		})
	}

	return middleware.Success(models.SessionLawData{
		BillNumber: billNumber,
		Biennium:   b,
		SessionLaw: law,
	}, map[string]any{
		models.MetaAPICall: sessionLawAPICall,
	})
}
