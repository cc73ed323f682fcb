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
	billInfoToolName = "get_bill_info"
	billInfoAPICall  = "GetLegislation"

	billDocumentsToolName = "get_bill_documents"
	billDocumentsAPICall  = "GetDocuments"
)

// BillTool looks up bill details and bill documents.
type BillTool struct {
	client          Upstream
	currentBiennium func() string
}

func NewBillTool(client Upstream) *BillTool {
	return &BillTool{client: client, currentBiennium: biennium.Current}
}

func (t *BillTool) InfoDefinition() mcp.Tool {
	return mcp.NewTool(billInfoToolName,
		mcp.WithDescription("Get detailed information about a bill: sponsor, description, current status, and legislative history."),
		mcp.WithString("bill_number",
			mcp.Required(),
			mcp.Description("Bill number in format 'HB 1234' or 'SB 5678' or just the number (e.g. '1234')"),
		),
		mcp.WithString("biennium",
			mcp.Description("Legislative biennium in format 'YYYY-YY' (e.g. '2023-24'); defaults to the current biennium"),
		),
	)
}

func (t *BillTool) HandleInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	billNumber, err := req.RequireString("bill_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return middleware.ToolResult(t.GetBillInfo(ctx, billNumber, req.GetString("biennium", "")))
}

// GetBillInfo fetches the legislation records for a bill.
func (t *BillTool) GetBillInfo(ctx context.Context, billNumber, bienniumArg string) models.Envelope {
	b := bienniumArg
	if b == "" {
		b = t.currentBiennium()
	}

	num, err := parseBillNumber(billNumber)
	if err != nil {
		return billNumberValidation(err, billInfoToolName, billInfoAPICall, billNumber)
	}

	records := t.client.GetLegislation(ctx, b, strconv.Itoa(num))

	if len(records) == 0 {
		return middleware.Success(models.BillData{
			BillNumber: billNumber,
			Biennium:   b,
			Bills:      []any{},
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No legislation found for bill %s in biennium %s", billNumber, b),
			models.MetaAPICall: billInfoAPICall,
		})
	}

	return middleware.Success(models.BillData{
		BillNumber: billNumber,
		Biennium:   b,
		Bills:      anySlice(records),
	}, map[string]any{
		models.MetaAPICall: billInfoAPICall,
		models.MetaCount:   len(records),
	})
}

func (t *BillTool) DocumentsDefinition() mcp.Tool {
	return mcp.NewTool(billDocumentsToolName,
		mcp.WithDescription("List legislative documents for a bill: bill text, amendments, and bill reports."),
		mcp.WithString("bill_number",
			mcp.Required(),
			mcp.Description("Bill number in format 'HB 1234' or 'SB 5678' or just the number (e.g. '1234')"),
		),
		mcp.WithString("biennium",
			mcp.Description("Legislative biennium in format 'YYYY-YY' (e.g. '2023-24'); defaults to the current biennium"),
		),
	)
}

func (t *BillTool) HandleDocuments(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	billNumber, err := req.RequireString("bill_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return middleware.ToolResult(t.GetBillDocuments(ctx, billNumber, req.GetString("biennium", "")))
}

// GetBillDocuments fetches the document list for a bill.
func (t *BillTool) GetBillDocuments(ctx context.Context, billNumber, bienniumArg string) models.Envelope {
	b := bienniumArg
	if b == "" {
		b = t.currentBiennium()
	}

	num, err := parseBillNumber(billNumber)
	if err != nil {
		return billNumberValidation(err, billDocumentsToolName, billDocumentsAPICall, billNumber)
	}

	records := t.client.GetDocuments(ctx, b, strconv.Itoa(num))

	if len(records) == 0 {
		return middleware.Success(models.DocumentData{
			BillNumber: billNumber,
			Biennium:   b,
			Documents:  []any{},
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No documents found for bill %s in biennium %s", billNumber, b),
			models.MetaAPICall: billDocumentsAPICall,
		})
	}

	return middleware.Success(models.DocumentData{
		BillNumber: billNumber,
		Biennium:   b,
		Documents:  anySlice(records),
	}, map[string]any{
		models.MetaAPICall: billDocumentsAPICall,
		models.MetaCount:   len(records),
	})
}
