// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fishbits/wa-leg-mcp/biennium"
	"github.com/fishbits/wa-leg-mcp/middleware"
	"github.com/fishbits/wa-leg-mcp/models"
	"github.com/fishbits/wa-leg-mcp/wslclient"
)

const (
	rollCallToolName = "get_roll_calls"
	rollCallAPICall  = "GetRollCalls"
)

// RollCallTool retrieves and normalizes roll call voting records.
type RollCallTool struct {
	client          Upstream
	currentBiennium func() string
}

func NewRollCallTool(client Upstream) *RollCallTool {
	return &RollCallTool{client: client, currentBiennium: biennium.Current}
}

func (t *RollCallTool) Definition() mcp.Tool {
	return mcp.NewTool(rollCallToolName,
		mcp.WithDescription("Retrieve roll call votes for a bill, including how each legislator voted (yea, nay, absent, excused), vote dates, and vote descriptions."),
		mcp.WithString("bill_number",
			mcp.Required(),
			mcp.Description("Bill number in format 'HB 1234' or 'SB 5678' or just the number (e.g. '1234')"),
		),
		mcp.WithString("biennium",
			mcp.Description("Legislative biennium in format 'YYYY-YY' (e.g. '2023-24'); defaults to the current biennium"),
		),
	)
}

func (t *RollCallTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	billNumber, err := req.RequireString("bill_number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return middleware.ToolResult(t.GetRollCalls(ctx, billNumber, req.GetString("biennium", "")))
}

// GetRollCalls fetches all roll call records for a bill, normalizes the
// vote payloads, and returns them sorted chronologically by sequence
// number. Nothing escapes as an error: every failure mode maps to an
// envelope.
func (t *RollCallTool) GetRollCalls(ctx context.Context, billNumber, bienniumArg string) models.Envelope {
	b := bienniumArg
	if b == "" {
		b = t.currentBiennium()
	}

	num, err := parseBillNumber(billNumber)
	if err != nil {
		return billNumberValidation(err, rollCallToolName, rollCallAPICall, billNumber)
	}

	slog.Info("fetching roll calls", "bill_number", num, "biennium", b)

	records := t.client.GetRollCalls(ctx, b, num)

	if len(records) == 0 {
		return middleware.Success(models.RollCallData{
			BillNumber: billNumber,
			Biennium:   b,
			RollCalls:  []models.RollCall{},
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No roll calls found for bill %s in biennium %s", billNumber, b),
			models.MetaAPICall: rollCallAPICall,
		})
	}

	rollCalls := make([]models.RollCall, 0, len(records))
	for _, rec := range records {
		rc, err := normalizeRollCall(rec)
		if err != nil {
			slog.Error("error fetching roll calls", "bill_number", billNumber, "error", err)
			return middleware.UnexpectedError(rollCallToolName, rollCallAPICall,
				"Failed to fetch roll calls: "+err.Error())
		}
		rollCalls = append(rollCalls, rc)
	}

	// Chronological order; equal sequence numbers keep their input order
	sort.SliceStable(rollCalls, func(i, j int) bool {
		return rollCalls[i].SequenceNumber < rollCalls[j].SequenceNumber
	})

	return middleware.Success(models.RollCallData{
		BillNumber: billNumber,
		Biennium:   b,
		RollCalls:  rollCalls,
	}, map[string]any{
		models.MetaAPICall: rollCallAPICall,
		models.MetaCount:   len(rollCalls),
	})
}

func normalizeRollCall(rec wslclient.Record) (models.RollCall, error) {
	entries := votesSequence(rec["votes"])
	votes := make([]models.Vote, 0, len(entries))
	for _, entry := range entries {
		vote, ok := entry.(map[string]any)
		if !ok {
			return models.RollCall{}, fmt.Errorf("malformed vote entry of type %T", entry)
		}
		votes = append(votes, models.Vote{
			LegislatorName: stringField(vote, "name"),
			Vote:           stringField(vote, "vote_value"),
			District:       stringify(vote["district"]),
			Party:          stringField(vote, "party"),
		})
	}

	return models.RollCall{
		SequenceNumber: intField(rec, "sequence_number"),
		Date:           stringField(rec, "vote_date"),
		Description:    stringField(rec, "motion"),
		YeaVotes:       intField(rec, "yea_count"),
		NayVotes:       intField(rec, "nay_count"),
		AbsentVotes:    intField(rec, "absent_count"),
		ExcusedVotes:   intField(rec, "excused_count"),
		Votes:          votes,
	}, nil
}

// votesSequence accepts both upstream shapes for the votes payload: a
// wrapper map holding array_of_vote, or a bare sequence. Anything else
// normalizes to an empty sequence.
func votesSequence(v any) []any {
	switch votes := v.(type) {
	case map[string]any:
		arr, _ := votes["array_of_vote"].([]any)
		return arr
	case []any:
		return votes
	}
	return nil
}
