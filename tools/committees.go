// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fishbits/wa-leg-mcp/biennium"
	"github.com/fishbits/wa-leg-mcp/middleware"
	"github.com/fishbits/wa-leg-mcp/models"
)

const (
	committeesToolName = "get_committees"
	committeesAPICall  = "GetCommittees"

	meetingsToolName = "get_committee_meetings"
	meetingsAPICall  = "GetCommitteeMeetings"
)

// CommitteeTool lists committees and committee meetings.
type CommitteeTool struct {
	client          Upstream
	currentBiennium func() string
}

func NewCommitteeTool(client Upstream) *CommitteeTool {
	return &CommitteeTool{client: client, currentBiennium: biennium.Current}
}

func (t *CommitteeTool) CommitteesDefinition() mcp.Tool {
	return mcp.NewTool(committeesToolName,
		mcp.WithDescription("List House and Senate committees for a biennium, with names, acronyms, and contact phone numbers."),
		mcp.WithString("biennium",
			mcp.Description("Legislative biennium in format 'YYYY-YY' (e.g. '2023-24'); defaults to the current biennium"),
		),
	)
}

func (t *CommitteeTool) HandleCommittees(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return middleware.ToolResult(t.GetCommittees(ctx, req.GetString("biennium", "")))
}

// GetCommittees fetches the committee list for a biennium.
func (t *CommitteeTool) GetCommittees(ctx context.Context, bienniumArg string) models.Envelope {
	b := bienniumArg
	if b == "" {
		b = t.currentBiennium()
	}

	records := t.client.GetCommittees(ctx, b)

	if len(records) == 0 {
		return middleware.Success(models.CommitteeData{
			Biennium:   b,
			Committees: []any{},
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No committees found for biennium %s", b),
			models.MetaAPICall: committeesAPICall,
		})
	}

	return middleware.Success(models.CommitteeData{
		Biennium:   b,
		Committees: anySlice(records),
	}, map[string]any{
		models.MetaAPICall: committeesAPICall,
		models.MetaCount:   len(records),
	})
}

func (t *CommitteeTool) MeetingsDefinition() mcp.Tool {
	return mcp.NewTool(meetingsToolName,
		mcp.WithDescription("List committee meetings scheduled in a date range, with agendas and locations."),
		mcp.WithString("begin_date",
			mcp.Required(),
			mcp.Description("Start of the date range, YYYY-MM-DD"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("End of the date range, YYYY-MM-DD"),
		),
	)
}

func (t *CommitteeTool) HandleMeetings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	beginDate, err := req.RequireString("begin_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	endDate, err := req.RequireString("end_date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return middleware.ToolResult(t.GetCommitteeMeetings(ctx, beginDate, endDate))
}

// GetCommitteeMeetings fetches committee meetings in a date range.
func (t *CommitteeTool) GetCommitteeMeetings(ctx context.Context, beginDate, endDate string) models.Envelope {
	if beginDate == "" || endDate == "" {
		return middleware.ValidationError(meetingsToolName, meetingsAPICall,
			"begin_date and end_date are required")
	}

	records := t.client.GetCommitteeMeetings(ctx, beginDate, endDate)

	if len(records) == 0 {
		return middleware.Success(models.MeetingData{
			BeginDate: beginDate,
			EndDate:   endDate,
			Meetings:  []any{},
		}, map[string]any{
			models.MetaMessage: fmt.Sprintf("No committee meetings found between %s and %s", beginDate, endDate),
			models.MetaAPICall: meetingsAPICall,
		})
	}

	return middleware.Success(models.MeetingData{
		BeginDate: beginDate,
		EndDate:   endDate,
		Meetings:  anySlice(records),
	}, map[string]any{
		models.MetaAPICall: meetingsAPICall,
		models.MetaCount:   len(records),
	})
}
