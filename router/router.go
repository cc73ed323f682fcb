// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/fishbits/wa-leg-mcp/middleware"
	"github.com/fishbits/wa-leg-mcp/tools"
)

// Name and Version identify the server during the MCP handshake.
const (
	Name    = "wa-leg-mcp"
	Version = "1.0.0"
)

// NewServer builds the MCP server with every tool registered.
// The upstream client is injected here and nowhere else.
func NewServer(client tools.Upstream) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	// Initialize tools
	rollCallTool := tools.NewRollCallTool(client)
	billTool := tools.NewBillTool(client)
	committeeTool := tools.NewCommitteeTool(client)
	amendmentTool := tools.NewAmendmentTool(client)
	sessionLawTool := tools.NewSessionLawTool(client)

	// Roll call votes
	s.AddTool(rollCallTool.Definition(), middleware.WithLogging("get_roll_calls", rollCallTool.Handle))

	// Bill lookup
	s.AddTool(billTool.InfoDefinition(), middleware.WithLogging("get_bill_info", billTool.HandleInfo))
	s.AddTool(billTool.DocumentsDefinition(), middleware.WithLogging("get_bill_documents", billTool.HandleDocuments))

	// Committees
	s.AddTool(committeeTool.CommitteesDefinition(), middleware.WithLogging("get_committees", committeeTool.HandleCommittees))
	s.AddTool(committeeTool.MeetingsDefinition(), middleware.WithLogging("get_committee_meetings", committeeTool.HandleMeetings))

	// Amendments
	s.AddTool(amendmentTool.Definition(), middleware.WithLogging("get_bill_amendments", amendmentTool.Handle))

	// Session laws
	s.AddTool(sessionLawTool.Definition(), middleware.WithLogging("get_session_law", sessionLawTool.Handle))

	return s
}
