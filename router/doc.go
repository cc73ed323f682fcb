// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the MCP server together.

# Server Construction

NewServer creates a configured server.MCPServer with all tools
registered:

	s := router.NewServer(client)

# Tools

Roll call votes:

	get_roll_calls - votes for a bill, normalized and chronologically sorted

Bill lookup:

	get_bill_info      - bill details and current status
	get_bill_documents - bill text, amendments, reports

Committees:

	get_committees         - committee list for a biennium
	get_committee_meetings - meetings in a date range

Amendments and session laws:

	get_bill_amendments - amendments for a bill in a year
	get_session_law     - chapter info for an enacted bill

# Tool Initialization

The router creates tool instances with dependency injection:

	rollCallTool := tools.NewRollCallTool(client)
	billTool := tools.NewBillTool(client)

All tools receive the upstream client; there is no ambient global.
Every handler is wrapped in middleware.WithLogging, and the server
runs with panic recovery enabled.
*/
package router
