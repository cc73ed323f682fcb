// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides tool-call middleware and envelope helpers.

# Call Logging

Wrap tool handlers with call logging when registering them:

	s.AddTool(tool.Definition(), middleware.WithLogging("get_roll_calls", tool.Handle))

Logs call start (tool, request_id) and completion (duration_ms), with a
fresh correlation id per invocation.

# Envelope Helpers

Build the uniform response envelope:

	middleware.Success(data, map[string]any{models.MetaAPICall: "GetRollCalls"})
	middleware.ValidationError("get_roll_calls", "GetRollCalls", "Invalid bill number ...")
	middleware.UnexpectedError("get_roll_calls", "GetRollCalls", "Failed to fetch ...")

Convert an envelope into the MCP result returned to the caller:

	return middleware.ToolResult(env)

ToolResult serializes the envelope as JSON text content; the envelope is
the contract, so tool failures are reported inside it rather than as MCP
protocol errors.
*/
package middleware
