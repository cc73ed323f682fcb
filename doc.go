// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the wa-leg-mcp server.

wa-leg-mcp exposes the Washington State Legislature public web services
as MCP (Model Context Protocol) tools: roll call votes, bill lookup,
committees, amendments, and session laws. Every tool returns a uniform
response envelope with success/data/error/metadata fields.

# Starting the Server

The server speaks MCP over stdio by default:

	go run main.go

Or over SSE:

	go run main.go -t sse -p 3320

# Configuration

Optional settings (flags or environment, a .env file is honored):

  - WSL_API_URL (-u): Upstream web services URL (default: https://wslwebservices.leg.wa.gov)
  - MCP_TRANSPORT (-t): stdio or sse (default: stdio)
  - PORT (-p): SSE listen port (default: 3320)
  - WSL_TIMEOUT_SECONDS (-timeout): Upstream HTTP timeout (default: 30)

# Architecture

The server uses a tool-based architecture with dependency injection:

  - tools: MCP tool implementations (roll calls, bills, committees, ...)
  - router: Tool registration on the MCP server
  - middleware: Call logging and response envelope helpers
  - models: Envelope and normalized data types
  - wslclient: Upstream web services client
  - biennium: Legislative biennium resolution
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
