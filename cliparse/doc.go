// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: SSE server listen port (default: 3320)
  - BaseURL: Upstream WSL web services URL (default: https://wslwebservices.leg.wa.gov)
  - Transport: MCP transport, stdio or sse (default: stdio)
  - TimeoutSeconds: Upstream HTTP timeout (default: 30)

# CLI Flags

	-p        SSE server port
	-u        Upstream base URL
	-t        Transport (stdio or sse)
	-timeout  Upstream HTTP timeout in seconds

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	WSL_API_URL         → -u
	MCP_TRANSPORT       → -t
	WSL_TIMEOUT_SECONDS → -timeout

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if values are malformed:

  - Transport must be stdio or sse
  - PORT and WSL_TIMEOUT_SECONDS must be numeric
*/
package cliparse
