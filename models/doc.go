// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the response envelope and normalized data types.

# Envelope

Every tool returns the same envelope shape:

	{
		"success": true,
		"data": { ... },
		"metadata": { "api_call": "GetRollCalls", "count": 2 }
	}

or, on failure:

	{
		"success": false,
		"error": "Invalid bill number format: ...",
		"error_type": "validation",
		"metadata": { "tool_name": "get_roll_calls", "api_call": "GetRollCalls" }
	}

Invariants:

  - success=true  → data present, error absent
  - success=false → error present (non-empty), data absent
  - metadata is always present and always contains api_call
  - error envelopes additionally carry tool_name in metadata
  - empty-result success envelopes carry a human-readable message in metadata

# Roll Call Types

Normalized output of the get_roll_calls tool:

  - RollCallData: bill_number, biennium, roll_calls
  - RollCall: sequence_number, date, description, four vote tallies, votes
  - Vote: legislator_name, vote, district, party

District is always a string in the output, even when the upstream API
reports it as a number.

# Error Types

	ErrorTypeValidation = "validation"  // malformed caller input
	ErrorTypeUnexpected = "unexpected"  // fetch or normalization failure
*/
package models
