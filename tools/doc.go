// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tools contains the MCP tools exposed by the server.

# Tool Types

Each tool is a struct with an injected upstream client:

  - RollCallTool: roll call votes for a bill (get_roll_calls)
  - BillTool: bill details and documents (get_bill_info, get_bill_documents)
  - CommitteeTool: committees and meetings (get_committees, get_committee_meetings)
  - AmendmentTool: amendments for a bill (get_bill_amendments)
  - SessionLawTool: session law chapter for an enacted bill (get_session_law)

Tools are created via constructor functions that accept the Upstream
interface:

	rollCalls := tools.NewRollCallTool(client)

Each tool exposes Definition() for registration and Handle for
dispatch; the envelope-producing method underneath (GetRollCalls and
friends) carries the logic and is what tests exercise.

# Response Discipline

Every tool follows the same pipeline:

 1. Resolve the biennium (or year) if the caller omitted it.
 2. Validate and canonicalize the bill identifier: "HB 1234",
    "SB 5678", and "1234" all resolve to bill number 1234. Bad input
    produces a validation envelope, never an error.
 3. Fetch through the upstream client.
 4. An absent or empty result is success with an explanatory metadata
    message, not an error.
 5. Anything that goes wrong past validation maps to an unexpected-error
    envelope. Nothing propagates to the MCP layer as a fault.

# Roll Call Normalization

get_roll_calls additionally reshapes the upstream payload: vote tallies
default to zero, the votes field tolerates both a wrapper map
({"array_of_vote": [...]}) and a bare sequence, districts are
stringified, and records are sorted ascending by sequence number with a
stable tie-break.
*/
package tools
