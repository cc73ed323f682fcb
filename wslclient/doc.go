// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wslclient is a thin client for the Washington State Legislature
web services (https://wslwebservices.leg.wa.gov).

# Call Shape

Every operation is one HTTP GET:

	{base}/{Service}.asmx/{Operation}?arg=value&...

The XML response is decoded generically into Record values
(map[string]any) with snake_case keys, so a response like

	<ArrayOfRollCall>
	  <RollCall>
	    <SequenceNumber>1</SequenceNumber>
	    <Votes><Vote>...</Vote></Votes>
	  </RollCall>
	</ArrayOfRollCall>

unwraps to records whose "votes" field holds {"array_of_vote": [...]}.
Scalar leaves are coerced: digit strings become ints, true/false become
bools, everything else stays a string.

# Error Handling

Operations never return an error. Any failure (network, non-200 status,
malformed XML, missing response key) is logged with the operation name
and arguments, and the operation returns nil. Callers must treat nil and
"the service returned nothing" identically; the two are deliberately
indistinguishable.

# Usage

	client := wslclient.New(cliparse.DefaultBaseURL, 30*time.Second)
	rolls := client.GetRollCalls(ctx, "2023-24", 1234)
	if len(rolls) == 0 {
		// no roll calls, or the call failed — same thing here
	}

One generic fetch/unwrap mechanism backs every operation; the exported
methods in operations.go are a declarative table of
(service, operation, unwrap key, argument shape).
*/
package wslclient
