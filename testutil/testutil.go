// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fishbits/wa-leg-mcp/models"
)

// NewUpstream starts a canned-response fixture standing in for the WSL
// web services. Keys are request paths ("/LegislationService.asmx/GetRollCalls"),
// values are XML bodies. Unknown paths return 404.
func NewUpstream(t *testing.T, responses map[string]string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/xml; charset=utf-8")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// DecodeEnvelope extracts the response envelope from an MCP tool result.
func DecodeEnvelope(t *testing.T, result *mcp.CallToolResult) models.Envelope {
	t.Helper()

	if result == nil {
		t.Fatal("nil tool result")
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}

	var env models.Envelope
	if err := json.Unmarshal([]byte(text.Text), &env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

// NewRequest builds a tool call request for Handle-level tests.
func NewRequest(tool string, args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Name = tool
	req.Params.Arguments = args
	return req
}

// CheckEnvelope asserts the envelope invariants that hold for every
// tool response: success has data and no error, failure has a non-empty
// error and no data, and metadata always carries api_call.
func CheckEnvelope(t *testing.T, env models.Envelope) {
	t.Helper()

	if env.Success {
		if env.Data == nil {
			t.Error("success envelope missing data")
		}
		if env.Error != "" {
			t.Errorf("success envelope has error %q", env.Error)
		}
	} else {
		if env.Error == "" {
			t.Error("failure envelope missing error")
		}
		if env.Data != nil {
			t.Errorf("failure envelope has data %v", env.Data)
		}
	}

	if env.Metadata == nil {
		t.Fatal("envelope missing metadata")
	}
	if _, ok := env.Metadata[models.MetaAPICall]; !ok {
		t.Error("metadata missing api_call")
	}
}
