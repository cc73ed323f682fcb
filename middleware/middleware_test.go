// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/fishbits/wa-leg-mcp/models"
)

func TestSuccess(t *testing.T) {
	env := Success(map[string]any{"k": "v"}, map[string]any{models.MetaAPICall: "GetRollCalls"})

	if !env.Success {
		t.Error("expected success")
	}
	if env.Error != "" || env.ErrorType != "" {
		t.Errorf("success envelope must not carry error fields, got %q/%q", env.Error, env.ErrorType)
	}
	if env.Data == nil {
		t.Error("expected data")
	}
	if env.Metadata[models.MetaAPICall] != "GetRollCalls" {
		t.Errorf("unexpected metadata %v", env.Metadata)
	}
}

func TestValidationError(t *testing.T) {
	env := ValidationError("get_roll_calls", "GetRollCalls", "bad input")

	if env.Success {
		t.Error("expected failure")
	}
	if env.Data != nil {
		t.Errorf("failure envelope must not carry data, got %v", env.Data)
	}
	if env.Error != "bad input" {
		t.Errorf("unexpected error %q", env.Error)
	}
	if env.ErrorType != models.ErrorTypeValidation {
		t.Errorf("unexpected error type %q", env.ErrorType)
	}
	if env.Metadata[models.MetaToolName] != "get_roll_calls" {
		t.Errorf("unexpected tool_name %v", env.Metadata[models.MetaToolName])
	}
	if env.Metadata[models.MetaAPICall] != "GetRollCalls" {
		t.Errorf("unexpected api_call %v", env.Metadata[models.MetaAPICall])
	}
}

func TestUnexpectedError(t *testing.T) {
	env := UnexpectedError("get_roll_calls", "GetRollCalls", "boom")

	if env.Success || env.ErrorType != models.ErrorTypeUnexpected {
		t.Errorf("unexpected envelope %#v", env)
	}
}

func TestToolResult(t *testing.T) {
	result, err := ToolResult(Success("payload", map[string]any{models.MetaAPICall: "Op"}))
	if err != nil {
		t.Fatalf("ToolResult failed: %v", err)
	}
	if len(result.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	want := `{"success":true,"data":"payload","metadata":{"api_call":"Op"}}`
	if text.Text != want {
		t.Errorf("unexpected body:\n got %s\nwant %s", text.Text, want)
	}
}

func TestWithLogging(t *testing.T) {
	var called bool
	inner := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("ok"), nil
	}

	result, err := WithLogging("test_tool", inner)(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("wrapped handler failed: %v", err)
	}
	if !called {
		t.Error("inner handler was not called")
	}
	if result == nil || len(result.Content) != 1 {
		t.Error("result was not passed through")
	}
}

func TestWithLogging_Error(t *testing.T) {
	wantErr := errors.New("handler blew up")
	inner := func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	}

	_, err := WithLogging("test_tool", inner)(context.Background(), mcp.CallToolRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected the handler error back, got %v", err)
	}
}
