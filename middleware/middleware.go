// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fishbits/wa-leg-mcp/models"
)

// WithLogging wraps a tool handler with call logging
func WithLogging(toolName string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		requestID := uuid.NewString()

		// Log call
		slog.Info("tool call started",
			"tool", toolName,
			"request_id", requestID,
		)

		// Call the next handler
		result, err := next(ctx, req)

		// Log completion
		duration := time.Since(start)
		if err != nil {
			slog.Error("tool call failed",
				"tool", toolName,
				"request_id", requestID,
				"duration_ms", duration.Milliseconds(),
				"error", err,
			)
		} else {
			slog.Info("tool call completed",
				"tool", toolName,
				"request_id", requestID,
				"duration_ms", duration.Milliseconds(),
			)
		}

		return result, err
	}
}

// Success builds a success envelope
func Success(data any, metadata map[string]any) models.Envelope {
	return models.Envelope{
		Success:  true,
		Data:     data,
		Metadata: metadata,
	}
}

// ValidationError builds a validation-failure envelope
func ValidationError(toolName, apiCall, message string) models.Envelope {
	return models.Envelope{
		Success:   false,
		Error:     message,
		ErrorType: models.ErrorTypeValidation,
		Metadata: map[string]any{
			models.MetaToolName: toolName,
			models.MetaAPICall:  apiCall,
		},
	}
}

// UnexpectedError builds an unexpected-failure envelope
func UnexpectedError(toolName, apiCall, message string) models.Envelope {
	return models.Envelope{
		Success:   false,
		Error:     message,
		ErrorType: models.ErrorTypeUnexpected,
		Metadata: map[string]any{
			models.MetaToolName: toolName,
			models.MetaAPICall:  apiCall,
		},
	}
}

// ToolResult marshals an envelope into an MCP text result
func ToolResult(env models.Envelope) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(env)
	if err != nil {
		slog.Error("failed to encode envelope", "error", err)
		return mcp.NewToolResultError("failed to encode response: " + err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
