// Copyright (c) 2025 Fishbits.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wslclient

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client calls the Washington State Legislature web services.
//
// Every exported operation degrades to nil on failure: the error is
// logged with the operation name and arguments, and callers cannot
// distinguish a failed call from a legitimately empty result. Nothing
// here ever raises to the caller.
type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

// fetch performs one GET against {base}/{service}.asmx/{operation} and
// decodes the XML response into the generic record shape.
func (c *Client) fetch(ctx context.Context, service, operation string, args url.Values) (map[string]any, error) {
	u := fmt.Sprintf("%s/%s.asmx/%s", c.baseURL, service, operation)
	if len(args) > 0 {
		u += "?" + args.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%s returned status %d: %s", operation, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return decodeResponse(resp.Body)
}

// list unwraps a list-valued response key. Failure and empty are the
// same to callers: both come back nil.
func (c *Client) list(ctx context.Context, service, operation, unwrap string, args url.Values) []Record {
	result, err := c.fetch(ctx, service, operation, args)
	if err != nil {
		slog.Error("upstream call failed", "operation", operation, "args", args.Encode(), "error", err)
		return nil
	}

	items, ok := result[unwrap].([]any)
	if !ok {
		return nil
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if rec, isRec := item.(Record); isRec {
			records = append(records, rec)
		}
	}
	return records
}

// one unwraps a single-record response key.
func (c *Client) one(ctx context.Context, service, operation, unwrap string, args url.Values) Record {
	result, err := c.fetch(ctx, service, operation, args)
	if err != nil {
		slog.Error("upstream call failed", "operation", operation, "args", args.Encode(), "error", err)
		return nil
	}

	rec, _ := result[unwrap].(Record)
	return rec
}
