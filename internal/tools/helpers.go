// Package tools implements MCP tool handlers over the insight core and
// the profile store.
//
// Each tool is a struct holding its dependencies, with Definition()
// returning the mcp.Tool schema and Handle() processing a call. Argument
// and lookup problems are reported as tool errors (IsError results), never
// as Go errors, so the host model can correct itself.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/cosmic-cycles/internal/profile"
)

// timeNow is a package-level variable for testability.
var timeNow = time.Now

// ProfileStore is the persistence the profile and insight tools need.
// *profile.Store satisfies it.
type ProfileStore interface {
	Save(ctx context.Context, name string, p profile.Profile) error
	Load(ctx context.Context, name string) (*profile.Record, error)
	List(ctx context.Context) ([]profile.Record, error)
	Delete(ctx context.Context, name string) error
}

const (
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// withFormat adds the shared output format option.
func withFormat() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format: markdown (default) or json"),
		mcp.Enum(formatMarkdown, formatJSON),
	)
}

// intArg extracts a whole-number argument from a tool request, returning
// defaultVal if the key is missing. JSON numbers arrive as float64, so a
// fractional or non-numeric value is an error rather than truncated.
func intArg(req mcp.CallToolRequest, key string, defaultVal int) (int, error) {
	raw, ok := req.GetArguments()[key]
	if !ok || raw == nil {
		return defaultVal, nil
	}
	v, ok := raw.(float64)
	if !ok || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("'%s' must be a whole number, got %v", key, raw)
	}
	return int(v), nil
}

// optionalArg returns a pointer to the argument when it is present with
// type T, or nil. Zero values such as 0 or "" count as present.
func optionalArg[T any](req mcp.CallToolRequest, key string) *T {
	v, ok := req.GetArguments()[key].(T)
	if !ok {
		return nil
	}
	return &v
}

// dateArg parses a YYYY-MM-DD argument. A missing argument means today.
func dateArg(req mcp.CallToolRequest, key string) (time.Time, error) {
	s := req.GetString(key, "")
	if s == "" {
		return timeNow(), nil
	}
	t, err := profile.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' must be YYYY-MM-DD, got %q", key, s)
	}
	return t, nil
}

// render returns v as JSON when the request asks for it, otherwise the
// markdown produced by md.
func render(req mcp.CallToolRequest, v any, md func() string) (*mcp.CallToolResult, error) {
	if req.GetString("format", formatMarkdown) != formatJSON {
		return mcp.NewToolResultText(md()), nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
