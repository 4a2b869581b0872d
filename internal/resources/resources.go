// Package resources implements MCP resource handlers.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (cosmic://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/cosmic-cycles/internal/profile"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
)

const (
	// ProfileURI addresses the configured profile.
	ProfileURI = "cosmic://profile/default"
	// SignsURI addresses the zodiac catalogue.
	SignsURI = "cosmic://zodiac/signs"

	mimeJSON = "application/json"
)

// ProfileLoader is the slice of the profile store the resources read from.
type ProfileLoader interface {
	Load(ctx context.Context, name string) (*profile.Record, error)
}

// Handler manages cosmic resource endpoints.
type Handler struct {
	store       ProfileLoader
	profileName string
}

// NewHandler creates a resource Handler. store may be nil when the
// profile store is unavailable; the profile resource then reports that.
func NewHandler(store ProfileLoader, profileName string) *Handler {
	return &Handler{store: store, profileName: profileName}
}

// ProfileResource returns the MCP resource definition for the configured profile.
func (h *Handler) ProfileResource() mcp.Resource {
	return mcp.NewResource(
		ProfileURI,
		"Cosmic Profile",
		mcp.WithResourceDescription("Birth data, last period start and cycle length of the configured profile"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// HandleProfile returns the configured profile as JSON.
func (h *Handler) HandleProfile(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	if h.store == nil {
		return errorResource(req.Params.URI, "profile store is unavailable"), nil
	}

	rec, err := h.store.Load(ctx, h.profileName)
	if errors.Is(err, profile.ErrNotFound) {
		return errorResource(req.Params.URI,
			fmt.Sprintf("no profile named %q yet, save one with profile_save", h.profileName)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	return jsonResource(req.Params.URI, rec)
}

// SignsResource returns the MCP resource definition for the zodiac catalogue.
func (h *Handler) SignsResource() mcp.Resource {
	return mcp.NewResource(
		SignsURI,
		"Zodiac Signs",
		mcp.WithResourceDescription("All twelve sun signs with date ranges, elements, rulers, strengths and challenges"),
		mcp.WithMIMEType(mimeJSON),
	)
}

// SignEntry is one catalogue row.
type SignEntry struct {
	zodiac.Info
	DateRange string `json:"date_range"`
}

// Catalogue lists every sign in zodiac order.
func Catalogue() []SignEntry {
	signs := zodiac.Signs()
	out := make([]SignEntry, 0, len(signs))
	for _, s := range signs {
		out = append(out, SignEntry{Info: zodiac.InfoOf(s), DateRange: zodiac.DateRange(s)})
	}
	return out
}

// HandleSigns returns the zodiac catalogue as JSON.
func (h *Handler) HandleSigns(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(req.Params.URI, Catalogue())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
