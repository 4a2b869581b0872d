package resources

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/cosmic-cycles/internal/profile"
	"github.com/HendryAvila/cosmic-cycles/internal/zodiac"
)

func readReq(uri string) mcp.ReadResourceRequest {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	return req
}

func textOf(t *testing.T, contents []mcp.ResourceContents) mcp.TextResourceContents {
	t.Helper()
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("content is %T, want TextResourceContents", contents[0])
	}
	return tc
}

func newStore(t *testing.T) *profile.Store {
	t.Helper()
	s, err := profile.New(profile.Config{DataDir: t.TempDir()})
	if err != nil {
		t.Fatalf("profile.New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestHandleProfile(t *testing.T) {
	store := newStore(t)
	p := profile.Default()
	p.BirthDate = "1990-03-21"
	p.LastPeriodStart = "2024-01-01"
	if err := store.Save(context.Background(), profile.DefaultName, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	h := NewHandler(store, profile.DefaultName)
	contents, err := h.HandleProfile(context.Background(), readReq(ProfileURI))
	if err != nil {
		t.Fatalf("HandleProfile: %v", err)
	}
	tc := textOf(t, contents)
	if tc.MIMEType != "application/json" || tc.URI != ProfileURI {
		t.Errorf("got URI %q MIME %q", tc.URI, tc.MIMEType)
	}

	var rec profile.Record
	if err := json.Unmarshal([]byte(tc.Text), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Profile.BirthDate != "1990-03-21" || rec.Profile.CycleLength != 28 {
		t.Errorf("unexpected profile: %+v", rec.Profile)
	}
}

func TestHandleProfile_Missing(t *testing.T) {
	h := NewHandler(newStore(t), "ana")
	contents, err := h.HandleProfile(context.Background(), readReq(ProfileURI))
	if err != nil {
		t.Fatalf("HandleProfile: %v", err)
	}
	tc := textOf(t, contents)
	if tc.MIMEType != "text/plain" || !strings.Contains(tc.Text, `"ana"`) {
		t.Errorf("expected a plain-text error naming the profile, got %q (%s)", tc.Text, tc.MIMEType)
	}
}

func TestHandleProfile_NoStore(t *testing.T) {
	h := NewHandler(nil, profile.DefaultName)
	contents, err := h.HandleProfile(context.Background(), readReq(ProfileURI))
	if err != nil {
		t.Fatalf("HandleProfile: %v", err)
	}
	if tc := textOf(t, contents); !strings.HasPrefix(tc.Text, "Error:") {
		t.Errorf("expected error text, got %q", tc.Text)
	}
}

func TestHandleSigns(t *testing.T) {
	h := NewHandler(nil, profile.DefaultName)
	contents, err := h.HandleSigns(context.Background(), readReq(SignsURI))
	if err != nil {
		t.Fatalf("HandleSigns: %v", err)
	}

	var got []SignEntry
	if err := json.Unmarshal([]byte(textOf(t, contents).Text), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 12 {
		t.Fatalf("got %d signs, want 12", len(got))
	}
	if got[0].Sign != zodiac.Aries || got[0].DateRange != "Mar 21 - Apr 19" || got[0].Element != zodiac.Fire {
		t.Errorf("first entry = %+v", got[0])
	}
	if got[11].Sign != zodiac.Pisces {
		t.Errorf("last entry = %s, want Pisces", got[11].Sign)
	}
}

func TestResourceDefinitions(t *testing.T) {
	h := NewHandler(nil, profile.DefaultName)
	for _, r := range []mcp.Resource{h.ProfileResource(), h.SignsResource()} {
		if r.URI == "" || r.Name == "" || r.MIMEType != "application/json" {
			t.Errorf("incomplete resource definition: %+v", r)
		}
	}
}
