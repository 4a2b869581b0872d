package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, r *mcp.GetPromptResult) string {
	t.Helper()
	if len(r.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(r.Messages))
	}
	tc, ok := r.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", r.Messages[0].Content)
	}
	return tc.Text
}

func TestDailyInsightPrompt_Definition(t *testing.T) {
	def := NewDailyInsightPrompt("default").Definition()
	if def.Name != "daily-insight" {
		t.Errorf("Name = %q", def.Name)
	}
	if len(def.Arguments) != 2 {
		t.Errorf("got %d arguments, want 2", len(def.Arguments))
	}
}

func TestDailyInsightPrompt_Handle(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]string
		want    []string
		notWant string
	}{
		{
			name:    "defaults",
			args:    nil,
			want:    []string{"profile='default'", "for today"},
			notWant: "date=",
		},
		{
			name: "explicit",
			args: map[string]string{"profile": "ana", "date": "2024-01-15"},
			want: []string{"profile='ana'", "date='2024-01-15'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.GetPromptRequest{}
			req.Params.Arguments = tt.args

			result, err := NewDailyInsightPrompt("default").Handle(context.Background(), req)
			if err != nil {
				t.Fatalf("Handle: %v", err)
			}
			text := promptText(t, result)
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("prompt should contain %q, got:\n%s", w, text)
				}
			}
			if tt.notWant != "" && strings.Contains(text, tt.notWant) {
				t.Errorf("prompt should not contain %q", tt.notWant)
			}
			if !strings.Contains(text, "cosmic_daily_insight") {
				t.Error("prompt should name the tool")
			}
		})
	}
}
