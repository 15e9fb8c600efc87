package markdown_test

import (
	"strings"
	"testing"

	"huntlog/internal/platform/markdown"
)

func TestRenderThenSplit(t *testing.T) {
	t.Parallel()
	out, err := markdown.Render(map[string]any{"hunts": 3, "character": "Knight"}, "# Report\n")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "---\n") || !strings.Contains(out, "hunts: 3") {
		t.Fatalf("unexpected render output: %q", out)
	}
	meta, body, err := markdown.Split(out)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if meta["character"] != "Knight" || meta["hunts"] != 3 {
		t.Fatalf("unexpected meta: %v", meta)
	}
	if body != "\n# Report\n" {
		t.Fatalf("unexpected body: %q", body)
	}
}

func TestSplitWithoutFrontmatterAndBroken(t *testing.T) {
	t.Parallel()
	meta, body, err := markdown.Split("plain text")
	if err != nil || len(meta) != 0 || body != "plain text" {
		t.Fatalf("plain split: %v %v %q", err, meta, body)
	}
	if _, _, err := markdown.Split("---\nkey: value\n"); err == nil {
		t.Fatalf("missing closing fence should fail")
	}
}

func TestReplaceBlock(t *testing.T) {
	t.Parallel()
	const start, end = "<!-- s -->", "<!-- e -->"
	first := markdown.ReplaceBlock("my notes", start, end, "v1")
	if first != "my notes\n\n<!-- s -->\nv1\n<!-- e -->\n" {
		t.Fatalf("append block: %q", first)
	}
	second := markdown.ReplaceBlock(first, start, end, "v2")
	if !strings.Contains(second, "my notes") || strings.Contains(second, "v1") || !strings.Contains(second, "v2") {
		t.Fatalf("replace block: %q", second)
	}
	if got := markdown.ReplaceBlock("  ", start, end, "x"); got != "<!-- s -->\nx\n<!-- e -->\n" {
		t.Fatalf("empty body: %q", got)
	}
}
