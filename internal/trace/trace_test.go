package trace_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"place/internal/trace"
)

func TestParseLevel(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want trace.Level
		ok   bool
	}{
		{"off", trace.LevelOff, true},
		{"PHASE", trace.LevelPhase, true},
		{"debug", trace.LevelDebug, true},
		{"loud", trace.LevelOff, false},
	} {
		got, err := trace.ParseLevel(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelPhase, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)

	ctx, drv := trace.Start(ctx, trace.ScopeDriver, "expand")
	_, file := trace.Start(ctx, trace.ScopeFile, "file:a.place")
	file.End("")
	trace.Point(ctx, trace.ScopeMarker, "marker:__string__", "")
	drv.End("ok")

	out := buf.String()
	if !strings.Contains(out, "→ expand") || !strings.Contains(out, "← expand (ok)") {
		t.Errorf("driver span missing:\n%s", out)
	}
	if strings.Contains(out, "file:a.place") || strings.Contains(out, "marker:") {
		t.Errorf("fine-grained events leaked at phase level:\n%s", out)
	}
}

func TestNDJSONParentLinks(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDebug, trace.FormatNDJSON)
	ctx := trace.WithTracer(context.Background(), tr)

	ctx, pass := trace.Start(ctx, trace.ScopePass, "lex")
	trace.Point(ctx, trace.ScopeMarker, "marker:__head__", "1 args")
	trace.Error(ctx, "load", errors.New("boom"))
	pass.WithExtra("files", "2").End("")

	type line struct {
		Kind     string            `json:"kind"`
		Scope    string            `json:"scope"`
		SpanID   uint64            `json:"span_id"`
		ParentID uint64            `json:"parent_id"`
		Name     string            `json:"name"`
		Detail   string            `json:"detail"`
		Extra    map[string]string `json:"extra"`
	}
	var events []line
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var ev line
		if err := json.Unmarshal([]byte(raw), &ev); err != nil {
			t.Fatalf("bad ndjson line %q: %v", raw, err)
		}
		events = append(events, ev)
	}
	if len(events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(events))
	}
	if events[1].ParentID != pass.ID() || events[1].Detail != "1 args" {
		t.Errorf("point not parented to pass: %+v", events[1])
	}
	if events[2].Kind != "error" || events[2].Detail != "boom" {
		t.Errorf("unexpected error event %+v", events[2])
	}
	if events[3].Kind != "end" || events[3].Extra["files"] != "2" {
		t.Errorf("unexpected end event %+v", events[3])
	}
}

func TestNopTracer(t *testing.T) {
	tr, err := trace.New(trace.Config{Level: trace.LevelOff})
	if err != nil {
		t.Fatal(err)
	}
	if tr.Enabled() {
		t.Fatal("off level must yield a disabled tracer")
	}
	ctx, s := trace.Start(trace.WithTracer(context.Background(), tr), trace.ScopeDriver, "x")
	if s.ID() != 0 || trace.CurrentSpan(ctx).SpanID != 0 {
		t.Errorf("disabled span got an id")
	}
	if s.End("") < 0 {
		t.Errorf("negative duration")
	}
}
