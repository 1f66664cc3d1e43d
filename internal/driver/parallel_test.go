package driver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"place/internal/diag"
)

func TestListInputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.place"), "b")
	writeFile(t, filepath.Join(dir, "a.place"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.place"), "c")
	writeFile(t, filepath.Join(dir, "skip.rs"), "x")
	writeFile(t, filepath.Join(dir, ".hidden", "d.place"), "d")

	files, err := ListInputs(dir, "")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.place"),
		filepath.Join(dir, "b.place"),
		filepath.Join(dir, "sub", "c.place"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestExpandDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "ok.place"), "__to_case__(HelloWorld)")
	writeFile(t, filepath.Join(dir, "bad.place"), "__tail__")
	writeFile(t, filepath.Join(dir, "n", "rev.place"), "__reverse__(a b c)")

	var mu sync.Mutex
	var events []Event
	sink := SinkFunc(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})

	_, results, err := ExpandDir(context.Background(), dir, Options{Jobs: 2, OutDir: filepath.Join(dir, "out"), Sink: sink})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	byName := map[string]ExpandResult{}
	for _, r := range results {
		byName[filepath.Base(r.Path)] = r
	}
	if r := byName["ok.place"]; r.Failed || r.Output != "hello_world\n" {
		t.Errorf("ok.place: %+v", r)
	}
	if r := byName["rev.place"]; r.Output != "c b a\n" || r.OutPath != filepath.Join(dir, "out", "n", "rev") {
		t.Errorf("rev.place: output %q out %q", r.Output, r.OutPath)
	}
	if r := byName["bad.place"]; !r.Failed || r.Bag.Len() != 1 {
		t.Errorf("bad.place must fail with one diagnostic: %+v", r)
	}

	if merged := MergeBags(results, 10); merged.Len() != 1 {
		t.Errorf("merged bag has %d items", merged.Len())
	}

	final := map[string]Status{}
	for _, ev := range events {
		if ev.Stage == StageRender && (ev.Status == StatusDone || ev.Status == StatusError) {
			final[filepath.Base(ev.File)] = ev.Status
		}
	}
	if final["ok.place"] != StatusDone || final["bad.place"] != StatusError {
		t.Errorf("unexpected final statuses %v", final)
	}

	for _, r := range results {
		if err := WriteOutput(&r); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "bad")); !os.IsNotExist(err) {
		t.Errorf("failed expansion must not be written")
	}
}

func TestExpandDirEmpty(t *testing.T) {
	_, results, err := ExpandDir(context.Background(), t.TempDir(), Options{})
	if err != nil || len(results) != 0 {
		t.Fatalf("results=%v err=%v", results, err)
	}
}

func TestExpandDirCanceled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.place"), "a")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := ExpandDir(ctx, dir, Options{}); err == nil {
		t.Fatal("expected context error")
	}
}

func TestExpandDirExamples(t *testing.T) {
	root := filepath.Join("..", "..", "testdata", "examples")
	fs, results, err := ExpandDir(context.Background(), root, Options{OutDir: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("no examples found")
	}
	outputs := map[string]string{}
	for _, res := range results {
		if res.Failed || res.Bag.HasErrors() {
			t.Errorf("%s failed:\n%s", res.Path, diag.FormatShortDiagnostics(res.Bag.Items(), fs, true))
			continue
		}
		outputs[filepath.Base(res.Path)] = res.Output
	}
	checks := map[string][]string{
		"consts.place":    {"MAX_RETRY_COUNT", `"my_VarName"`, `"a + b * { c }"`},
		"strings.place":   {`"usage: place expand <path>"`, `"a/c"`, "[3 , 2 , 1]"},
		"accessors.place": {"get_name", "get_limit", "self . name"},
	}
	for name, wants := range checks {
		for _, want := range wants {
			if !strings.Contains(outputs[name], want) {
				t.Errorf("%s output missing %q:\n%s", name, want, outputs[name])
			}
		}
	}
}
