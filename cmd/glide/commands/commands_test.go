package commands

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand("test", "none", "today")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSampleLinearHalfway(t *testing.T) {
	out, err := run(t, "sample", "--json", "-t", "1s linear", "--to", "10", "--step", "0.25")
	if err != nil {
		t.Fatal(err)
	}
	var rows []sample
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want 5 (0 through 1s)", len(rows))
	}
	if math.Abs(rows[2].Value-5) > 1e-9 || rows[2].Phase != "running" {
		t.Errorf("row at 0.5s = %+v, want value 5 running", rows[2])
	}
	if rows[4].Value != 10 || rows[4].Phase != "done" {
		t.Errorf("last row = %+v, want value 10 done", rows[4])
	}
}

func TestSampleReversal(t *testing.T) {
	out, err := run(t, "sample", "--json", "-t", "1s linear", "--to", "10",
		"--step", "0.125", "--retarget", "0.25=0")
	if err != nil {
		t.Fatal(err)
	}
	var rows []sample
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatal(err)
	}
	byTime := map[float64]sample{}
	for _, r := range rows {
		byTime[r.Time] = r
	}
	if r := byTime[0.25]; r.Factor != 0.25 || math.Abs(r.Value-2.5) > 1e-9 {
		t.Errorf("row at 0.25s = %+v, want factor 0.25 at 2.5", r)
	}
	if r := byTime[0.375]; math.Abs(r.Value-1.25) > 1e-9 {
		t.Errorf("row at 0.375s = %+v, want 1.25", r)
	}
	if r := byTime[0.5]; r.Value != 0 || r.Phase != "done" {
		t.Errorf("row at 0.5s = %+v, want 0 done", r)
	}
	last := rows[len(rows)-1]
	if math.Abs(last.Time-1.25) > 1e-9 {
		t.Errorf("last sample at %f, want 1.25 (retarget + duration)", last.Time)
	}
}

func TestSampleTable(t *testing.T) {
	out, err := run(t, "sample", "-t", "0.5s ease 0.25s", "--step", "0.25")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "TIME") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "delay") {
		t.Errorf("expected a delay phase row:\n%s", out)
	}
}

func TestSampleErrors(t *testing.T) {
	for _, args := range [][]string{
		{"sample", "-t", "fast"},
		{"sample", "--step", "0"},
		{"sample", "--retarget", "0.5"},
		{"sample", "--retarget", "x=1"},
		{"sample", "--retarget", "1=y"},
	} {
		if _, err := run(t, args...); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

const testSheet = `
properties:
  left: number
  track: color
states:
  default:
    left: {value: 2, transition: "250ms ease"}
    track: {value: "#d7d7d7", transition: "250ms ease"}
  checked:
    left: {value: 18, transition: "250ms ease 50ms"}
`

func TestCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.yaml")
	if err := os.WriteFile(path, []byte(testSheet), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "check", "--json", path)
	if err != nil {
		t.Fatal(err)
	}
	var entries []checkedEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("bad JSON: %v\n%s", err, out)
	}
	if len(entries) != 4 {
		t.Fatalf("got %d entries, want 4", len(entries))
	}
	// checked sorts before default; left before track.
	if e := entries[0]; e.State != "checked" || e.Property != "left" || e.Value != "18" || e.Inherited || math.Abs(e.Delay-0.05) > 1e-9 {
		t.Errorf("entries[0] = %+v", e)
	}
	if e := entries[1]; e.Property != "track" || !e.Inherited || e.Value != "#d7d7d7" {
		t.Errorf("entries[1] = %+v", e)
	}

	out, err = run(t, "check", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "default") || !strings.Contains(out, "STATE") {
		t.Errorf("table output:\n%s", out)
	}
}

func TestCheckRejectsBadSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("properties: {x: number}\nstates: {other: {x: 1}}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, "check", path); err == nil {
		t.Error("expected error for a sheet without a default state")
	}
	if _, err := run(t, "check"); err == nil {
		t.Error("expected error without a path")
	}
}

func TestCurves(t *testing.T) {
	out, err := run(t, "curves")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"ease-in-out", "linear", "outBounce"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %q in:\n%s", name, out)
		}
	}

	out, err = run(t, "curves", "--json", "--samples", "3", "linear", "steps(2, start)")
	if err != nil {
		t.Fatal(err)
	}
	var curves []curveSamples
	if err := json.Unmarshal([]byte(out), &curves); err != nil {
		t.Fatal(err)
	}
	if len(curves) != 2 {
		t.Fatalf("got %d curves", len(curves))
	}
	want := []float64{0, 0.5, 1}
	for i, v := range curves[0].Values {
		if v != want[i] {
			t.Errorf("linear[%d] = %f, want %f", i, v, want[i])
		}
	}
	if got := curves[1].Values[0]; got != 0.5 {
		t.Errorf("steps(2, start)(0) = %f, want 0.5", got)
	}

	if _, err := run(t, "curves", "wobble"); err == nil {
		t.Error("expected error for an unknown curve")
	}
	if _, err := run(t, "curves", "--samples", "1"); err == nil {
		t.Error("expected error for a single sample")
	}
}
