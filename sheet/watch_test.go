package sheet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "switch.yaml")
	if err := os.WriteFile(path, []byte(switchSheet), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchDebounced(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	edited := strings.Replace(switchSheet, "value: 18", "value: 24", 1)
	if err := os.WriteFile(path, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}

	// A reload can catch the file mid-write; keep waiting for the full one.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case s := <-w.Updates:
			st, _ := s.State("checked")
			left, _ := st.Lookup("slider_left")
			if left.Value != 24.0 {
				t.Errorf("reloaded slider_left = %v, want 24", left.Value)
			}
			return
		case err := <-w.Errors:
			t.Logf("transient load error: %v", err)
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatchReportsBadSheet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "switch.yaml")
	if err := os.WriteFile(path, []byte(switchSheet), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchDebounced(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("properties: {x: vector}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-w.Updates:
		t.Fatal("a broken sheet should not be delivered")
	case err := <-w.Errors:
		if !strings.Contains(err.Error(), "switch.yaml") {
			t.Errorf("err = %v, want the file name", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the load error")
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "switch.yaml")
	if err := os.WriteFile(path, []byte(switchSheet), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := WatchDebounced(path, 20*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case s := <-w.Updates:
		t.Fatalf("unexpected reload: %v", s)
	case err := <-w.Errors:
		t.Fatalf("unexpected error: %v", err)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatchCloseClosesChannels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "switch.yaml")
	if err := os.WriteFile(path, []byte(switchSheet), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := Watch(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, ok := <-w.Updates; ok {
		t.Error("Updates should be closed")
	}
	if _, ok := <-w.Errors; ok {
		t.Error("Errors should be closed")
	}
	// A second Close is a no-op.
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
