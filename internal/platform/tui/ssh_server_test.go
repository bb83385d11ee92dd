package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestHostKeyPathCreatesDirectory(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "nested", "host_key")
	got, err := hostKeyPath(want)
	if err != nil {
		t.Fatalf("hostKeyPath() error: %v", err)
	}
	if got != want {
		t.Errorf("hostKeyPath() = %q, want %q", got, want)
	}
	if info, err := os.Stat(filepath.Dir(want)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestSSHServerServeStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	srv, err := NewSSHServer(cfg, quietLogger())
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	if srv.store == nil {
		t.Error("run history should open in a writable directory")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve() = %v, want clean shutdown", err)
		}
	case <-time.After(shutdownGrace + time.Second):
		t.Fatal("Serve() did not return after cancel")
	}
	if n := srv.ActiveSessions(); n != 0 {
		t.Errorf("ActiveSessions() = %d after shutdown", n)
	}
}
