package doctor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckRootWritableDir(t *testing.T) {
	result := CheckRoot(t.TempDir())
	if result.Status != StatusOK {
		t.Fatalf("status = %v, message = %q", result.Status, result.Message)
	}
}

func TestCheckRootMissingButCreatable(t *testing.T) {
	result := CheckRoot(filepath.Join(t.TempDir(), "a", "b", "gover"))
	if result.Status != StatusOK {
		t.Fatalf("status = %v, message = %q", result.Status, result.Message)
	}
	if result.Message == "" {
		t.Fatal("expected a message naming the root")
	}
}

func TestCheckRootConflictingFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "gover")
	if err := os.WriteFile(root, nil, 0o644); err != nil {
		t.Fatalf("write conflicting file: %v", err)
	}

	result := CheckRoot(root)
	if result.Status != StatusFail {
		t.Fatalf("status = %v, want fail", result.Status)
	}
	if result.Recommendation == "" {
		t.Fatal("expected a recommendation")
	}
}

func TestCheckRootUnwritableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	root := filepath.Join(t.TempDir(), "gover")
	if err := os.Mkdir(root, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result := CheckRoot(root)
	if result.Status != StatusFail {
		t.Fatalf("status = %v, want fail", result.Status)
	}
}

func TestCheckIndexReachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	result := CheckIndex(context.Background(), srv.URL+"/dl/", srv.Client())
	if result.Status != StatusOK {
		t.Fatalf("status = %v, message = %q", result.Status, result.Message)
	}
}

func TestCheckIndexUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	result := CheckIndex(context.Background(), srv.URL+"/dl/", nil)
	if result.Status != StatusFail {
		t.Fatalf("status = %v, want fail", result.Status)
	}
	if result.Recommendation == "" {
		t.Fatal("expected a recommendation")
	}
}

func TestCheckIndexBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	result := CheckIndex(context.Background(), srv.URL+"/dl/", srv.Client())
	if result.Status != StatusFail {
		t.Fatalf("status = %v, want fail", result.Status)
	}
}

func TestCheckIndexSkippedWithoutNetwork(t *testing.T) {
	t.Setenv(EnvNoNetwork, "1")

	result := CheckIndex(context.Background(), "http://127.0.0.1:0/dl/", nil)
	if result.Status != StatusWarn {
		t.Fatalf("status = %v, want warn", result.Status)
	}
}

func TestCheckPlatformOnBuildHost(t *testing.T) {
	result := CheckPlatform()
	switch runtime.GOOS {
	case "linux", "darwin":
		if result.Status != StatusOK {
			t.Fatalf("status = %v, message = %q", result.Status, result.Message)
		}
	default:
		if result.Status != StatusFail {
			t.Fatalf("status = %v, want fail on %s", result.Status, runtime.GOOS)
		}
	}
}
