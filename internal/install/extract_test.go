package install

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/gover/internal/testutil"
)

func TestStripComponent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		keep bool
	}{
		{name: "top-level dir skipped", in: "go/", keep: false},
		{name: "dot-prefixed top-level dir skipped", in: "./go/", keep: false},
		{name: "file", in: "go/VERSION", want: "VERSION", keep: true},
		{name: "nested file", in: "go/bin/go", want: "bin/go", keep: true},
		{name: "dot prefix", in: "./go/bin/go", want: "bin/go", keep: true},
		{name: "bare name skipped", in: "README", keep: false},
		{name: "dot skipped", in: ".", keep: false},
		{name: "empty skipped", in: "", keep: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, keep := stripComponent(tt.in)
			if keep != tt.keep {
				t.Fatalf("stripComponent(%q) keep = %v, want %v", tt.in, keep, tt.keep)
			}
			if keep && got != tt.want {
				t.Errorf("stripComponent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractTarGz(t *testing.T) {
	archive := testutil.TarGz(t, []testutil.ArchiveEntry{
		{Name: "go/", Dir: true},
		{Name: "go/VERSION", Body: "go1.22.3"},
		{Name: "go/bin/", Dir: true},
		{Name: "go/bin/go", Body: "binary", Mode: 0o755},
		{Name: "go/bin/gofmt-link", Link: "go"},
	})

	dest := t.TempDir()
	if err := extractTarGz(bytes.NewReader(archive), dest); err != nil {
		t.Fatalf("extract: %v", err)
	}

	body, err := os.ReadFile(filepath.Join(dest, "VERSION"))
	if err != nil {
		t.Fatalf("read VERSION: %v", err)
	}
	if string(body) != "go1.22.3" {
		t.Errorf("VERSION = %q", body)
	}

	info, err := os.Stat(filepath.Join(dest, "bin", "go"))
	if err != nil {
		t.Fatalf("stat bin/go: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("bin/go mode = %#o", info.Mode().Perm())
	}

	link, err := os.Readlink(filepath.Join(dest, "bin", "gofmt-link"))
	if err != nil {
		t.Fatalf("readlink: %v", err)
	}
	if link != "go" {
		t.Errorf("link target = %q", link)
	}
}

func TestExtractTarGzRejectsTraversal(t *testing.T) {
	archive := testutil.TarGz(t, []testutil.ArchiveEntry{
		{Name: "go/../../../evil", Body: "nope"},
	})

	dest := t.TempDir()
	err := extractTarGz(bytes.NewReader(archive), dest)
	if err == nil {
		t.Fatal("expected traversal error")
	}
	if _, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil")); statErr == nil {
		t.Fatal("traversal entry was written outside dest")
	}
}

func TestExtractTarGzRejectsGarbage(t *testing.T) {
	if err := extractTarGz(bytes.NewReader([]byte("not a gzip stream")), t.TempDir()); err == nil {
		t.Fatal("expected gzip error")
	}
}
