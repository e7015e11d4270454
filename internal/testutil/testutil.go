// Package testutil provides fixtures shared by installer and CLI tests.
package testutil

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"testing"
)

// ArchiveEntry describes one entry of a test archive.
type ArchiveEntry struct {
	Name string
	Body string
	Mode int64
	Link string
	Dir  bool
}

// TarGz builds a gzipped tar archive in memory.
// t is the active test; entries are written in order.
func TarGz(t *testing.T, entries []ArchiveEntry) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	for _, entry := range entries {
		header := &tar.Header{Name: entry.Name, Mode: entry.Mode}
		switch {
		case entry.Dir:
			header.Typeflag = tar.TypeDir
			if header.Mode == 0 {
				header.Mode = 0o755
			}
		case entry.Link != "":
			header.Typeflag = tar.TypeSymlink
			header.Linkname = entry.Link
			if header.Mode == 0 {
				header.Mode = 0o777
			}
		default:
			header.Typeflag = tar.TypeReg
			header.Size = int64(len(entry.Body))
			if header.Mode == 0 {
				header.Mode = 0o644
			}
		}
		if err := tw.WriteHeader(header); err != nil {
			t.Fatalf("write tar header %s: %v", entry.Name, err)
		}
		if header.Typeflag == tar.TypeReg {
			if _, err := tw.Write([]byte(entry.Body)); err != nil {
				t.Fatalf("write tar body %s: %v", entry.Name, err)
			}
		}
	}

	if err := tw.Close(); err != nil {
		t.Fatalf("close tar writer: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}
	return buf.Bytes()
}

// GoArchive builds a minimal toolchain archive with the conventional go/
// top-level directory, the layout the real distribution archives use.
func GoArchive(t *testing.T, version string) []byte {
	t.Helper()
	return TarGz(t, []ArchiveEntry{
		{Name: "go/", Dir: true},
		{Name: "go/VERSION", Body: version},
		{Name: "go/bin/", Dir: true},
		{Name: "go/bin/go", Body: "#!/bin/sh\necho " + version + "\n", Mode: 0o755},
	})
}
