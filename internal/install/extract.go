package install

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/gover/internal/messages"
)

// extractTarGz unpacks a gzipped tar stream into dest, stripping one leading
// path component from every entry: the archive's internal top-level directory
// is discarded in favor of the version-named directory already created.
func extractTarGz(r io.Reader, dest string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		rel, ok := stripComponent(header.Name)
		if !ok {
			continue
		}
		target := filepath.Join(dest, rel)
		if err := ensureWithinRoot(dest, target); err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, header.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf(messages.InstallTarEntryFmt, header.Name, err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, header.FileInfo().Mode().Perm()); err != nil {
				return fmt.Errorf(messages.InstallTarEntryFmt, header.Name, err)
			}
		case tar.TypeSymlink:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return fmt.Errorf(messages.InstallTarEntryFmt, header.Name, err)
			}
			if err := os.Symlink(header.Linkname, target); err != nil {
				return fmt.Errorf(messages.InstallTarEntryFmt, header.Name, err)
			}
		case tar.TypeXGlobalHeader:
			// PAX metadata, nothing to materialize.
		default:
			return fmt.Errorf(messages.InstallTarUnsupportedFmt, header.Name)
		}
	}
	return nil
}

func writeFile(target string, r io.Reader, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// stripComponent drops the first path component of an archive entry name.
// Entries that are the leading component itself have nothing left and are
// skipped.
func stripComponent(name string) (string, bool) {
	clean := path.Clean(strings.TrimPrefix(name, "./"))
	if clean == "." || clean == "/" {
		return "", false
	}
	idx := strings.Index(clean, "/")
	if idx < 0 {
		return "", false
	}
	rest := clean[idx+1:]
	if rest == "" || rest == "." {
		return "", false
	}
	return rest, true
}

// ensureWithinRoot rejects entry paths that would escape the destination.
func ensureWithinRoot(root string, target string) error {
	root = filepath.Clean(root)
	target = filepath.Clean(target)
	if target == root {
		return nil
	}
	if !strings.HasPrefix(target, root+string(os.PathSeparator)) {
		return fmt.Errorf(messages.InstallTarIllegalPathFmt, target)
	}
	return nil
}
