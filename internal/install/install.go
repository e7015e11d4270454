// Package install materializes Go toolchain versions under the install root
// and maintains the per-channel symlinks that mark the current release.
package install

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/conn-castle/gover/internal/goversion"
	"github.com/conn-castle/gover/internal/index"
	"github.com/conn-castle/gover/internal/messages"
	"github.com/conn-castle/gover/internal/run"
)

// EnvRoot overrides the default install root (~/.gover).
const EnvRoot = "GOVER_ROOT"

const lockFileName = ".lock"

// DefaultRoot resolves the install root from EnvRoot or the home directory.
func DefaultRoot() (string, error) {
	if root := strings.TrimSpace(os.Getenv(EnvRoot)); root != "" {
		expanded, err := homedir.Expand(root)
		if err != nil {
			return "", fmt.Errorf(messages.InstallResolveRootFmt, err)
		}
		return expanded, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.InstallResolveRootFmt, err)
	}
	return filepath.Join(home, ".gover"), nil
}

// Option configures an Installer.
type Option func(*Installer)

// WithHTTPClient overrides the HTTP client used for archive downloads.
func WithHTTPClient(h *http.Client) Option {
	return func(i *Installer) {
		if h != nil {
			i.httpClient = h
		}
	}
}

// WithRunner attaches the step runner carrying debug and dry-run modes.
func WithRunner(r *run.Runner) Option {
	return func(i *Installer) {
		if r != nil {
			i.runner = r
		}
	}
}

// WithSystem overrides the filesystem implementation.
func WithSystem(sys System) Option {
	return func(i *Installer) {
		if sys != nil {
			i.sys = sys
		}
	}
}

// Installer installs toolchain versions under a fixed root directory.
type Installer struct {
	root       string
	httpClient *http.Client
	runner     *run.Runner
	sys        System
}

// New builds an Installer rooted at root.
func New(root string, opts ...Option) *Installer {
	i := &Installer{
		root:       root,
		httpClient: http.DefaultClient,
		runner:     &run.Runner{},
		sys:        RealSystem{},
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Root returns the install root directory.
func (i *Installer) Root() string {
	return i.root
}

// InstallPath returns the version directory for a bare version suffix.
func (i *Installer) InstallPath(suffix string) string {
	return filepath.Join(i.root, suffix)
}

// Installed reports whether any filesystem entry exists at the version
// directory. Any entry counts; a partially populated directory from an
// earlier aborted run still reads as installed.
func (i *Installer) Installed(suffix string) (bool, error) {
	path := i.InstallPath(suffix)
	if _, err := i.sys.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallCheckPathFmt, path, err)
	}
	return true, nil
}

// Install creates the version directory, streams the archive download
// through extraction into it, and repoints the channel symlink. A failure
// aborts the run; no partial-state cleanup is attempted. Concurrent
// invocations against the same root are serialized by an advisory lock.
func (i *Installer) Install(ctx context.Context, channel index.Channel, suffix string, archiveURL string) error {
	if i.runner.DryRun {
		// Mutating steps echo and skip; nothing to lock.
		return i.steps(ctx, channel, suffix, archiveURL)
	}
	if err := i.sys.MkdirAll(i.root, 0o755); err != nil {
		return fmt.Errorf(messages.InstallCreateDirFmt, i.root, err)
	}
	return withFileLock(filepath.Join(i.root, lockFileName), func() error {
		return i.steps(ctx, channel, suffix, archiveURL)
	})
}

func (i *Installer) steps(ctx context.Context, channel index.Channel, suffix string, archiveURL string) error {
	dir := i.InstallPath(suffix)

	if err := i.runner.Step(fmt.Sprintf(messages.StepCreateInstallDirFmt, dir), func() error {
		if err := i.sys.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf(messages.InstallCreateDirFmt, dir, err)
		}
		return nil
	}); err != nil {
		return err
	}

	if err := i.runner.Step(fmt.Sprintf(messages.StepDownloadExtractFmt, archiveURL, dir), func() error {
		return i.downloadAndExtract(ctx, archiveURL, dir)
	}); err != nil {
		return err
	}

	link := filepath.Join(i.root, string(channel))
	return i.runner.Step(fmt.Sprintf(messages.StepUpdateSymlinkFmt, link, suffix), func() error {
		return i.updateSymlink(channel, suffix)
	})
}

// downloadAndExtract streams the archive response body straight through
// gzip and tar into dir, with no intermediate temp file.
func (i *Installer) downloadAndExtract(ctx context.Context, archiveURL string, dir string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return fmt.Errorf(messages.InstallDownloadFmt, archiveURL, err)
	}
	req.Header.Set("User-Agent", "gover")

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf(messages.InstallDownloadFmt, archiveURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(messages.InstallDownloadStatFmt, archiveURL, resp.Status)
	}

	if err := extractTarGz(resp.Body, dir); err != nil {
		return fmt.Errorf(messages.InstallTarFmt, archiveURL, err)
	}
	return nil
}

// updateSymlink atomically repoints <root>/<channel> at the relative
// version directory name: symlink to a temp name, then rename over.
func (i *Installer) updateSymlink(channel index.Channel, suffix string) error {
	link := filepath.Join(i.root, string(channel))
	tmp := link + ".new"

	if err := i.sys.RemoveAll(tmp); err != nil {
		return fmt.Errorf(messages.InstallSymlinkFmt, tmp, err)
	}
	if err := i.sys.Symlink(suffix, tmp); err != nil {
		return fmt.Errorf(messages.InstallSymlinkFmt, tmp, err)
	}
	if err := i.sys.Rename(tmp, link); err != nil {
		return fmt.Errorf(messages.InstallSymlinkSwapFmt, link, err)
	}
	return nil
}

// InstalledVersions lists the version directories under the root, oldest
// first. Channel symlinks and the lock file are not version directories.
func (i *Installer) InstalledVersions() ([]string, error) {
	entries, err := i.sys.ReadDir(i.root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.InstallCheckPathFmt, i.root, err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			versions = append(versions, entry.Name())
		}
	}
	sort.Slice(versions, func(a, b int) bool {
		return goversion.Compare(versions[a], versions[b]) < 0
	})
	return versions, nil
}

// ChannelTarget returns the version directory name a channel symlink points
// at, if the symlink exists.
func (i *Installer) ChannelTarget(channel index.Channel) (string, bool) {
	target, err := i.sys.Readlink(filepath.Join(i.root, string(channel)))
	if err != nil {
		return "", false
	}
	return target, true
}
