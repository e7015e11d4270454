// Package index resolves Go toolchain releases from the official release
// index at https://go.dev/dl/.
package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/conn-castle/gover/internal/messages"
	"github.com/conn-castle/gover/internal/platform"
	"github.com/conn-castle/gover/internal/run"
)

const (
	// DefaultBaseURL is the release index and archive download base.
	DefaultBaseURL = "https://go.dev/dl/"

	archiveKind = "archive"
)

// ErrNoPrerelease reports that the index currently lists no prerelease
// build. Callers treat this as "nothing to do", not as a failure.
var ErrNoPrerelease = errors.New("no prerelease release available")

// Channel selects which release is targeted and which symlink is updated.
type Channel string

// The two release channels.
const (
	ChannelStable     Channel = "stable"
	ChannelPrerelease Channel = "prerelease"
)

// ParseChannel validates a channel argument. An empty argument selects the
// stable channel.
func ParseChannel(arg string) (Channel, error) {
	switch arg {
	case "", string(ChannelStable):
		return ChannelStable, nil
	case string(ChannelPrerelease):
		return ChannelPrerelease, nil
	default:
		return "", fmt.Errorf(messages.UnknownChannelFmt, arg)
	}
}

// Release is one entry of the release index.
type Release struct {
	Version string `json:"version"`
	Stable  bool   `json:"stable"`
	Files   []File `json:"files"`
}

// File is one downloadable file of a release.
type File struct {
	Filename string `json:"filename"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Kind     string `json:"kind"`
}

// ReleaseInfo is the resolved outcome: which version to install and which
// archive file serves the current platform.
type ReleaseInfo struct {
	Version  string
	Filename string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the release index base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithHTTPClient overrides the HTTP client used for index queries.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithRunner attaches the step runner used for debug echoing and teeing.
func WithRunner(r *run.Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.runner = r
		}
	}
}

// Client queries the release index.
type Client struct {
	baseURL    string
	httpClient *http.Client
	runner     *run.Runner
}

// NewClient builds a release index client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		runner:     &run.Runner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DownloadURL returns the archive download URL for a resolved filename.
func (c *Client) DownloadURL(filename string) string {
	return c.baseURL + filename
}

// Resolve picks the release the channel targets and its archive for the
// platform. For ChannelStable the first (most recent) index entry wins; for
// ChannelPrerelease the first entry marked not stable wins, and
// ErrNoPrerelease is returned when no such entry exists.
func (c *Client) Resolve(ctx context.Context, channel Channel, p platform.Platform) (ReleaseInfo, error) {
	releases, err := c.fetch(ctx, channel)
	if err != nil {
		return ReleaseInfo{}, err
	}

	rel, err := pick(releases, channel)
	if err != nil {
		return ReleaseInfo{}, err
	}
	if rel.Version == "" {
		return ReleaseInfo{}, fmt.Errorf(messages.IndexMissingVersionFmt, channel)
	}

	for _, f := range rel.Files {
		if f.Kind == archiveKind && f.OS == p.OS && f.Arch == p.Arch {
			return ReleaseInfo{Version: rel.Version, Filename: f.Filename}, nil
		}
	}
	return ReleaseInfo{}, fmt.Errorf(messages.IndexNoArchiveFmt, rel.Version, p.OS, p.Arch)
}

// Releases returns the raw index for the channel, most recent first.
func (c *Client) Releases(ctx context.Context, channel Channel) ([]Release, error) {
	return c.fetch(ctx, channel)
}

func pick(releases []Release, channel Channel) (Release, error) {
	if channel == ChannelPrerelease {
		for _, rel := range releases {
			if !rel.Stable {
				return rel, nil
			}
		}
		return Release{}, ErrNoPrerelease
	}
	if len(releases) == 0 {
		return Release{}, errors.New(messages.IndexNoStableRelease)
	}
	return releases[0], nil
}

// fetch issues the one index GET. The query runs in every mode, including
// dry-run, so availability information is still reported.
func (c *Client) fetch(ctx context.Context, channel Channel) ([]Release, error) {
	url := c.indexURL(channel)

	var releases []Release
	err := c.runner.Query(fmt.Sprintf(messages.StepQueryIndexFmt, url), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf(messages.IndexCreateRequestErrFmt, err)
		}
		req.Header.Set("User-Agent", "gover")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf(messages.IndexFetchErrFmt, err)
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf(messages.IndexUnexpectedStatusFmt, resp.Status)
		}
		if err := json.NewDecoder(c.runner.Tee(resp.Body)).Decode(&releases); err != nil {
			return fmt.Errorf(messages.IndexDecodeErrFmt, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return releases, nil
}

// indexURL builds the query URL. The default index lists stable releases
// only; the prerelease channel needs include=all to see unstable entries.
func (c *Client) indexURL(channel Channel) string {
	if channel == ChannelPrerelease {
		return c.baseURL + "?mode=json&include=all"
	}
	return c.baseURL + "?mode=json"
}
