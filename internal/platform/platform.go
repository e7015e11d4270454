// Package platform normalizes the host OS and architecture to the
// identifiers used by the Go release index.
package platform

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/conn-castle/gover/internal/messages"
)

// Platform identifies the release archive flavor for the current host.
type Platform struct {
	OS   string
	Arch string
}

// Detect resolves the platform for the running process.
func Detect() (Platform, error) {
	return Resolve(runtime.GOOS, runtime.GOARCH)
}

// Resolve normalizes an OS and architecture name to the pair used by the
// release index. The mapping is pure: equal inputs always yield equal
// results or equal errors.
func Resolve(osName string, archName string) (Platform, error) {
	goos, err := resolveOS(osName)
	if err != nil {
		return Platform{}, err
	}
	goarch, err := resolveArch(archName)
	if err != nil {
		return Platform{}, err
	}
	return Platform{OS: goos, Arch: goarch}, nil
}

// String returns the os/arch pair in the form used in status output.
func (p Platform) String() string {
	return p.OS + "/" + p.Arch
}

func resolveOS(name string) (string, error) {
	switch strings.ToLower(name) {
	case "linux":
		return "linux", nil
	case "darwin":
		return "darwin", nil
	default:
		return "", fmt.Errorf(messages.PlatformUnknownOSFmt, name)
	}
}

func resolveArch(name string) (string, error) {
	switch arch := strings.ToLower(name); {
	case arch == "amd64" || arch == "x86_64":
		return "amd64", nil
	case arch == "arm64" || arch == "aarch64":
		return "arm64", nil
	case strings.HasPrefix(arch, "arm"):
		// Remaining 32-bit arm variants all use the armv6l build.
		return "armv6l", nil
	default:
		return "", fmt.Errorf(messages.PlatformUnknownArchFmt, name)
	}
}
