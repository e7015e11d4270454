// Package doctor checks that the environment can resolve and install Go
// toolchain releases.
package doctor

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/gover/internal/messages"
	"github.com/conn-castle/gover/internal/platform"
)

// EnvNoNetwork disables the release-index reachability probe.
const EnvNoNetwork = "GOVER_NO_NETWORK"

// Status classifies a check outcome.
type Status int

// Check outcomes, from healthy to broken.
const (
	StatusOK Status = iota
	StatusWarn
	StatusFail
)

// Result is one check outcome.
type Result struct {
	Status         Status
	CheckName      string
	Message        string
	Recommendation string
}

// CheckPlatform verifies the host maps to a supported release platform.
func CheckPlatform() Result {
	p, err := platform.Detect()
	if err != nil {
		return Result{
			Status:    StatusFail,
			CheckName: messages.DoctorCheckNamePlat,
			Message:   err.Error(),
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNamePlat,
		Message:   fmt.Sprintf(messages.DoctorPlatformOKFmt, p.OS, p.Arch),
	}
}

// CheckRoot verifies the install root is a writable directory, or that it
// can be created under its nearest existing ancestor.
func CheckRoot(root string) Result {
	info, err := os.Stat(root)
	switch {
	case err == nil && !info.IsDir():
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRoot,
			Message:        fmt.Sprintf(messages.DoctorRootNotDirFmt, root),
			Recommendation: messages.DoctorRootRecommend,
		}
	case err == nil:
		if probeErr := probeWritable(root); probeErr != nil {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameRoot,
				Message:        fmt.Sprintf(messages.DoctorRootNotWritableFmt, root, probeErr),
				Recommendation: messages.DoctorRootRecommend,
			}
		}
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameRoot,
			Message:   fmt.Sprintf(messages.DoctorRootWritableFmt, root),
		}
	case os.IsNotExist(err):
		parent := nearestExisting(root)
		if probeErr := probeWritable(parent); probeErr != nil {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameRoot,
				Message:        fmt.Sprintf(messages.DoctorRootNotWritableFmt, parent, probeErr),
				Recommendation: messages.DoctorRootRecommend,
			}
		}
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameRoot,
			Message:   fmt.Sprintf(messages.DoctorRootCreatableFmt, root),
		}
	default:
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameRoot,
			Message:        fmt.Sprintf(messages.DoctorRootNotWritableFmt, root, err),
			Recommendation: messages.DoctorRootRecommend,
		}
	}
}

// CheckIndex probes the release index endpoint. The probe is skipped with a
// warning when EnvNoNetwork is set.
func CheckIndex(ctx context.Context, baseURL string, httpClient *http.Client) Result {
	if strings.TrimSpace(os.Getenv(EnvNoNetwork)) != "" {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameNetwork,
			Message:   fmt.Sprintf(messages.DoctorNetworkSkippedFmt, EnvNoNetwork),
		}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	url := baseURL + "?mode=json"
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return networkFail(url, err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return networkFail(url, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return networkFail(url, fmt.Errorf("status %s", resp.Status))
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameNetwork,
		Message:   fmt.Sprintf(messages.DoctorNetworkOKFmt, url),
	}
}

func networkFail(url string, err error) Result {
	return Result{
		Status:         StatusFail,
		CheckName:      messages.DoctorCheckNameNetwork,
		Message:        fmt.Sprintf(messages.DoctorNetworkFailedFmt, url, err),
		Recommendation: messages.DoctorNetworkRecommend,
	}
}

func probeWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".gover-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func nearestExisting(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}
