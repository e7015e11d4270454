package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/conn-castle/gover/internal/doctor"
	"github.com/conn-castle/gover/internal/goversion"
	"github.com/conn-castle/gover/internal/index"
	"github.com/conn-castle/gover/internal/install"
	"github.com/conn-castle/gover/internal/messages"
	"github.com/conn-castle/gover/internal/platform"
	"github.com/conn-castle/gover/internal/run"
)

// Environment flags mirrored by the --debug and --dry-run cobra flags.
const (
	EnvDebug  = "GOVER_DEBUG"
	EnvDryRun = "GOVER_DRY_RUN"
)

// Seams for tests.
var (
	indexBaseURL   = index.DefaultBaseURL
	detectPlatform = platform.Detect
)

// isTerminal reports whether stdout and stderr are interactive terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

func newRootCmd() *cobra.Command {
	var debug bool
	var dryRun bool
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			channel, err := index.ParseChannel(arg)
			if err != nil {
				return err
			}
			runner := &run.Runner{
				Debug:  debug || envFlag(EnvDebug),
				DryRun: dryRun || envFlag(EnvDryRun),
				Stderr: cmd.ErrOrStderr(),
			}
			return installChannel(cmd, channel, runner)
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, messages.RootFlagDebug)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, messages.RootFlagDryRun)
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

// installChannel resolves the latest release for the channel and installs it
// unless the version directory already exists.
func installChannel(cmd *cobra.Command, channel index.Channel, runner *run.Runner) error {
	out := cmd.OutOrStdout()

	p, err := detectPlatform()
	if err != nil {
		return err
	}
	root, err := install.DefaultRoot()
	if err != nil {
		return err
	}
	if !runner.DryRun {
		if result := doctor.CheckRoot(root); result.Status == doctor.StatusFail {
			return errors.New(result.Message)
		}
	}

	client := index.NewClient(index.WithBaseURL(indexBaseURL), index.WithRunner(runner))
	info, err := client.Resolve(cmd.Context(), channel, p)
	if errors.Is(err, index.ErrNoPrerelease) {
		_, _ = fmt.Fprint(out, messages.InstallNoPrerelease)
		return nil
	}
	if err != nil {
		return err
	}

	suffix, err := goversion.Parse(info.Version)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InstallResolvedFmt, channel, suffix, info.Filename)

	inst := install.New(root, install.WithRunner(runner))
	installed, err := inst.Installed(suffix)
	if err != nil {
		return err
	}
	if installed {
		_, _ = fmt.Fprintf(out, messages.InstallUpToDateFmt, suffix, inst.InstallPath(suffix))
		return nil
	}

	if err := inst.Install(cmd.Context(), channel, suffix, client.DownloadURL(info.Filename)); err != nil {
		return err
	}
	if runner.DryRun {
		return nil
	}
	_, _ = fmt.Fprintf(out, messages.InstallInstalledFmt, suffix, inst.InstallPath(suffix))
	_, _ = fmt.Fprintf(out, messages.InstallLinkedFmt, channel, suffix)
	return nil
}

// envFlag reports whether the named environment variable is set to a
// non-empty value.
func envFlag(name string) bool {
	return strings.TrimSpace(os.Getenv(name)) != ""
}
