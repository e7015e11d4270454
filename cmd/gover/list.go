package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/gover/internal/goversion"
	"github.com/conn-castle/gover/internal/index"
	"github.com/conn-castle/gover/internal/install"
	"github.com/conn-castle/gover/internal/messages"
)

func newListCmd() *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if remote {
				return listRemote(cmd)
			}
			return listInstalled(cmd)
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, messages.ListFlagRemote)
	return cmd
}

// listInstalled prints installed versions oldest first, marking the versions
// the channel symlinks point at.
func listInstalled(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	root, err := install.DefaultRoot()
	if err != nil {
		return err
	}
	inst := install.New(root)
	versions, err := inst.InstalledVersions()
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		_, _ = fmt.Fprintln(out, messages.ListNone)
		return nil
	}

	targets := map[string][]string{}
	for _, channel := range []index.Channel{index.ChannelStable, index.ChannelPrerelease} {
		if target, ok := inst.ChannelTarget(channel); ok {
			targets[target] = append(targets[target], string(channel))
		}
	}
	for _, v := range versions {
		printVersion(out, v, targets[v])
	}
	return nil
}

// listRemote prints the versions the release index currently advertises,
// prereleases included, marking the unstable ones.
func listRemote(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	client := index.NewClient(index.WithBaseURL(indexBaseURL))
	releases, err := client.Releases(cmd.Context(), index.ChannelPrerelease)
	if err != nil {
		return err
	}
	for _, release := range releases {
		suffix, err := goversion.Parse(release.Version)
		if err != nil {
			return err
		}
		var marks []string
		if !release.Stable {
			marks = append(marks, string(index.ChannelPrerelease))
		}
		printVersion(out, suffix, marks)
	}
	return nil
}

func printVersion(out io.Writer, version string, marks []string) {
	if len(marks) == 0 {
		_, _ = fmt.Fprintf(out, messages.ListLineFmt, version)
		return
	}
	_, _ = fmt.Fprintf(out, messages.ListMarkedFmt, version, strings.Join(marks, ", "))
}
