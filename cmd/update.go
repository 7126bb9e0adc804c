package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Install the latest mathdrill release",
	Long: `Download a mathdrill release from GitHub, verify it against the
release checksums and replace the running binary with it.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().Bool("check", false, "only report whether a newer release exists")
	updateCmd.Flags().String("to", "", "install this release tag instead of the latest")
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))

	if only, _ := cmd.Flags().GetBool("check"); only {
		res, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			return fmt.Errorf("check for updates: %w", err)
		}
		if res.UpdateAvailable {
			fmt.Fprintf(out, "mathdrill %s is available (running %s)\n%s\n", res.LatestVersion, version, res.ReleaseURL)
		} else {
			fmt.Fprintf(out, "mathdrill %s is up to date\n", version)
		}
		return nil
	}

	target, _ := cmd.Flags().GetString("to")
	err := checker.Update(ctx, &selfupdate.UpdateInput{CurrentVersion: version, TargetVersion: target},
		func(p selfupdate.UpdateProgress) { fmt.Fprintln(out, p.Message) })
	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		fmt.Fprintln(out, "This is a development build; install a release build to use update.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		fmt.Fprintln(out, "Already running the latest version.")
		return nil
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w\n\nTry running: sudo mathdrill update", err)
	}
	return err
}
