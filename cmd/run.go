package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screen"
	"github.com/abhisek/mathdrill/internal/selfupdate"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return launch(cmd, func(*screen.Services) (app.Options, error) {
		return app.Options{SkipWelcome: noSplash}, nil
	})
}

// launch wires the services shared by every TUI entry point. build
// fills in the rest of the app options once the services exist.
func launch(cmd *cobra.Command, build func(*screen.Services) (app.Options, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	services := newServices(ctx, cmd, cfg, st.EventRepo())
	services.LatestVersion = latestVersion(ctx)

	opts, err := build(services)
	if err != nil {
		return err
	}
	opts.Services = services
	return app.Run(opts)
}

func newServices(ctx context.Context, cmd *cobra.Command, cfg *config.Config, repo store.EventRepo) *screen.Services {
	path := configPath(cmd)
	return &screen.Services{
		Engine:    problemgen.New(problemgen.NewRandomSource()),
		EventRepo: repo,
		Explainer: newExplainer(ctx, cfg, repo),
		Practice:  cfg.Practice,
		SavePractice: func(p config.Practice) error {
			cfg.Practice = p
			return config.Save(path, cfg)
		},
	}
}

// latestVersion returns the newer release tag, or "" when there is none
// or the check fails. Development builds are never checked.
func latestVersion(ctx context.Context) string {
	if version == selfupdate.DevVersion {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	res, err := selfupdate.NewChecker().Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !res.UpdateAvailable {
		return ""
	}
	return res.LatestVersion
}

// beginQuiz starts a quiz for play. An invalid selection comes back as
// its corrective message.
func beginQuiz(ctx context.Context, services *screen.Services, mode problemgen.Mode, cfg problemgen.Config) (*session.SessionState, error) {
	state, err := session.Begin(ctx, services.Engine, mode, cfg, services.EventRepo)
	if err != nil {
		return nil, errors.New(problemgen.ConfigMessage(err))
	}
	return state, nil
}
