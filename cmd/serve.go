package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/api"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve quizzes over HTTP/JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := api.New(api.Options{
			Engine:         problemgen.New(problemgen.NewRandomSource()),
			EventRepo:      st.EventRepo(),
			Explainer:      newExplainer(ctx, cfg, st.EventRepo()),
			Practice:       cfg.Practice,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		})
		return srv.Run(ctx, cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from config, :8080)")
}
