package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/bot"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run quizzes in Telegram chats",
	Long: `Run the Telegram bot with long polling.

The token comes from telegram.token in the config file or from
MATHDRILL_TELEGRAM_TOKEN.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		st, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		b, err := bot.New(bot.Options{
			Token:        cfg.Telegram.Token,
			PollInterval: cfg.Telegram.PollInterval,
			Engine:       problemgen.New(problemgen.NewRandomSource()),
			EventRepo:    st.EventRepo(),
			Explainer:    newExplainer(ctx, cfg, st.EventRepo()),
			Practice:     cfg.Practice,
			Logger:       log.New(os.Stderr, "bot: ", log.LstdFlags),
		})
		if err != nil {
			return err
		}
		b.Run(ctx)
		return nil
	},
}
