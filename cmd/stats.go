package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		modeVal, _ := cmd.Flags().GetString("mode")

		var mode problemgen.Mode
		if modeVal != "" {
			m, err := problemgen.ParseMode(modeVal)
			if err != nil {
				return err
			}
			mode = m
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

		ctx := cmd.Context()
		repo := st.EventRepo()

		out := cmd.OutOrStdout()
		modes, err := repo.ModeStats(ctx)
		if err != nil {
			return fmt.Errorf("query mode stats: %w", err)
		}
		if len(modes) == 0 {
			fmt.Fprintln(out, "No quizzes finished yet.")
			return nil
		}

		rows := make([][]string, len(modes))
		for i, m := range modes {
			rows[i] = []string{problemgen.Mode(m.Mode).Label(), strconv.Itoa(m.Sessions),
				strconv.Itoa(m.Questions), strconv.Itoa(m.Correct),
				fmt.Sprintf("%d%%", session.Accuracy(m.Correct, m.Questions))}
		}
		printTable(out, "By mode", []string{"Mode", "Quizzes", "Questions", "Correct", "Accuracy"}, rows)

		sessions, err := repo.RecentSessions(ctx, store.QueryOpts{Limit: limit, Mode: string(mode)})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(sessions) > 0 {
			rows = make([][]string, len(sessions))
			for i, s := range sessions {
				rows[i] = []string{s.Timestamp.Local().Format("2006-01-02 15:04"),
					problemgen.Mode(s.Mode).Label(),
					fmt.Sprintf("%d/%d", s.CorrectAnswers, s.QuestionsServed),
					fmt.Sprintf("%d%%", session.Accuracy(s.CorrectAnswers, s.QuestionsServed)),
					fmt.Sprintf("%d:%02d", s.DurationSecs/60, s.DurationSecs%60)}
			}
			fmt.Fprintln(out)
			printTable(out, "Recent quizzes", []string{"Finished", "Mode", "Score", "Accuracy", "Time"}, rows)
		}

		missed, err := repo.MissedFacts(ctx, 10)
		if err != nil {
			return fmt.Errorf("query missed facts: %w", err)
		}
		if len(missed) > 0 {
			rows = make([][]string, len(missed))
			for i, f := range missed {
				rows[i] = []string{f.Symbolic, strconv.Itoa(f.Misses)}
			}
			fmt.Fprintln(out)
			printTable(out, "Most missed", []string{"Question", "Misses"}, rows)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent quizzes to show")
	statsCmd.Flags().StringP("mode", "m", "", "Only show quizzes of this mode")
}
