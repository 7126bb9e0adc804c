package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/screen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away",
	Long: `Start a quiz without going through the menus.

Selections not given on the command line come from the practice section
of the config file.`,
	Example: `  mathdrill play --mode multiplication --multipliers 6,7,8 --count 20
  mathdrill play --mode inequality --operators ">=,<="`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringP("mode", "m", string(problemgen.ModeMultiplication), "Quiz mode: multiplication or inequality")
	playCmd.Flags().IntSlice("multipliers", nil, "Multipliers to drill (2-10)")
	playCmd.Flags().StringSlice("operators", nil, "Inequality operators: >, <, >=, <=")
	playCmd.Flags().IntP("count", "n", 0, "Number of questions")
}

func runPlay(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	mode, err := problemgen.ParseMode(modeVal)
	if err != nil {
		return err
	}

	return launch(cmd, func(services *screen.Services) (app.Options, error) {
		practice, err := playPractice(cmd, services.Practice)
		if err != nil {
			return app.Options{}, err
		}
		state, err := beginQuiz(cmd.Context(), services, mode, practice.QuizConfig(mode))
		if err != nil {
			return app.Options{}, err
		}
		return app.Options{Quiz: state}, nil
	})
}

// playPractice overlays the command line selection on the saved one.
func playPractice(cmd *cobra.Command, base config.Practice) (config.Practice, error) {
	p := base
	if cmd.Flags().Changed("multipliers") {
		p.Multipliers, _ = cmd.Flags().GetIntSlice("multipliers")
	}
	if cmd.Flags().Changed("operators") {
		p.Operators, _ = cmd.Flags().GetStringSlice("operators")
	}
	if cmd.Flags().Changed("count") {
		n, _ := cmd.Flags().GetInt("count")
		if n <= 0 {
			return p, fmt.Errorf("invalid --count %d: must be positive", n)
		}
		p.QuestionCount = n
	}
	return p, nil
}
