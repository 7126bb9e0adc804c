package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/problemgen"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generated quiz with its answers (no database)",
	Long: `Generate a quiz and print every question, its options and the answer.

This is a stateless developer tool: nothing is recorded. Each question is
run through the validators, and failures are reported. Use --seed to get
the same quiz again.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringP("mode", "m", string(problemgen.ModeMultiplication), "Quiz mode: multiplication or inequality")
	previewCmd.Flags().IntSlice("multipliers", nil, "Multipliers (2-10)")
	previewCmd.Flags().StringSlice("operators", nil, "Inequality operators: >, <, >=, <=")
	previewCmd.Flags().IntP("count", "n", 0, "Number of questions")
	previewCmd.Flags().Uint64("seed", 0, "Random seed (0 picks one)")
	previewCmd.Flags().Bool("json", false, "Print JSON")
}

type previewQuestion struct {
	Index    int    `json:"index"`
	Symbolic string `json:"symbolic"`
	Textual  string `json:"textual"`
	Options  []int  `json:"options"`
	Answer   int    `json:"answer"`
	Invalid  string `json:"invalid,omitempty"`
}

type previewOutput struct {
	Mode      problemgen.Mode   `json:"mode"`
	Seed      uint64            `json:"seed,omitempty"`
	Requested int               `json:"requested"`
	Questions []previewQuestion `json:"questions"`
}

func runPreview(cmd *cobra.Command, args []string) error {
	modeVal, _ := cmd.Flags().GetString("mode")
	seed, _ := cmd.Flags().GetUint64("seed")
	asJSON, _ := cmd.Flags().GetBool("json")

	mode, err := problemgen.ParseMode(modeVal)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	practice, err := playPractice(cmd, cfg.Practice)
	if err != nil {
		return err
	}
	quizCfg := practice.QuizConfig(mode)

	src := problemgen.NewRandomSource()
	if seed != 0 {
		src = problemgen.NewSource(seed)
	}
	questions, err := problemgen.New(src).Start(mode, quizCfg)
	if err != nil {
		return errors.New(problemgen.ConfigMessage(err))
	}

	out := previewOutput{Mode: mode, Seed: seed, Requested: quizCfg.QuestionCount}
	validators := problemgen.DefaultValidators()
	var invalid int
	for i := range questions {
		q := &questions[i]
		pq := previewQuestion{
			Index:    i + 1,
			Symbolic: q.Symbolic,
			Textual:  q.Textual,
			Options:  q.Options,
			Answer:   q.Answer,
		}
		if err := problemgen.Validate(q, validators...); err != nil {
			pq.Invalid = err.Error()
			invalid++
		}
		out.Questions = append(out.Questions, pq)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		printPreview(out)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d questions failed validation", invalid, len(questions))
	}
	return nil
}

func printPreview(out previewOutput) {
	fmt.Printf("%s: %d questions", out.Mode.Label(), len(out.Questions))
	if len(out.Questions) < out.Requested {
		fmt.Printf(" (%d requested)", out.Requested)
	}
	fmt.Println()
	fmt.Println()

	for _, q := range out.Questions {
		fmt.Printf("── Question %d ──\n", q.Index)
		fmt.Printf("%s = ?   (%s)\n", q.Symbolic, q.Textual)
		opts := make([]string, len(q.Options))
		for j, o := range q.Options {
			mark := " "
			if o == q.Answer {
				mark = "*"
			}
			opts[j] = fmt.Sprintf("%d)%s%d", j+1, mark, o)
		}
		fmt.Println("  " + strings.Join(opts, "   "))
		if q.Invalid != "" {
			fmt.Printf("\033[31m✗ %s\033[0m\n", q.Invalid)
		}
		fmt.Println()
	}
}
