package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/llm"
	"github.com/abhisek/mathdrill/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM calls made for explanations",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE:  runLLMList,
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE:  runLLMView,
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE:  runLLMStats,
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "only show calls with this purpose, e.g. explain")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}

func runLLMList(cmd *cobra.Command, _ []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	purpose, _ := cmd.Flags().GetString("purpose")

	events, err := llmEvents(cmd, store.QueryOpts{Limit: limit})
	if err != nil {
		return err
	}
	if purpose != "" {
		events = slices.DeleteFunc(events, func(e store.LLMRequestEventRecord) bool { return e.Purpose != purpose })
	}

	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No LLM calls recorded.")
		return nil
	}

	rows := make([][]string, len(events))
	for i, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		rows[i] = []string{
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format(timeLayout),
			e.Purpose,
			truncate(e.Model, 28),
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			ok,
		}
	}
	printTable(out, "LLM calls", []string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK"}, rows)
	return nil
}

func runLLMView(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid ID %q: %w", args[0], err)
	}

	s, err := storeForCmd(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("get LLM call: %w", err)
	}
	if e == nil {
		return fmt.Errorf("LLM call %d not found", id)
	}

	out := cmd.OutOrStdout()
	fields := [][2]string{
		{"ID", strconv.Itoa(e.ID)},
		{"Time", e.Timestamp.Local().Format(timeLayout)},
		{"Provider", e.Provider},
		{"Model", e.Model},
		{"Purpose", e.Purpose},
		{"Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens)},
		{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
		{"Success", strconv.FormatBool(e.Success)},
	}
	if e.ErrorMessage != "" {
		fields = append(fields, [2]string{"Error", e.ErrorMessage})
	}
	for _, f := range fields {
		fmt.Fprintf(out, "%-10s %s\n", f[0]+":", f[1])
	}

	printBody(out, "REQUEST", e.RequestBody)
	printBody(out, "RESPONSE", e.ResponseBody)
	return nil
}

func printBody(w io.Writer, title, body string) {
	rule := strings.Repeat("─", 60)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintf(w, "\n%s\n%s\n%s\n%s\n", rule, title, rule, strings.TrimRight(body, "\n"))
}

func runLLMStats(cmd *cobra.Command, _ []string) error {
	events, err := llmEvents(cmd, store.QueryOpts{})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(events) == 0 {
		fmt.Fprintln(out, "No LLM usage recorded yet.")
		return nil
	}

	var total usage
	var rows [][]string
	for _, u := range usageBy(events, func(e store.LLMRequestEventRecord) string { return e.Purpose }) {
		rows = append(rows, []string{u.Key, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens),
			strconv.Itoa(u.OutputTokens), strconv.FormatInt(u.AvgLatencyMs, 10)})
		total.Calls += u.Calls
		total.InputTokens += u.InputTokens
		total.OutputTokens += u.OutputTokens
	}
	rows = append(rows, []string{"total", strconv.Itoa(total.Calls), strconv.Itoa(total.InputTokens),
		strconv.Itoa(total.OutputTokens), ""})
	printTable(out, "Usage by purpose", []string{"Purpose", "Calls", "Input", "Output", "Avg ms"}, rows)

	rows = nil
	var cost float64
	var unpriced []string
	for _, u := range usageBy(events, func(e store.LLMRequestEventRecord) string { return e.Model }) {
		price := "?"
		if c := llm.LookupCost(u.Key); c != nil {
			usd := c.Cost(u.InputTokens, u.OutputTokens)
			cost += usd
			price = formatCost(usd)
		} else {
			unpriced = append(unpriced, u.Key)
		}
		rows = append(rows, []string{truncate(u.Key, 32), strconv.Itoa(u.Calls),
			strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens), price})
	}
	label := "total"
	if len(unpriced) > 0 {
		label = "total (partial)"
	}
	rows = append(rows, []string{label, "", "", "", formatCost(cost)})
	fmt.Fprintln(out)
	printTable(out, "Estimated cost (USD)", []string{"Model", "Calls", "Input", "Output", "Cost"}, rows)

	if len(unpriced) > 0 {
		fmt.Fprintf(out, "\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
	return nil
}

func llmEvents(cmd *cobra.Command, opts store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	s, err := storeForCmd(cmd)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
	if err != nil {
		return nil, fmt.Errorf("query LLM calls: %w", err)
	}
	return events, nil
}

// usage sums the LLM calls sharing one key, such as a purpose or model.
type usage struct {
	Key          string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// usageBy groups events by key, sorted by key.
func usageBy(events []store.LLMRequestEventRecord, key func(store.LLMRequestEventRecord) string) []usage {
	byKey := map[string]*usage{}
	latency := map[string]int64{}
	for _, e := range events {
		k := key(e)
		u, ok := byKey[k]
		if !ok {
			u = &usage{Key: k}
			byKey[k] = u
		}
		u.Calls++
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		latency[k] += e.LatencyMs
	}

	out := make([]usage, 0, len(byKey))
	for k, u := range byKey {
		u.AvgLatencyMs = latency[k] / int64(u.Calls)
		out = append(out, *u)
	}
	slices.SortFunc(out, func(a, b usage) int { return strings.Compare(a.Key, b.Key) })
	return out
}

func storeForCmd(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStore(cmd, cfg)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}
