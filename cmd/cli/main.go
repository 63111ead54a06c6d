package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"selfchart/adapters/report"
	"selfchart/domain/chart"
	"selfchart/domain/core"
	"selfchart/domain/insight"
	"selfchart/domain/scoring"
	"selfchart/domain/survey"
	"selfchart/models"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "selfchart-cli",
		Short: "selfchart CLI for offline scoring and chart derivation",
	}

	rootCmd.AddCommand(
		newDeriveCmd(),
		newScoreCmd(),
		newReportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newDeriveCmd() *cobra.Command {
	var birthTime string
	var place string

	cmd := &cobra.Command{
		Use:   "derive [date]",
		Short: "Derive a chart from birth data",
		Long: `Derive an energetic chart from a birth date and time.

Example: selfchart-cli derive 1990-06-15 --time 08:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := chart.NewDeriver().Derive(chart.BirthRecord{
				Date:  args[0],
				Time:  birthTime,
				Place: place,
			})
			if err != nil {
				return err
			}
			return printJSON(profile)
		},
	}

	cmd.Flags().StringVar(&birthTime, "time", "12:00", "Birth time (HH:MM)")
	cmd.Flags().StringVar(&place, "place", "", "Birth place")

	return cmd
}

func newScoreCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "score [answers]",
		Short: "Score a comma-separated 100-answer vector",
		Long: `Score a response vector under the five-factor or energy taxonomy.

Pass "all:N" to score a uniform vector, or 100 comma-separated values.

Example: selfchart-cli score all:3 --strategy energy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vec, err := parseAnswers(args[0])
			if err != nil {
				return err
			}
			profile := scoring.ForName(scoring.StrategyName(strategy)).Score(vec)
			return printJSON(profile)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", string(scoring.StrategyBigFive), "Scoring strategy: bigfive or energy")

	return cmd
}

func newReportCmd() *cobra.Command {
	var birthTime string
	var answers string

	cmd := &cobra.Command{
		Use:   "report [date]",
		Short: "Run the full pipeline offline and print the markdown report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vec, err := parseAnswers(answers)
			if err != nil {
				return err
			}
			ch, err := chart.NewDeriver().Derive(chart.BirthRecord{Date: args[0], Time: birthTime})
			if err != nil {
				return err
			}

			trait := scoring.NewBigFiveScorer().Score(vec)
			energy := scoring.NewEnergyScorer().Score(vec)
			insights := insight.NewSynthesizer().Synthesize(energy, ch)

			fingerprint, err := core.Fingerprint(struct {
				Trait    scoring.TraitProfile `json:"trait"`
				Chart    chart.ChartProfile   `json:"chart"`
				Insights insight.Report       `json:"insights"`
			}{trait, ch, insights})
			if err != nil {
				return err
			}

			reading, err := models.NewReading("", "", trait, ch, insights, fingerprint)
			if err != nil {
				return err
			}
			fmt.Print(report.NewRenderer().Markdown(reading))
			return nil
		},
	}

	cmd.Flags().StringVar(&birthTime, "time", "12:00", "Birth time (HH:MM)")
	cmd.Flags().StringVar(&answers, "answers", "all:3", "Answers: all:N or 100 comma-separated values")

	return cmd
}

func parseAnswers(spec string) (survey.ResponseVector, error) {
	if rest, ok := strings.CutPrefix(spec, "all:"); ok {
		v, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid uniform answer %q: %w", rest, err)
		}
		raw := make([]int, survey.QuestionCount)
		for i := range raw {
			raw[i] = v
		}
		return survey.Validate(raw)
	}

	parts := strings.Split(spec, ",")
	raw := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		raw = append(raw, v)
	}
	return survey.Validate(raw)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
