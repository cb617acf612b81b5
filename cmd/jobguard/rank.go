package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score your full history against your resume and profession",
	RunE:  runRank,
}

func init() {
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	ranked, err := app.Analysis.Rankings(cmd.Context(), sess)
	if err != nil {
		return err
	}
	if len(ranked) == 0 {
		fmt.Fprintln(os.Stdout, "No analyses to rank")
		return nil
	}

	for _, entry := range ranked {
		line := fmt.Sprintf("#%d  %-4s  risk=%-6s  composite=%.1f  real=%.1f", entry.ID, entry.Confidence.Label, entry.RiskLevel, entry.CompositeScore, entry.BaseRealScore)
		if entry.CVMatchScore != nil {
			line += fmt.Sprintf("  cv=%.1f", *entry.CVMatchScore)
		}
		if !entry.IsRelevant && entry.RelevanceAlert != nil {
			line += "  !" + *entry.RelevanceAlert
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}
