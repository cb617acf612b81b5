package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List your analyses, newest first",
	RunE:  runHistory,
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one analysis in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one analysis from history",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all of your analyses",
	RunE:  runClear,
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize your fake/real verdict counts",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(historyCmd, showCmd, deleteCmd, clearCmd, statsCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	history := app.Records.GetAll(sess.User.Email)
	if len(history) == 0 {
		fmt.Fprintln(os.Stdout, "No analyses yet")
		return nil
	}
	for _, a := range history {
		line := fmt.Sprintf("#%d  %-4s  %s  %s", a.ID, a.Confidence.Label, a.Timestamp, summarize(a.JobDescription, 60))
		if a.CVMatchScore != nil {
			line += fmt.Sprintf("  [cv %d%%]", *a.CVMatchScore)
		}
		fmt.Fprintln(os.Stdout, line)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("analysis id must be numeric")
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	record := app.Records.GetByID(id, sess.User.Email)
	if record == nil {
		return fmt.Errorf("analysis %d not found", id)
	}
	printAnalysis(os.Stdout, *record)
	fmt.Fprintf(os.Stdout, "\n%s\n", record.JobDescription)
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("analysis id must be numeric")
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	if _, err := requireSession(app); err != nil {
		return err
	}

	if !app.Records.Delete(id) {
		return fmt.Errorf("failed to delete analysis %d", id)
	}
	fmt.Fprintf(os.Stdout, "Deleted analysis %d\n", id)
	return nil
}

func runClear(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	if !app.Records.ClearAll(sess.User.Email) {
		return fmt.Errorf("failed to clear history")
	}
	fmt.Fprintln(os.Stdout, "History cleared")
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	stats := app.Records.GetStats(sess.User.Email)
	fmt.Fprintf(os.Stdout, "Total: %d\n", stats.Total)
	fmt.Fprintf(os.Stdout, "Fake:  %d (%.1f%%)\n", stats.Fake, stats.FakePercentage)
	fmt.Fprintf(os.Stdout, "Real:  %d (%.1f%%)\n", stats.Real, stats.RealPercentage)
	return nil
}
