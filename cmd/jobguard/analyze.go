package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jobguard/internal/analysis"
	"jobguard/internal/records"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a job description for authenticity",
	Long:  "Analyze reads a job description from the given file (or stdin when omitted), classifies it, scores it against the uploaded resume, and saves the result to history.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error
	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read job description: %w", err)
		}
	} else {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	in := analysis.Input{JobDescription: string(raw)}
	if resume := app.Records.GetActiveResume(sess.User.Email); resume != nil {
		in.ResumeText = &resume.ResumeText
		in.ResumeFileName = &resume.FileName
	}

	saved, err := app.Analysis.Analyze(cmd.Context(), sess, in)
	if err != nil {
		return err
	}
	printAnalysis(os.Stdout, saved)
	return nil
}

func printAnalysis(w io.Writer, a records.Analysis) {
	fmt.Fprintf(w, "#%d  %s  %s\n", a.ID, a.Confidence.Label, a.Timestamp)
	for _, score := range a.Confidence.Confidences {
		fmt.Fprintf(w, "  %-5s %.1f%%\n", score.Label, score.Confidence*100)
	}
	if a.CVMatchScore != nil {
		fmt.Fprintf(w, "  CV match: %d%%\n", *a.CVMatchScore)
	}
	if a.ResumeFileName != nil {
		fmt.Fprintf(w, "  Resume: %s\n", *a.ResumeFileName)
	}
}

func summarize(text string, max int) string {
	clean := strings.Join(strings.Fields(text), " ")
	runes := []rune(clean)
	if len(runes) <= max {
		return clean
	}
	return string(runes[:max]) + "..."
}
