package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jobguard/internal/extract"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Manage the uploaded resume used for CV match scoring",
}

var resumeUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Extract text from a resume file and cache it",
	Args:  cobra.ExactArgs(1),
	RunE:  runResumeUpload,
}

var resumeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cached resume",
	RunE:  runResumeShow,
}

var resumeRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the cached resume",
	RunE:  runResumeRemove,
}

func init() {
	resumeCmd.AddCommand(resumeUploadCmd, resumeShowCmd, resumeRemoveCmd)
	rootCmd.AddCommand(resumeCmd)
}

func runResumeUpload(cmd *cobra.Command, args []string) error {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	fileName := filepath.Base(path)
	if err := extract.ValidateUpload(fileName, "", info.Size()); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read resume: %w", err)
	}
	text, err := extract.ExtractTextFromFile(fileName, "", data)
	if err != nil {
		return err
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	app.Records.SaveActiveResume(sess.User.Email, text, fileName)
	fmt.Fprintf(os.Stdout, "Saved %s (%d characters)\n", fileName, len(text))
	return nil
}

func runResumeShow(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	resume := app.Records.GetActiveResume(sess.User.Email)
	if resume == nil {
		fmt.Fprintln(os.Stdout, "No resume uploaded")
		return nil
	}
	fmt.Fprintf(os.Stdout, "%s (saved %s)\n\n%s\n", resume.FileName, resume.SavedAt, resume.ResumeText)
	return nil
}

func runResumeRemove(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	app.Records.ClearActiveResume(sess.User.Email)
	fmt.Fprintln(os.Stdout, "Resume removed")
	return nil
}
