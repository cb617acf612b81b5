package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the ranking backend and store the session",
	RunE:  runLogin,
}

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and store the session",
	RunE:  runSignup,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE:  runWhoami,
}

var (
	authEmail      string
	authPassword   string
	authName       string
	authProfession string
)

func init() {
	loginCmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email")
	loginCmd.Flags().StringVarP(&authPassword, "password", "p", "", "Account password (prompted when omitted)")

	signupCmd.Flags().StringVarP(&authEmail, "email", "e", "", "Account email")
	signupCmd.Flags().StringVarP(&authPassword, "password", "p", "", "Account password (prompted when omitted)")
	signupCmd.Flags().StringVarP(&authName, "name", "n", "", "Display name")
	signupCmd.Flags().StringVar(&authProfession, "profession", "", "Profession used for relevance scoring")

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	email, password, err := credentials()
	if err != nil {
		return err
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	token, user, err := app.Backend.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}
	if err := app.Session.Save(token, user); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", user.Name, user.Email)
	return nil
}

func runSignup(cmd *cobra.Command, args []string) error {
	if strings.TrimSpace(authName) == "" {
		return fmt.Errorf("--name is required")
	}
	email, password, err := credentials()
	if err != nil {
		return err
	}

	app, err := buildApp()
	if err != nil {
		return err
	}
	token, user, err := app.Backend.Signup(cmd.Context(), authName, email, password, authProfession)
	if err != nil {
		return err
	}
	if err := app.Session.Save(token, user); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Account created for %s (%s)\n", user.Name, user.Email)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	if sess := app.Session.Load(); sess.LoggedIn() {
		app.Records.ClearActiveResume(sess.User.Email)
	}
	app.Session.Clear()
	fmt.Fprintln(os.Stdout, "Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	app, err := buildApp()
	if err != nil {
		return err
	}
	sess, err := requireSession(app)
	if err != nil {
		return err
	}

	// Refresh the user object against the backend when reachable; the stored
	// copy may predate a profile change.
	user := sess.User
	if verified, err := app.Backend.Verify(cmd.Context(), sess.Token); err == nil {
		user = verified
		_ = app.Session.Save(sess.Token, verified)
	} else {
		fmt.Fprintf(os.Stderr, "warning: could not verify session: %v\n", err)
	}

	fmt.Fprintf(os.Stdout, "%s <%s>\n", user.Name, user.Email)
	if user.Profession != "" {
		fmt.Fprintf(os.Stdout, "Profession: %s\n", user.Profession)
	}
	return nil
}

func credentials() (string, string, error) {
	email := strings.TrimSpace(authEmail)
	if email == "" {
		return "", "", fmt.Errorf("--email is required")
	}
	password := authPassword
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return "", "", fmt.Errorf("password is required")
	}
	return email, password, nil
}
