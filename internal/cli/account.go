package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAccountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account management commands",
	}

	cmd.AddCommand(newAccountCreateCmd())
	cmd.AddCommand(newAccountLoginCmd())
	cmd.AddCommand(newAccountPasswdCmd())
	cmd.AddCommand(newAccountInfoCmd())
	cmd.AddCommand(newAccountAgeCmd())

	return cmd
}

func newAccountCreateCmd() *cobra.Command {
	var user, pass, email string
	var age int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"username": user,
				"password": pass,
				"email":    email,
				"age":      age,
			}
			var result AccountInfo

			if err := client.Post("/api/v1/account", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address (required)")
	cmd.Flags().IntVar(&age, "age", 0, "Age in years")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newAccountLoginCmd() *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if pass == "" {
				return fmt.Errorf("--pass is required")
			}

			req := map[string]string{"password": pass}
			var result LoginResult

			if err := client.Post("/api/v1/account/login", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newAccountPasswdCmd() *cobra.Command {
	var oldPass, newPass string

	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if oldPass == "" || newPass == "" {
				return fmt.Errorf("--old and --new are required")
			}

			req := map[string]string{
				"old_password": oldPass,
				"new_password": newPass,
			}

			if err := client.Patch("/api/v1/account/password", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Password updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&oldPass, "old", "", "Current password (required)")
	cmd.Flags().StringVar(&newPass, "new", "", "New password (required)")
	_ = cmd.MarkFlagRequired("old")
	_ = cmd.MarkFlagRequired("new")

	return cmd
}

func newAccountInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the public account snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AccountInfo

			if err := client.Get("/api/v1/account", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newAccountAgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "age",
		Short: "Show the account age in days",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result AccountAge

			if err := client.Get("/api/v1/account/age", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
