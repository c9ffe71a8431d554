package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"accountd/internal/dependencies/clock"
	"accountd/internal/services/account"
)

// newDemoCmd runs the account walkthrough in-process, without a server:
// create a sample account, print its snapshot, and attempt a login.
func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in account walkthrough locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			svc := account.New(clock.New(), logger)

			if _, err := svc.Create("john_doe", "secret123", "john@example.com", 25); err != nil {
				return err
			}

			info, err := svc.Info()
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			fmt.Println("User created:")
			out.Print(AccountInfo{
				Username: info.Username,
				Email:    info.Email,
				Age:      info.Age,
				Active:   info.Active,
			})

			ok, err := svc.Login("secret123")
			if err != nil {
				return err
			}
			if ok {
				out.PrintMessage("Login successful")
			} else {
				out.PrintMessage("Login failed")
			}

			return nil
		},
	}
}
