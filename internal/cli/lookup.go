package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <user-id>",
		Short: "Fetch a user record from the remote service",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("user id must be an integer: %q", args[0])
			}

			var result UserRecord

			if err := client.Get(fmt.Sprintf("/api/v1/users/%d", userID), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
