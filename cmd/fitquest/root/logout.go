package root

import (
	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/ui"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear the local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.auth.Logout(ctx); err != nil {
				return err
			}
			ui.Successf("Logged out")
			return nil
		},
	}
}
