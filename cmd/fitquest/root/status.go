package root

import (
	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/ui"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the logged-in user and their progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ok, err := a.auth.IsAuthenticated(ctx)
			if err != nil {
				return err
			}
			if !ok {
				ui.Warnf("Not logged in. Run 'fitquest login' first.")
				return nil
			}

			user, err := a.auth.CurrentUser(ctx)
			if err != nil {
				return err
			}
			if user == nil {
				ui.Warnf("Not logged in. Run 'fitquest login' first.")
				return nil
			}

			ui.Title.Printf("%s <%s>\n", user.Name, user.Email)
			ui.Linef("Level %d — %d EXP", user.Level, user.Exp)
			return nil
		},
	}
}
