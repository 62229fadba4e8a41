package root

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/client/cli"
	"github.com/fitquest/fitquest/internal/ui"
)

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Create a FitQuest account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reader := bufio.NewReader(os.Stdin)
			name, err := cli.GetSimpleText(reader, "Name", os.Stdout)
			if err != nil {
				return err
			}
			email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
			if err != nil {
				return err
			}
			password, err := cli.GetPassword(os.Stdout)
			if err != nil {
				return err
			}

			user, err := a.auth.Register(ctx, email, password, name)
			if err != nil {
				return err
			}

			ui.Successf("Account created. Welcome, %s!", user.Name)
			return nil
		},
	}
}
