package root

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/client/cli"
	"github.com/fitquest/fitquest/internal/ui"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in to FitQuest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reader := bufio.NewReader(os.Stdin)
			email, err := cli.GetSimpleText(reader, "Email", os.Stdout)
			if err != nil {
				return err
			}
			password, err := cli.GetPassword(os.Stdout)
			if err != nil {
				return err
			}

			user, err := a.auth.Login(ctx, email, password)
			if err != nil {
				return err
			}

			ui.Successf("Welcome back, %s! Level %d (%d EXP)", user.Name, user.Level, user.Exp)
			return nil
		},
	}
}
