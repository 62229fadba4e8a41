package root

import (
	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/ui"
)

func newCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <quest-id>",
		Short: "Mark every remaining workout of a quest complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			questID, err := questIDArg(args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.workouts.CompleteQuest(ctx, questID); err != nil {
				return err
			}

			ui.Successf("Quest %d workouts completed", questID)
			return settleQuest(ctx, a, questID)
		},
	}
}
