package root

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/ui"
)

func questIDArg(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.New("quest id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, errors.New("quest id must be an integer")
	}
	return id, nil
}

func newWorkoutsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "workouts <quest-id>",
		Short: "List the workouts of a quest",
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

			workouts, err := a.quests.Workouts(ctx, questID)
			if err != nil {
				return err
			}
			if len(workouts) == 0 {
				ui.Linef("No workouts in quest %d.", questID)
				return nil
			}

			for _, w := range workouts {
				if w.IsFinished {
					ui.Success.Printf("✓ [%d] %s ×%d\n", w.ID, w.Name, w.Repetition)
				} else {
					ui.Linef("  [%d] %s ×%d", w.ID, w.Name, w.Repetition)
				}
			}
			return nil
		},
	}
}
