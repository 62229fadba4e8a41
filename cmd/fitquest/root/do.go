package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/ui"
)

func newDoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "do <quest-id> <workout-id>",
		Short: "Mark one workout of a quest complete",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			questID, err := questIDArg(args)
			if err != nil {
				return err
			}
			workoutID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return errors.New("workout id must be an integer")
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.workouts.MarkComplete(ctx, questID, workoutID); err != nil {
				return err
			}
			ui.Successf("Workout %d done", workoutID)

			done, err := a.workouts.AllCompleted(ctx, questID)
			if err != nil {
				return err
			}
			if !done {
				return nil
			}

			ui.Successf("All workouts of quest %d finished!", questID)
			return settleQuest(ctx, a, questID)
		},
	}
}

// settleQuest re-fetches the quest list (completion is server-computed and
// only visible on a fresh fetch) and runs the EXP award reconciler for the
// given quest.
func settleQuest(ctx context.Context, a *app, questID int64) error {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	quests, err := a.quests.ActiveQuests(ctx)
	if err != nil {
		return err
	}

	for _, q := range quests {
		if q.ID != questID {
			continue
		}
		levelUp, err := a.awards.AwardQuestExp(ctx, q, user.ID)
		if err != nil {
			return err
		}
		if levelUp {
			updated, err := a.auth.CurrentUser(ctx)
			if err == nil && updated != nil {
				ui.Successf("LEVEL UP! You are now level %d", updated.Level)
			} else {
				ui.Successf("LEVEL UP!")
			}
		}
		return nil
	}
	return nil
}
