package root

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/client/services"
	"github.com/fitquest/fitquest/internal/ui"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			quests, err := a.quests.ActiveQuests(ctx)
			if err != nil {
				return err
			}

			quest := services.TodayQuest(quests, time.Now())
			if quest == nil {
				ui.Linef("No active quest today.")
				return nil
			}

			ui.Title.Printf("[%d] %s\n", quest.ID, quest.Name)
			ui.Linef("%s", quest.Description)
			ui.Muted.Printf("%d EXP — runs until %s\n", quest.Exp, quest.EndDate.Format("2006-01-02"))
			return nil
		},
	}
}
