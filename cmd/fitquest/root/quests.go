package root

import (
	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/client/services"
	"github.com/fitquest/fitquest/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quests",
		Short: "List your quests",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := a.auth.CurrentUser(ctx)
			if err != nil {
				return err
			}

			quests, err := a.quests.ActiveQuests(ctx)
			if err != nil {
				return err
			}
			if len(quests) == 0 {
				ui.Linef("No quests yet.")
				return nil
			}

			for _, q := range quests {
				progress := services.QuestProgress(q, user.ID)
				if services.HasCompletedQuest(q, user.ID) {
					ui.Success.Printf("✓ [%d] %s", q.ID, q.Name)
				} else {
					ui.Title.Printf("  [%d] %s", q.ID, q.Name)
				}
				ui.Muted.Printf("  %d EXP, %d%%, ends %s\n", q.Exp, progress, q.EndDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}
