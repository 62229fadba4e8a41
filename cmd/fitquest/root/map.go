package root

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/ui"
)

func newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map <latitude> <longitude>",
		Short: "Check which quest zones contain a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.New("latitude must be a number")
			}
			lon, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.New("longitude must be a number")
			}

			ctx := cmd.Context()
			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			inside, err := a.geo.Nearby(ctx, lat, lon)
			if err != nil {
				return err
			}
			if len(inside) == 0 {
				ui.Linef("You are not inside any quest zone.")
				return nil
			}

			for _, f := range inside {
				d := models.DistanceMeters(lat, lon, f.Latitude, f.Longitude)
				ui.Successf("Inside %s — %.0f m from the center (radius %.0f m)", f.Name, d, f.Radius)
			}
			return nil
		},
	}
}
