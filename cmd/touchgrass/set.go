package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/events"
	"github.com/alfredjeanlab/touchgrass/internal/model"
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the blocking window or active days",
	Long: `Change the blocking window or active days.

Only the flags given are changed. Times are 24-hour HH:MM; a start later
than the end gives a window that wraps past midnight. Days are a comma
separated list such as "mon,tue,fri", or one of all, weekdays, weekend, none.`,
	Example: `  touchgrass set --start 09:00 --end 17:00 --days weekdays
  touchgrass set --start 22:00 --end 06:00`,
	GroupID: "settings",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		days, _ := cmd.Flags().GetString("days")

		p, err := buildPatch(start, end, days, cmd.Flags().Changed("days"))
		if err != nil {
			return err
		}
		if p.IsEmpty() {
			return fmt.Errorf("nothing to change: pass --start, --end or --days")
		}
		return applyPatch(cmd, p)
	},
}

// buildPatch turns the textual settings into a Patch. Empty strings leave the
// field unchanged; daysSet distinguishes an explicit empty day list.
func buildPatch(start, end, days string, daysSet bool) (model.Patch, error) {
	var p model.Patch
	if start != "" {
		m, err := model.ParseClock(start)
		if err != nil {
			return model.Patch{}, fmt.Errorf("start: %w", err)
		}
		p.BlockTimeStart = &m
	}
	if end != "" {
		m, err := model.ParseClock(end)
		if err != nil {
			return model.Patch{}, fmt.Errorf("end: %w", err)
		}
		p.BlockTimeEnd = &m
	}
	if daysSet || days != "" {
		w, err := model.ParseWeekdays(days)
		if err != nil {
			return model.Patch{}, fmt.Errorf("days: %w", err)
		}
		p.ActiveDays = &w
	}
	return p, nil
}

// applyPatch runs the read-modify-write and announces the result.
func applyPatch(cmd *cobra.Command, p model.Patch) error {
	ctx := cmd.Context()
	st, err := configStore.Update(ctx, p)
	if err != nil {
		return err
	}
	logger.Info("settings saved", "key", configStore.Key(), "source", source)
	announce(ctx, events.TopicStorageUpdated, events.StorageUpdated{
		Source:  source,
		Storage: st,
		At:      time.Now().UTC(),
	})

	if jsonOutput {
		printJSON(st)
		return nil
	}
	printStorage(os.Stdout, st)
	return nil
}

func init() {
	setCmd.Flags().String("start", "", "start of the blocking window (HH:MM)")
	setCmd.Flags().String("end", "", "end of the blocking window (HH:MM)")
	setCmd.Flags().String("days", "", "active days (e.g. mon,tue,fri or weekdays)")
}
