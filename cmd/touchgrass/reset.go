package main

import (
	"fmt"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/events"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:     "reset",
	Short:   "Delete the stored schedule and usage",
	GroupID: "settings",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if err := configStore.Remove(ctx); err != nil {
			return err
		}
		logger.Info("record removed", "key", configStore.Key(), "source", source)
		announce(ctx, events.TopicStorageRemoved, events.StorageRemoved{
			Source: source,
			At:     time.Now().UTC(),
		})
		if jsonOutput {
			printJSON(map[string]bool{"removed": true})
			return nil
		}
		fmt.Println("Removed stored settings.")
		return nil
	},
}
