package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/events"
	"github.com/alfredjeanlab/touchgrass/internal/guard"
	"github.com/alfredjeanlab/touchgrass/internal/model"
	"github.com/alfredjeanlab/touchgrass/internal/store"
	"github.com/alfredjeanlab/touchgrass/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show",
	Short:   "Show the stored schedule and usage",
	GroupID: "settings",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rec, err := guard.Recover(ctx, configStore)
		if err != nil {
			return err
		}
		switch {
		case rec.Reset:
			logger.Warn("discarded corrupted record", "key", configStore.Key())
			announce(ctx, events.TopicStorageReset, events.StorageReset{
				Source: source,
				Reason: "corrupted",
				At:     time.Now().UTC(),
			})
			fmt.Fprintln(os.Stderr, ui.RenderWarn(guard.ResetMessage))
		case !rec.Configured && !jsonOutput:
			fmt.Println(ui.RenderMuted(store.UserMessage(store.ErrEmptyStorage)))
		}

		if jsonOutput {
			printJSON(struct {
				Configured bool          `json:"configured"`
				Storage    model.Storage `json:"storage"`
			}{rec.Configured, rec.Storage})
			return nil
		}
		printStorage(os.Stdout, rec.Storage)
		return nil
	},
}
