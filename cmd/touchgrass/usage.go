package main

import (
	"errors"
	"fmt"

	"github.com/alfredjeanlab/touchgrass/internal/store"
	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:     "usage",
	Short:   "Show the total recorded usage",
	GroupID: "status",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := configStore.Get(cmd.Context())
		if errors.Is(err, store.ErrEmptyStorage) {
			err = nil
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(map[string]uint64{"total_usage": st.TotalUsage})
			return nil
		}
		fmt.Println(formatUsage(st.TotalUsage))
		return nil
	},
}
