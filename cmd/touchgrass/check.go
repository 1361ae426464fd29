package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alfredjeanlab/touchgrass/internal/guard"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Tell whether the site is blocked right now",
	Long: `Tell whether the site is blocked right now, or at --at.

Exits 0 whether or not the site is blocked. When the record cannot be read
the site is not blocked and the storage error is reported.`,
	GroupID: "status",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		at, _ := cmd.Flags().GetString("at")
		now := time.Now()
		if at != "" {
			t, err := time.Parse(time.RFC3339, at)
			if err != nil {
				return fmt.Errorf("--at: %w", err)
			}
			now = t
		}

		d, err := guard.Check(cmd.Context(), configStore, now)
		if err != nil {
			return err
		}
		if jsonOutput {
			printJSON(struct {
				guard.Decision
				Reason string `json:"reason"`
			}{d, d.Reason()})
			return nil
		}
		printDecision(os.Stdout, d)
		return nil
	},
}

func init() {
	checkCmd.Flags().String("at", "", "evaluate at this RFC 3339 time instead of now")
}
