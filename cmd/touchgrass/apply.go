package main

import (
	"github.com/spf13/cobra"
)

var applyCmd = &cobra.Command{
	Use:   "apply <schedule.toml>",
	Short: "Apply a schedule from a TOML file",
	Example: `  cat > school.toml <<'END'
  start = "08:00"
  end   = "15:30"
  days  = ["weekdays"]
  END
  touchgrass apply school.toml`,
	GroupID: "settings",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := loadSchedule(args[0])
		if err != nil {
			return err
		}
		return applyPatch(cmd, p)
	},
}
