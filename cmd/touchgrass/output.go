package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alfredjeanlab/touchgrass/internal/guard"
	"github.com/alfredjeanlab/touchgrass/internal/model"
	"github.com/alfredjeanlab/touchgrass/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printStorage(w io.Writer, st model.Storage) {
	cfg := st.UserConfig
	fmt.Fprintf(w, "Block from:  %s\n", cfg.BlockTimeStart.Clock())
	fmt.Fprintf(w, "Block until: %s\n", cfg.BlockTimeEnd.Clock())
	if cfg.BlockTimeStart == cfg.BlockTimeEnd {
		fmt.Fprintf(w, "             %s\n", ui.RenderMuted("(empty window, never blocks)"))
	} else if cfg.BlockTimeStart > cfg.BlockTimeEnd {
		fmt.Fprintf(w, "             %s\n", ui.RenderMuted("(wraps past midnight)"))
	}
	fmt.Fprintf(w, "Active days: %s\n", cfg.ActiveDays)
	fmt.Fprintf(w, "Usage:       %s\n", formatUsage(st.TotalUsage))
}

func printDecision(w io.Writer, d guard.Decision) {
	verdict := ui.RenderAllowed("ALLOW")
	if d.Blocked {
		verdict = ui.RenderBlocked("BLOCK")
	}
	fmt.Fprintf(w, "%s  %s\n", verdict, ui.RenderMuted(d.At.Format("Mon 2006-01-02 15:04")))
	fmt.Fprintf(w, "  %s\n", d.Reason())
	fmt.Fprintf(w, "  window %s-%s on %s\n",
		d.Config.BlockTimeStart.Clock(), d.Config.BlockTimeEnd.Clock(), d.Config.ActiveDays)
}

// formatUsage renders minutes as "3h 07m".
func formatUsage(minutes uint64) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
