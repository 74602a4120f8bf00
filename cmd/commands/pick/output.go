package pick

import (
	"encoding/json"
	"fmt"

	"chronopick/internal/calendar"
	"chronopick/internal/picker"

	"github.com/spf13/cobra"
)

// pickResult is the JSON shape printed with -o json. Only the fields
// relevant to the mode are populated.
type pickResult struct {
	Date  string `json:"date,omitempty"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Time  string `json:"time,omitempty"`
}

func printResult(cmd *cobra.Command, sel picker.Selection, mode picker.Mode) error {
	format, _ := cmd.Flags().GetString("output")

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(buildResult(sel, mode))
	case "", "text":
		fmt.Fprintln(cmd.OutOrStdout(), textResult(sel, mode))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (valid: text, json)", format)
	}
}

func buildResult(sel picker.Selection, mode picker.Mode) pickResult {
	var r pickResult
	switch mode {
	case picker.ModeSingle:
		r.Date = calendar.FormatDate(sel.Date)
	case picker.ModeRange:
		r.Start = calendar.FormatDate(sel.Range.Start)
		r.End = calendar.FormatDate(sel.Range.End)
	case picker.ModeTime:
		r.Time = calendar.FormatTimeOfDay(sel.Time)
	case picker.ModeDateTime:
		r.Date = calendar.FormatDate(sel.Date)
		r.Time = calendar.FormatTimeOfDay(sel.Time)
	}
	return r
}

func textResult(sel picker.Selection, mode picker.Mode) string {
	switch mode {
	case picker.ModeRange:
		return calendar.FormatDate(sel.Range.Start) + " to " + calendar.FormatDate(sel.Range.End)
	case picker.ModeTime:
		return calendar.FormatTimeOfDay(sel.Time)
	case picker.ModeDateTime:
		return calendar.FormatDate(sel.Date) + " " + calendar.FormatTimeOfDay(sel.Time)
	default:
		return calendar.FormatDate(sel.Date)
	}
}
