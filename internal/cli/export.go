package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notecal/internal/ics"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export extracted events as an iCalendar feed",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the feed to this file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
	conf, v, err := loadSetup()
	if err != nil {
		return err
	}

	result := v.ScanAll()
	events := filterEvents(result.Events, buildQuery(conf))
	feed := ics.Export(events, "notecal")

	if exportOutput == "" {
		fmt.Print(feed)
	} else if err := os.WriteFile(exportOutput, []byte(feed), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}

	for _, f := range result.Failures {
		fmt.Fprintf(os.Stderr, "warning: %s\n", f.Error())
	}
	return nil
}
