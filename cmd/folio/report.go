package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// ReportWordWrap is the terminal width used when rendering the report
const ReportWordWrap = 100

var reportRaw bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the intelligence report",
	Long: `Generate the template intelligence report for the seeded holdings and
news and render it for the terminal. Use --raw to print markdown.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportRaw, "raw", false, "Print markdown without terminal styling")
}

func runReport(cmd *cobra.Command, args []string) error {
	container, err := wireForCommand()
	if err != nil {
		return err
	}
	defer container.Close()

	markdown, err := container.TemplateReporter.Generate(cmd.Context(), container.ReportInputs.ReportInput())
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if reportRaw {
		fmt.Fprint(cmd.OutOrStdout(), markdown)
		return nil
	}

	rendered, err := renderTerminal(markdown)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

func renderTerminal(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(ReportWordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create renderer: %w", err)
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return out, nil
}
