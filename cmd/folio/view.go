package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aristath/folio/internal/modules/metrics"
	"github.com/spf13/cobra"
)

var (
	viewSort  string
	viewDir   string
	viewQuery string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Print the computed portfolio view as JSON",
	Long: `Compute derived metrics, allocations and totals for the seeded holdings
and print them as JSON.

Example usage:
  folio view --sort unrealized_pl_percent --dir desc
  folio view --query '$.summary.total_value'
  folio view --query '$.by_sector[*].category'`,
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVar(&viewSort, "sort", "", "Sort derived assets by field")
	viewCmd.Flags().StringVar(&viewDir, "dir", "", "Sort direction: asc or desc")
	viewCmd.Flags().StringVar(&viewQuery, "query", "", "JSONPath expression applied to the view")
}

func runView(cmd *cobra.Command, args []string) error {
	field, dir, err := metrics.ParseSort(viewSort, viewDir)
	if err != nil {
		return err
	}

	container, err := wireForCommand()
	if err != nil {
		return err
	}
	defer container.Close()

	view := container.PortfolioService.View()
	view.Derived, err = container.PortfolioService.Assets(field, dir)
	if err != nil {
		return err
	}

	var out interface{} = view
	if viewQuery != "" {
		out, err = queryJSON(view, viewQuery)
		if err != nil {
			return err
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// queryJSON evaluates a JSONPath expression against the JSON form of v
func queryJSON(v interface{}, path string) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode view: %w", err)
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode view: %w", err)
	}

	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate %q: %w", path, err)
	}
	return result, nil
}
