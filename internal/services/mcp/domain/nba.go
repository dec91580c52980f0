package domain

import (
	"context"
	"strings"

	"github.com/louisbranch/chartlab/internal/nba"
	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NBAColumnsInput takes no arguments.
type NBAColumnsInput struct{}

// NBAColumn describes one dataset column.
type NBAColumn struct {
	Name    string `json:"name" jsonschema:"column name"`
	Numeric bool   `json:"numeric" jsonschema:"whether the column can be plotted or aggregated"`
}

// NBAColumnsResult describes the loaded dataset.
type NBAColumnsResult struct {
	Source  string      `json:"source" jsonschema:"where the dataset was loaded from"`
	Players int         `json:"players" jsonschema:"number of player seasons"`
	Columns []NBAColumn `json:"columns" jsonschema:"columns in dataset order"`
}

// NBAPivotInput selects the aggregated column.
type NBAPivotInput struct {
	Value string `json:"value,omitempty" jsonschema:"numeric column to average, defaults to height"`
}

// NBAPivotResult is the mean of Value by height bin and position, in the
// records form served by the web table download.
type NBAPivotResult struct {
	Value string    `json:"value" jsonschema:"aggregated column"`
	Table nba.Table `json:"table" jsonschema:"one record per height bin keyed by position"`
}

// NBAColumnsTool defines the MCP tool schema for dataset columns.
func NBAColumnsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "nba_columns",
		Description: "Lists the columns of the NBA player dataset and where it was loaded from",
	}
}

// NBAPivotTool defines the MCP tool schema for the pivot table.
func NBAPivotTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "nba_pivot",
		Description: "Averages a numeric NBA column by height bin and position",
	}
}

// NBAColumnsHandler describes dataset.
func NBAColumnsHandler(dataset *nba.Dataset) mcp.ToolHandlerFor[NBAColumnsInput, NBAColumnsResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ NBAColumnsInput) (*mcp.CallToolResult, NBAColumnsResult, error) {
		if dataset == nil {
			return nil, NBAColumnsResult{}, datasetUnavailable()
		}
		columns := nba.Columns()
		out := NBAColumnsResult{
			Source:  dataset.Source(),
			Players: dataset.Len(),
			Columns: make([]NBAColumn, 0, len(columns)),
		}
		for _, c := range columns {
			out.Columns = append(out.Columns, NBAColumn{Name: c.Name, Numeric: c.Numeric})
		}
		return nil, out, nil
	}
}

// NBAPivotHandler computes the pivot table over dataset.
func NBAPivotHandler(dataset *nba.Dataset) mcp.ToolHandlerFor[NBAPivotInput, NBAPivotResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input NBAPivotInput) (*mcp.CallToolResult, NBAPivotResult, error) {
		if dataset == nil {
			return nil, NBAPivotResult{}, datasetUnavailable()
		}
		value := strings.TrimSpace(input.Value)
		if value == "" {
			value = nba.DefaultPivotValue
		}
		pivot, err := dataset.Pivot(value)
		if err != nil {
			return nil, NBAPivotResult{}, err
		}
		return nil, NBAPivotResult{Value: value, Table: pivot.Table()}, nil
	}
}

func datasetUnavailable() error {
	return apperrors.New(apperrors.CodeDatasetUnavailable, "dataset is not loaded")
}
