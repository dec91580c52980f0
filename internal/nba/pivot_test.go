package nba

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestPivotMeans(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	p, err := d.Pivot(ColumnWeight)
	if err != nil {
		t.Fatalf("Pivot() error = %v", err)
	}
	wantCols := []Position{Center, PowerForward, PointGuard, SmallForward, ShootingGuard}
	if len(p.Columns) != len(wantCols) {
		t.Fatalf("Columns = %v, want %v", p.Columns, wantCols)
	}
	for i := range wantCols {
		if p.Columns[i] != wantCols[i] {
			t.Fatalf("Columns[%d] = %q, want %q", i, p.Columns[i], wantCols[i])
		}
	}
	if len(p.Rows) != 4 {
		t.Fatalf("len(Rows) = %d, want 4", len(p.Rows))
	}
	want := [][]float64{
		{nan, nan, 82.5, nan, nan},
		{nan, nan, nan, nan, 92.5},
		{nan, 105, nan, 100, nan},
		{112.5, nan, nan, nan, nan},
	}
	for i := range want {
		for j := range want[i] {
			got := p.Cells[i][j]
			if math.IsNaN(want[i][j]) != math.IsNaN(got) || (!math.IsNaN(got) && got != want[i][j]) {
				t.Fatalf("Cells[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

func TestPivotDropsEmptyRowsAndColumns(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	p, err := d.Pivot(ColumnPER)
	if err != nil {
		t.Fatalf("Pivot() error = %v", err)
	}
	if len(p.Columns) != 1 || p.Columns[0] != PointGuard {
		t.Fatalf("Columns = %v, want [PG]", p.Columns)
	}
	if len(p.Rows) != 1 || p.Rows[0] != "(189.999, 198.75]" {
		t.Fatalf("Rows = %v, want first bin only", p.Rows)
	}
	if got := p.Cells[0][0]; got != 16 {
		t.Fatalf("Cells[0][0] = %v, want 16", got)
	}
}

func TestPivotRejectsCategorical(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	if _, err := d.Pivot(ColumnPosition); err == nil {
		t.Fatal("Pivot(pos_simple) error = nil, want error")
	}
}

func TestPivotTable(t *testing.T) {
	t.Parallel()

	d := fixtureDataset(t)
	p, err := d.Pivot(ColumnWeight)
	if err != nil {
		t.Fatalf("Pivot() error = %v", err)
	}
	table := p.Table()
	if table.Columns[0].ID != ColumnHeightBins {
		t.Fatalf("Columns[0].ID = %q, want %q", table.Columns[0].ID, ColumnHeightBins)
	}
	if len(table.Columns) != 6 || len(table.Data) != 4 {
		t.Fatalf("table has %d columns and %d rows, want 6 and 4", len(table.Columns), len(table.Data))
	}
	for _, c := range table.Columns {
		if c.Type != "numeric" || c.Format.Specifier != ".5" {
			t.Fatalf("column %q = %+v, want numeric with .5 specifier", c.ID, c)
		}
	}
	if got := table.Data[0]["PG"]; got != 82.5 {
		t.Fatalf("Data[0][PG] = %v, want 82.5", got)
	}
	if got, ok := table.Data[0]["C"]; !ok || got != nil {
		t.Fatalf("Data[0][C] = %v (present %v), want nil", got, ok)
	}

	raw, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if !strings.Contains(string(raw), `"C":null`) {
		t.Fatalf("json = %s, want null cell", raw)
	}
	if !strings.Contains(string(raw), `"height_bins":"(189.999, 198.75]"`) {
		t.Fatalf("json = %s, want height_bins label", raw)
	}
}
