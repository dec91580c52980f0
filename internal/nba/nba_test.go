package nba

import (
	"math"
	"testing"
)

var nan = math.NaN()

// fixturePlayers has heights 190..225 step 5 so the height quartile edges are
// 190, 198.75, 207.5, 216.25 and 225.
func fixturePlayers() []Player {
	return []Player{
		{Index: 0, Year: 1990, Height: 190, Weight: 80, PER: 15, PTS: 10, Position: PointGuard},
		{Index: 1, Year: 1991, Height: 195, Weight: 85, PER: 17, PTS: nan, Position: PointGuard},
		{Index: 2, Year: 1992, Height: 200, Weight: 90, PER: nan, PTS: 12, Position: ShootingGuard},
		{Index: 3, Year: 1993, Height: 205, Weight: 95, PER: nan, PTS: 20, Position: ShootingGuard},
		{Index: 4, Year: 1994, Height: 210, Weight: 100, PER: nan, PTS: 22, Position: SmallForward},
		{Index: 5, Year: 1995, Height: 215, Weight: 105, PER: nan, PTS: 24, Position: PowerForward},
		{Index: 6, Year: 1996, Height: 220, Weight: 110, PER: nan, PTS: 26, Position: Center},
		{Index: 7, Year: 1997, Height: 225, Weight: 115, PER: nan, PTS: 28, Position: Center},
	}
}

func fixtureDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := NewDataset(fixturePlayers(), "fixture")
	if err != nil {
		t.Fatalf("NewDataset() error = %v", err)
	}
	return d
}
