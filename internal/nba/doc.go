// Package nba holds the NBA player physiques dataset and the aggregations the
// explorer renders: x/y scatter with marginal histograms, scatter matrix and
// the height-bin by position pivot table.
//
// A Dataset is immutable once built and is shared across requests without
// locking.
package nba
