package routepath

import (
	"strings"
	"testing"
)

func TestFragmentPathsLiveUnderTheirPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		paths  []string
	}{
		{prefix: ParticleBoxPrefix, paths: []string{ParticleBoxFigure, ParticleBoxStream}},
		{prefix: RadialPrefix, paths: []string{RadialFigure}},
		{prefix: AngularPrefix, paths: []string{AngularFigure}},
		{prefix: OrbitalsPrefix, paths: []string{OrbitalsFigure}},
		{prefix: NBAScatterPrefix, paths: []string{NBAScatterFigure}},
		{prefix: NBAMatrixPrefix, paths: []string{NBAMatrixFigure}},
		{prefix: NBAPivotPrefix, paths: []string{NBAPivotTable, NBAPivotTableJSON}},
	}
	for _, tc := range tests {
		if !strings.HasSuffix(tc.prefix, "/") {
			t.Fatalf("prefix %q must end with /", tc.prefix)
		}
		for _, path := range tc.paths {
			if !strings.HasPrefix(path, tc.prefix) {
				t.Fatalf("path %q is outside prefix %q", path, tc.prefix)
			}
		}
	}
}
