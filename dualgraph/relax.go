package dualgraph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ar0ne/PolyWorld/geom"
	"github.com/ar0ne/PolyWorld/tessellation"
)

// relaxSites runs passes rounds of Lloyd relaxation: each round replaces
// every site with the centroid of its current cell polygon and
// re-tessellates the moved sites within the same bounds. passes = 0 returns
// t unchanged. Cell sizes grow more uniform with each round; two or three
// rounds are usually enough for map generation.
//
// A source failure aborts the whole build; the partially relaxed site set is
// discarded with it.
func relaxSites(t tessellation.Tessellation, passes int, src tessellation.Source, log *zap.Logger) (tessellation.Tessellation, error) {
	bounds := t.Bounds()
	for pass := 1; pass <= passes; pass++ {
		sites := t.SiteCoords()
		for i, site := range sites {
			sites[i] = geom.Centroid(t.CellPolygon(site))
		}
		next, err := src(sites, bounds)
		if err != nil {
			return nil, fmt.Errorf("lloyd relaxation pass %d: %w", pass, err)
		}
		t = next
		log.Debug("lloyd relaxation pass complete",
			zap.Int("pass", pass),
			zap.Int("sites", len(sites)),
		)
	}
	return t, nil
}
