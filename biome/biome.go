// Package biome classifies finished dualgraph Regions into Whittaker-style
// biome categories.
//
// Classification is a pure function of the numeric fields an elevation /
// moisture pass has written onto a Region; the graph core allocates those
// fields but never populates them. Consumers that want a different model
// inject their own Classifier — there is no package-global registry.
package biome

import "github.com/ar0ne/PolyWorld/dualgraph"

// Biome is one terrain category.
type Biome int

const (
	Ocean Biome = iota
	Marsh
	Ice
	Lake
	Beach
	Snow
	Tundra
	Bare
	Scorched
	Taiga
	Shrubland
	TemperateDesert
	TemperateRainForest
	TemperateDeciduousForest
	Grassland
	TropicalRainForest
	TropicalSeasonalForest
	SubtropicalDesert
)

var biomeNames = map[Biome]string{
	Ocean:                    "Ocean",
	Marsh:                    "Marsh",
	Ice:                      "Ice",
	Lake:                     "Lake",
	Beach:                    "Beach",
	Snow:                     "Snow",
	Tundra:                   "Tundra",
	Bare:                     "Bare",
	Scorched:                 "Scorched",
	Taiga:                    "Taiga",
	Shrubland:                "Shrubland",
	TemperateDesert:          "TemperateDesert",
	TemperateRainForest:      "TemperateRainForest",
	TemperateDeciduousForest: "TemperateDeciduousForest",
	Grassland:                "Grassland",
	TropicalRainForest:       "TropicalRainForest",
	TropicalSeasonalForest:   "TropicalSeasonalForest",
	SubtropicalDesert:        "SubtropicalDesert",
}

// String returns the biome's name, or "Unknown" for an out-of-range value.
func (b Biome) String() string {
	if name, ok := biomeNames[b]; ok {
		return name
	}
	return "Unknown"
}

// Classifier maps one Region to a Biome. Pass your own in place of Classify
// to swap the model.
type Classifier func(*dualgraph.Region) Biome

// Classify is the default model: a fixed elevation/moisture decision table
// over the Region's water flags and numeric fields.
func Classify(r *dualgraph.Region) Biome {
	switch {
	case r.Ocean:
		return Ocean
	case r.Water:
		if r.Elevation < 0.1 {
			return Marsh
		}
		if r.Elevation > 0.8 {
			return Ice
		}
		return Lake
	case r.Coast:
		return Beach
	case r.Elevation > 0.8:
		switch {
		case r.Moisture > 0.50:
			return Snow
		case r.Moisture > 0.33:
			return Tundra
		case r.Moisture > 0.16:
			return Bare
		default:
			return Scorched
		}
	case r.Elevation > 0.6:
		switch {
		case r.Moisture > 0.66:
			return Taiga
		case r.Moisture > 0.33:
			return Shrubland
		default:
			return TemperateDesert
		}
	case r.Elevation > 0.3:
		switch {
		case r.Moisture > 0.83:
			return TemperateRainForest
		case r.Moisture > 0.50:
			return TemperateDeciduousForest
		case r.Moisture > 0.16:
			return Grassland
		default:
			return TemperateDesert
		}
	default:
		switch {
		case r.Moisture > 0.66:
			return TropicalRainForest
		case r.Moisture > 0.33:
			return TropicalSeasonalForest
		case r.Moisture > 0.16:
			return Grassland
		default:
			return SubtropicalDesert
		}
	}
}
