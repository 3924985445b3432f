package stations

import (
	"context"
	"math"
	"sort"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"voltswap_client/internal/models"
)

// Source is the slice of the API the finder reads.
type Source interface {
	Stations(ctx context.Context) ([]models.Station, error)
}

const earthRadiusKm = 6371.0

// WithDistance pairs a station with its distance from the search point.
type WithDistance struct {
	models.Station
	DistanceKm float64 `json:"distance_km"`
}

// Finder backs the station-finder screen: fetch once, sort by distance,
// hand the map layer GeoJSON.
type Finder struct {
	backend Source
}

func NewFinder(backend Source) *Finder {
	return &Finder{backend: backend}
}

// Nearest returns up to n stations ordered by distance from (lat, lng).
// n <= 0 returns all of them.
func (f *Finder) Nearest(ctx context.Context, lat, lng float64, n int) ([]WithDistance, error) {
	list, err := f.backend.Stations(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]WithDistance, 0, len(list))
	for _, st := range list {
		out = append(out, WithDistance{
			Station:    st,
			DistanceKm: HaversineKm(lat, lng, st.Latitude, st.Longitude),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}

// FeatureCollection renders stations as GeoJSON point features for the map
// provider's marker layer.
func FeatureCollection(list []models.Station) ([]byte, error) {
	fc := &geojson.FeatureCollection{}
	for _, st := range list {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       st.ID,
			Geometry: geom.NewPointFlat(geom.XY, []float64{st.Longitude, st.Latitude}),
			Properties: map[string]interface{}{
				"name":    st.Name,
				"address": st.Address,
				"status":  st.Status,
			},
		})
	}
	return fc.MarshalJSON()
}

// HaversineKm is the great-circle distance between two WGS84 points.
// go-geom's planar distance is wrong at city scale, so this stays manual.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
