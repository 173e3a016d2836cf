// Package mapview derives map view state from the stored pins. It owns no
// state of its own: the same pin list always renders to the same view.
package mapview

import (
	"strconv"

	"geopindrop/internal/models"
)

// Default view shown when there is nothing to render.
const (
	DefaultCenterLat = 50.0
	DefaultCenterLon = 10.0
	DefaultZoom      = 4

	// singleZoom is used when exactly one marker is on the map.
	singleZoom = 10
	// boundsPadding is the fixed pixel padding around a fitted bounding box.
	boundsPadding = 20
)

// Marker is one renderable pin with its popup content.
type Marker struct {
	ID      int64   `json:"id"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Title   string  `json:"title"`
	Address string  `json:"address"`
	Info    string  `json:"info,omitempty"`
}

// Bounds is the minimal rectangle covering a set of markers.
type Bounds struct {
	SouthLat float64 `json:"south_lat"`
	WestLon  float64 `json:"west_lon"`
	NorthLat float64 `json:"north_lat"`
	EastLon  float64 `json:"east_lon"`
}

// View is everything a map renderer needs: either a fixed center and zoom,
// or a bounding box to fit with padding.
type View struct {
	CenterLat float64  `json:"center_lat"`
	CenterLon float64  `json:"center_lon"`
	Zoom      int      `json:"zoom"`
	FitBounds bool     `json:"fit_bounds"`
	Bounds    *Bounds  `json:"bounds,omitempty"`
	Padding   int      `json:"padding,omitempty"`
	Markers   []Marker `json:"markers"`
}

// Render computes the view for the given pins. Pins whose coordinates do not
// parse are excluded from both markers and bounds; one bad record must not
// take down the whole map. With no usable markers the fixed default view is
// returned, with one the view centers on it, with several it fits a padded
// bounding box around all of them.
func Render(pins []models.Pin) View {
	markers := make([]Marker, 0, len(pins))
	for _, pin := range pins {
		lat, errLat := strconv.ParseFloat(pin.Latitude, 64)
		lon, errLon := strconv.ParseFloat(pin.Longitude, 64)
		if errLat != nil || errLon != nil {
			continue
		}

		markers = append(markers, Marker{
			ID:      pin.ID,
			Lat:     lat,
			Lon:     lon,
			Title:   pin.Name + " " + pin.Surname,
			Address: pin.Address + ", " + pin.City,
			Info:    pin.Info,
		})
	}

	switch len(markers) {
	case 0:
		return View{
			CenterLat: DefaultCenterLat,
			CenterLon: DefaultCenterLon,
			Zoom:      DefaultZoom,
			Markers:   markers,
		}
	case 1:
		return View{
			CenterLat: markers[0].Lat,
			CenterLon: markers[0].Lon,
			Zoom:      singleZoom,
			Markers:   markers,
		}
	default:
		bounds := Bounds{
			SouthLat: markers[0].Lat,
			WestLon:  markers[0].Lon,
			NorthLat: markers[0].Lat,
			EastLon:  markers[0].Lon,
		}
		for _, m := range markers[1:] {
			if m.Lat < bounds.SouthLat {
				bounds.SouthLat = m.Lat
			}
			if m.Lat > bounds.NorthLat {
				bounds.NorthLat = m.Lat
			}
			if m.Lon < bounds.WestLon {
				bounds.WestLon = m.Lon
			}
			if m.Lon > bounds.EastLon {
				bounds.EastLon = m.Lon
			}
		}

		return View{
			FitBounds: true,
			Bounds:    &bounds,
			Padding:   boundsPadding,
			Markers:   markers,
		}
	}
}
