package domain

// Bounds is a south-west / north-east bounding box.
type Bounds struct {
	SouthWest Coords `json:"south_west"`
	NorthEast Coords `json:"north_east"`
}

// Contains reports whether c lies inside b (edges included).
func (b Bounds) Contains(c Coords) bool {
	return c.Lat >= b.SouthWest.Lat && c.Lat <= b.NorthEast.Lat &&
		c.Lng >= b.SouthWest.Lng && c.Lng <= b.NorthEast.Lng
}

// Clamp returns the point inside b closest to c.
func (b Bounds) Clamp(c Coords) Coords {
	return Coords{
		Lat: min(max(c.Lat, b.SouthWest.Lat), b.NorthEast.Lat),
		Lng: min(max(c.Lng, b.SouthWest.Lng), b.NorthEast.Lng),
	}
}

// TileLayer is a base map layer the client can switch between.
type TileLayer struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	MaxZoom     int    `json:"max_zoom"`
	Attribution string `json:"attribution"`
	Default     bool   `json:"default"`
}

// MapConfig is the static map setup: initial view, pan limits and layers.
type MapConfig struct {
	Center      Coords      `json:"center"`
	Zoom        int         `json:"zoom"`
	FocusZoom   int         `json:"focus_zoom"`
	MaxBounds   Bounds      `json:"max_bounds"`
	TileLayers  []TileLayer `json:"tile_layers"`
	OverlayName string      `json:"overlay_name"`
}

// View is a map viewport.
type View struct {
	Center Coords `json:"center"`
	Zoom   int    `json:"zoom"`
}
