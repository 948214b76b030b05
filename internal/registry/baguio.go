package registry

import "github.com/pkordes/wanderwise/backend/internal/domain"

// BaguioMap returns the map setup for Baguio City: initial view, the box
// panning is held inside, and the two base layers (satellite is the default).
func BaguioMap() domain.MapConfig {
	return domain.MapConfig{
		Center:    domain.Coords{Lat: 16.41106, Lng: 120.59332},
		Zoom:      13,
		FocusZoom: 15,
		MaxBounds: domain.Bounds{
			SouthWest: domain.Coords{Lat: 16.33, Lng: 120.52},
			NorthEast: domain.Coords{Lat: 16.48, Lng: 120.66},
		},
		TileLayers: []domain.TileLayer{
			{
				Name:        "Satellite",
				URL:         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
				MaxZoom:     19,
				Attribution: "Tiles &copy; Esri",
				Default:     true,
			},
			{
				Name:        "Streets",
				URL:         "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
				MaxZoom:     19,
				Attribution: "&copy; OpenStreetMap contributors",
			},
		},
		OverlayName: "Tourist Destinations",
	}
}

// Baguio returns a fresh copy of the sample destinations.
func Baguio() []domain.Destination {
	return []domain.Destination{
		{
			ID:          "burnham",
			Name:        "Burnham Park",
			Coords:      domain.Coords{Lat: 16.4142, Lng: 120.5970},
			Description: "Iconic lagoon and park in the city center.",
			Crowd:       "High (~2,000/day)",
			Visitors: domain.Visitors{
				Monthly: []int64{1500, 1600, 1700, 1800, 2200, 2500, 2600, 2400, 2000, 1800, 1700, 1600},
				Daily:   []int64{1200, 1250, 1300, 1400, 1600, 1700, 1800, 1750, 1600, 1500, 1450, 1400, 1350, 1300, 1280, 1270, 1250, 1240, 1230, 1220, 1210, 1205, 1200, 1190, 1180, 1170, 1160, 1150, 1140, 1130},
				Hourly:  []int64{50, 40, 30, 25, 20, 30, 50, 120, 200, 300, 250, 180, 160, 140, 120, 100, 90, 80, 70, 60, 55, 50, 45, 40},
			},
		},
		{
			ID:          "minesview",
			Name:        "Mines View Park",
			Coords:      domain.Coords{Lat: 16.4216, Lng: 120.6003},
			Description: "Scenic viewpoint of mining areas and mountains.",
			Crowd:       "High (~1,500/day)",
			Visitors: domain.Visitors{
				Monthly: []int64{900, 950, 1000, 1100, 1400, 1600, 1700, 1500, 1300, 1100, 1000, 950},
				Daily:   []int64{700, 720, 740, 760, 900, 1000, 1100, 1200, 1150, 1100, 1050, 1000, 980, 960, 940, 920, 900, 880, 860, 840, 820, 800, 780, 760, 740, 720, 700, 680, 660, 640},
				Hourly:  []int64{20, 18, 15, 12, 10, 20, 40, 80, 150, 220, 200, 150, 140, 130, 120, 110, 100, 90, 80, 70, 60, 50, 40, 30},
			},
		},
		{
			ID:          "wright",
			Name:        "Wright Park",
			Coords:      domain.Coords{Lat: 16.4118, Lng: 120.5974},
			Description: "Horse riding and pine-tree park.",
			Crowd:       "Moderate (~800/day)",
			Visitors: domain.Visitors{
				Monthly: []int64{400, 420, 450, 480, 700, 850, 900, 820, 750, 600, 500, 450},
				Daily:   []int64{300, 320, 340, 360, 500, 600, 700, 750, 720, 680, 640, 600, 580, 560, 540, 520, 500, 480, 460, 440, 420, 400, 380, 360, 340, 320, 300, 280, 260, 240},
				Hourly:  []int64{5, 5, 5, 5, 10, 20, 40, 80, 120, 140, 130, 110, 100, 90, 80, 70, 60, 50, 40, 30, 20, 15, 10, 8},
			},
		},
		{
			ID:          "botanical",
			Name:        "Botanical Garden",
			Coords:      domain.Coords{Lat: 16.4059, Lng: 120.5980},
			Description: "Collection of plants and cultural cottages.",
			Crowd:       "Low (~400/day)",
			Visitors: domain.Visitors{
				Monthly: []int64{200, 220, 240, 260, 320, 400, 420, 410, 380, 320, 260, 230},
				Daily:   []int64{150, 160, 170, 180, 220, 260, 300, 330, 320, 300, 280, 260, 250, 240, 230, 220, 210, 200, 190, 180, 170, 160, 150, 145, 140, 135, 130, 125, 120, 115},
				Hourly:  []int64{2, 2, 2, 2, 5, 10, 20, 40, 60, 80, 70, 60, 55, 50, 45, 40, 35, 30, 25, 20, 15, 10, 6, 4},
			},
		},
		{
			ID:          "johnhay",
			Name:        "Camp John Hay",
			Coords:      domain.Coords{Lat: 16.4102, Lng: 120.5916},
			Description: "Historic campsite with gardens and trails.",
			Crowd:       "Moderate (~900/day)",
			Visitors: domain.Visitors{
				Monthly: []int64{500, 550, 600, 650, 900, 1000, 1050, 980, 900, 750, 650, 600},
				Daily:   []int64{400, 420, 440, 460, 600, 700, 800, 850, 820, 780, 740, 700, 680, 660, 640, 620, 600, 580, 560, 540, 520, 500, 480, 460, 440, 420, 400, 380, 360, 340},
				Hourly:  []int64{10, 10, 10, 10, 20, 40, 80, 140, 200, 220, 210, 180, 160, 150, 140, 130, 120, 110, 100, 90, 80, 70, 40, 20},
			},
		},
	}
}
