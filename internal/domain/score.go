package domain

// Level is the crowd classification derived from a rounded crowd percentage.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
	LevelVeryHigh Level = "very-high"
)

// Score is a destination's share of total visitation for one mode.
type Score struct {
	DestinationID string  `json:"destination_id"`
	Mode          Mode    `json:"mode"`
	Percent       float64 `json:"percent"`
	Rounded       int     `json:"rounded"`
	Level         Level   `json:"level"`
}

// Icon describes a map marker's div icon.
type Icon struct {
	ClassName string `json:"class_name"`
	HTML      string `json:"html"`
	Size      [2]int `json:"size"`
	Anchor    [2]int `json:"anchor"`
}

// Marker is the rendered view of one destination on the map.
type Marker struct {
	DestinationID string `json:"destination_id"`
	Coords        Coords `json:"coords"`
	Icon          Icon   `json:"icon"`
	Popup         string `json:"popup"`
	Score         Score  `json:"score"`
}

// ChartSeries is the single line-chart dataset for a destination and mode.
type ChartSeries struct {
	Labels          []string `json:"labels"`
	Label           string   `json:"label"`
	Data            []int64  `json:"data"`
	BorderColor     string   `json:"border_color"`
	BackgroundColor string   `json:"background_color"`
	Tension         float64  `json:"tension"`
}

// Strain is the coloured crowd banner shown for the selected destination.
type Strain struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// DestinationDetail is everything the detail panel shows for a destination.
type DestinationDetail struct {
	Destination    Destination `json:"destination"`
	Score          Score       `json:"score"`
	Strain         Strain      `json:"strain"`
	Recommendation string      `json:"recommendation"`
	Chart          ChartSeries `json:"chart"`
	Comments       []Comment   `json:"comments"`
}
