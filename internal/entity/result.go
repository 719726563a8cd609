package entity

// PlaceResult describes an accepted placement.
type PlaceResult struct {
	Position    Position `json:"position"`
	Player      Player   `json:"player"`
	Status      Status   `json:"status"`
	Winner      Player   `json:"winner,omitempty"`
	WinningLine *Line    `json:"winning_line,omitempty"`
}

// SlideResult describes an accepted window slide.
type SlideResult struct {
	Direction Direction `json:"direction"`
	Window    Position  `json:"window"`
	Turn      Player    `json:"player_turn"`
}
