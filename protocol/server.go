package protocol

// StartInfo is sent to a joining connection only.
type StartInfo struct {
	PlayerID string `json:"pid"`
	HostID   string `json:"hostid"`
}

// GameState is the full room snapshot broadcast every tick.
type GameState struct {
	Host      string           `json:"host"`
	Players   []PlayerSnapshot `json:"players"`
	Items     []ItemSnapshot   `json:"items"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
	Started   bool             `json:"started"`
	StartedAt int64            `json:"startTimestamp"`
	Countdown int              `json:"countDown"`
	GameOver  bool             `json:"gameOver"`
	Winner    string           `json:"winner,omitempty"`
}

type PlayerSnapshot struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Speed  float64 `json:"speed"`
	Radius float64 `json:"radius"`
	Color  Color   `json:"color"`
	Keys   Keys    `json:"keys"`
	Alive  bool    `json:"alive"`
}

type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

type Keys struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

type ItemSnapshot struct {
	Kind   int     `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Speed  float64 `json:"speed"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
