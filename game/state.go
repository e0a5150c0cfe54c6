package game

// Internal truth authoritative game state

type State struct {
	Tick             int
	Host             string
	Players          map[string]*Player
	Items            map[int]*Item
	Width, Height    float64
	Started          bool
	StartedAt        int64 // unix millis of the start command
	CountdownSeconds int
	GameOver         bool
	Winner           string
}

type Player struct {
	Name   string
	X, Y   float64
	Speed  float64
	Radius float64
	Color  Color
	Keys   Keys
	Alive  bool
}

type Keys struct {
	Up, Down, Left, Right bool
}

// Color is an rgba tuple; alpha is fixed at spawn.
type Color struct {
	R, G, B uint8
	A       float64
}

type Item struct {
	Kind          int
	X, Y          float64
	Speed         float64
	Width, Height float64
}

func NewState() State {
	return State{
		Players:          make(map[string]*Player),
		Items:            make(map[int]*Item),
		Width:            MapWidth,
		Height:           MapHeight,
		CountdownSeconds: CountdownSeconds,
	}
}

// AliveCount returns the number of players still alive this round.
func (s *State) AliveCount() int {
	n := 0
	for _, p := range s.Players {
		if p.Alive {
			n++
		}
	}
	return n
}
