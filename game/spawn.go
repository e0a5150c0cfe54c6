package game

import "math/rand/v2"

// NewPlayer spawns a player at a random position inside the field with
// default speed and a random color.
func NewPlayer(name string, width, height float64) *Player {
	return &Player{
		Name:   name,
		X:      rand.Float64() * width,
		Y:      rand.Float64() * height,
		Speed:  DefaultSpeed,
		Radius: PlayerRadius,
		Color:  randomColor(),
		Alive:  true,
	}
}

func randomColor() Color {
	return Color{
		R: uint8(rand.IntN(256)),
		G: uint8(rand.IntN(256)),
		B: uint8(rand.IntN(256)),
		A: PlayerAlpha,
	}
}

// SpawnItems builds the full item set for a round, all positioned above
// the visible field.
func SpawnItems() map[int]*Item {
	items := make(map[int]*Item, ItemCount)
	for i := 0; i < ItemCount; i++ {
		size := float64(rand.IntN(ItemMaxSize-ItemMinSize+1) + ItemMinSize)
		it := &Item{
			Kind:   rand.IntN(ItemKinds),
			Speed:  rand.Float64()*ItemSpeedSpread + ItemMinSpeed,
			Width:  size,
			Height: size,
		}
		resetItemPosition(it)
		items[i] = it
	}
	return items
}

// ResetItem recycles an item back above the field after it falls out or
// hits a player. Speed and size are kept.
func ResetItem(it *Item) {
	resetItemPosition(it)
}

func resetItemPosition(it *Item) {
	it.X = rand.Float64()*MapWidth + ItemOverscan
	it.Y = -rand.Float64() * ItemDropHeight
}

// RaiseItemSpeed applies one speed-ramp increment to every item.
func RaiseItemSpeed(s *State, step float64) {
	for _, it := range s.Items {
		it.Speed += step
	}
}
