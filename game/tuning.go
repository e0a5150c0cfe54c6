package game

import "time"

const (
	MapWidth  = 1000.0
	MapHeight = 600.0

	DefaultSpeed = 10.0
	WinnerSpeed  = 20.0 // cosmetic boost for the round winner
	PlayerRadius = 20.0
	PlayerAlpha  = 0.9

	// Movement clamps: a key only moves the player while the position is
	// strictly inside the bound offset by radius plus the margin. The top
	// margin is larger than the others.
	TopMargin  = 20.0
	EdgeMargin = 5.0

	CountdownSeconds = 3

	ItemCount       = 15
	ItemKinds       = 5 // kind in [0,ItemKinds)
	ItemMinSize     = 30
	ItemMaxSize     = 50
	ItemMinSpeed    = 3.0
	ItemSpeedSpread = 7.0 // spawn speed in [ItemMinSpeed, ItemMinSpeed+ItemSpeedSpread)
	ItemOverscan    = 20.0
	ItemDropHeight  = 200.0 // items spawn up to this far above the field

	SpeedRampStep     = 5.0
	SpeedRampInterval = 10 * time.Second
)
