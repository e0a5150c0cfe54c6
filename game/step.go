package game

// Step advances one room by one tick. Movement from held keys runs in
// every state so lobby players can move; items, collisions and the win
// check only run while a round is live.
func Step(s *State) {
	s.Tick++

	updatePlayers(s)

	if s.Started && !s.GameOver {
		updateItems(s)
		collisionDetection(s)
		checkGameOver(s)
	}
}

func updatePlayers(s *State) {
	for _, p := range s.Players {
		if !p.Alive {
			continue
		}
		if p.Keys.Up && p.Y > p.Radius+TopMargin {
			p.Y -= p.Speed
		}
		if p.Keys.Down && p.Y < s.Height-p.Radius-EdgeMargin {
			p.Y += p.Speed
		}
		if p.Keys.Left && p.X > p.Radius+EdgeMargin {
			p.X -= p.Speed
		}
		if p.Keys.Right && p.X < s.Width-p.Radius-EdgeMargin {
			p.X += p.Speed
		}
	}
}

func updateItems(s *State) {
	for _, it := range s.Items {
		if it.Y > s.Height {
			ResetItem(it)
		} else {
			it.Y += it.Speed
		}
	}
}

func collisionDetection(s *State) {
	for _, it := range s.Items {
		for _, p := range s.Players {
			if !p.Alive {
				continue
			}
			circle := Circle{X: p.X, Y: p.Y, Radius: p.Radius}
			rect := Rect{X: it.X, Y: it.Y, Width: it.Width, Height: it.Height}
			if CircleIntersectsRect(circle, rect) {
				ResetItem(it)
				p.Alive = false
			}
		}
	}
}

// checkGameOver ends the round when exactly one player is left alive.
// Zero alive is a draw: the round stays open with no winner.
func checkGameOver(s *State) {
	alive := 0
	winner := ""
	for id, p := range s.Players {
		if p.Alive {
			alive++
			winner = id
		}
	}
	if alive == 1 {
		s.Winner = winner
		s.GameOver = true
		s.Players[winner].Speed = WinnerSpeed
	}
}
