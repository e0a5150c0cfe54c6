package room

import (
	"time"

	"dodge/game"
	"dodge/logging"
	"dodge/protocol"
)

// Room owns one game session. All state is mutated by its Run goroutine
// only: commands arrive on Inbox, the tick fires on the loop's ticker,
// and the countdown and speed-ramp timers are loop-owned channels, so
// their expiry is handled on the same goroutine and stopping the room
// stops them.
type Room struct {
	Inbox          chan any
	tickHz         int
	broadcastEvery int
	state          game.State
	clients        map[string]Conn
	countdown      <-chan time.Time
	ramp           *time.Ticker
	rampC          <-chan time.Time
	quit           chan struct{}

	Name    string           // room name clients join by
	OnEmpty func(name string) // called when the last player leaves
}

func New(name string, tickHz int) *Room {
	if tickHz <= 0 {
		tickHz = protocol.SimTickHz
	}
	broadcastEvery := tickHz / protocol.BroadcastHz
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}
	return &Room{
		Inbox:          make(chan any, 256),
		tickHz:         tickHz,
		broadcastEvery: broadcastEvery,
		state:          game.NewState(),
		clients:        make(map[string]Conn),
		quit:           make(chan struct{}),
		Name:           name,
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected clients.
func (r *Room) NumPlayers() int {
	return len(r.clients)
}

func (r *Room) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(r.tickHz))
	defer ticker.Stop()
	defer r.stopRamp()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.tick()
		case <-r.countdown:
			r.beginRound()
		case <-r.rampC:
			game.RaiseItemSpeed(&r.state, game.SpeedRampStep)
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case Leave:
		r.handleLeave(c.ConnID)
	case Start:
		r.handleStart()
	case SetKey:
		r.handleSetKey(c)
	}
}

func (r *Room) handleJoin(c Join) {
	if len(r.clients) == 0 {
		r.state.Host = c.ConnID
	}
	r.clients[c.ConnID] = c.Conn
	r.state.Players[c.ConnID] = game.NewPlayer(c.Name, r.state.Width, r.state.Height)

	info, err := protocol.Encode(protocol.MsgStartInfo, protocol.StartInfo{
		PlayerID: c.ConnID,
		HostID:   r.state.Host,
	})
	if err == nil {
		_ = c.Conn.Send(info)
	}

	logging.Logger.Infof("player %s joined room %s, total connections: %d", c.ConnID, r.Name, len(r.clients))
	r.broadcastRoomCount()
}

func (r *Room) handleLeave(connID string) {
	_, hadConn := r.clients[connID]
	_, hadPlayer := r.state.Players[connID]
	if !hadConn && !hadPlayer {
		return
	}

	if c, ok := r.clients[connID]; ok {
		_ = c.Close()
	}
	delete(r.clients, connID)
	delete(r.state.Players, connID)
	r.checkHost()

	if len(r.clients) == 0 {
		logging.Logger.Infof("all players left, deleting room %s", r.Name)
		if r.OnEmpty != nil {
			r.OnEmpty(r.Name)
		}
		return
	}
	logging.Logger.Infof("player %s left room %s, total connections: %d", connID, r.Name, len(r.clients))
	r.broadcastRoomCount()
}

// handleStart begins a new round. A single-player room cannot start.
func (r *Room) handleStart() {
	if len(r.state.Players) <= 1 {
		return
	}

	r.state.GameOver = false
	r.state.Started = true
	r.state.StartedAt = time.Now().UnixMilli()
	r.state.Items = make(map[int]*game.Item)

	// The previous winner keeps the boost only for the round they won.
	if w := r.state.Winner; w != "" {
		if p, ok := r.state.Players[w]; ok {
			p.Speed = game.DefaultSpeed
			r.state.Winner = ""
		}
	}

	for _, p := range r.state.Players {
		p.Alive = true
	}

	r.countdown = time.After(time.Duration(r.state.CountdownSeconds) * time.Second)
}

// beginRound fires when the countdown expires: the item set drops in and
// the speed ramp starts. Any ramp from a previous round is stopped first
// so exactly one is ever running.
func (r *Room) beginRound() {
	r.state.Items = game.SpawnItems()
	r.stopRamp()
	r.ramp = time.NewTicker(game.SpeedRampInterval)
	r.rampC = r.ramp.C
}

func (r *Room) stopRamp() {
	if r.ramp != nil {
		r.ramp.Stop()
		r.ramp = nil
		r.rampC = nil
	}
}

func (r *Room) handleSetKey(c SetKey) {
	p, ok := r.state.Players[c.ConnID]
	if !ok {
		return
	}
	switch c.Key {
	case protocol.KeyUp:
		p.Keys.Up = c.Pressed
	case protocol.KeyDown:
		p.Keys.Down = c.Pressed
	case protocol.KeyLeft:
		p.Keys.Left = c.Pressed
	case protocol.KeyRight:
		p.Keys.Right = c.Pressed
	}
}

// checkHost promotes a remaining player when the host connection is gone.
// Runs every tick so a lost disconnect event still heals the room.
func (r *Room) checkHost() {
	if _, ok := r.clients[r.state.Host]; ok {
		return
	}
	for id := range r.state.Players {
		r.state.Host = id
		return
	}
	r.state.Host = ""
}

func (r *Room) tick() {
	r.checkHost()
	wasOver := r.state.GameOver
	game.Step(&r.state)
	if r.state.GameOver && !wasOver {
		winner := r.state.Players[r.state.Winner]
		logging.Logger.Infof("%s won in room %s", winner.Name, r.Name)
	}
	if r.state.Tick%r.broadcastEvery == 0 {
		r.broadcastState()
	}
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgGameState, r.buildSnapshot())
	if err != nil {
		return
	}
	r.broadcast(b)
}

func (r *Room) broadcastRoomCount() {
	b, err := protocol.Encode(protocol.MsgRoomCount, len(r.clients))
	if err != nil {
		return
	}
	r.broadcast(b)
}

func (r *Room) broadcast(b []byte) {
	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.handleLeave(id)
	}
}

func (r *Room) buildSnapshot() protocol.GameState {
	snapshot := protocol.GameState{
		Host:      r.state.Host,
		Players:   make([]protocol.PlayerSnapshot, 0, len(r.state.Players)),
		Items:     make([]protocol.ItemSnapshot, 0, len(r.state.Items)),
		Width:     r.state.Width,
		Height:    r.state.Height,
		Started:   r.state.Started,
		StartedAt: r.state.StartedAt,
		Countdown: r.state.CountdownSeconds,
		GameOver:  r.state.GameOver,
		Winner:    r.state.Winner,
	}
	for id, p := range r.state.Players {
		snapshot.Players = append(snapshot.Players, protocol.PlayerSnapshot{
			ID:     id,
			Name:   p.Name,
			X:      p.X,
			Y:      p.Y,
			Speed:  p.Speed,
			Radius: p.Radius,
			Color:  protocol.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: p.Color.A},
			Keys:   protocol.Keys{Up: p.Keys.Up, Down: p.Keys.Down, Left: p.Keys.Left, Right: p.Keys.Right},
			Alive:  p.Alive,
		})
	}
	for _, it := range r.state.Items {
		snapshot.Items = append(snapshot.Items, protocol.ItemSnapshot{
			Kind:   it.Kind,
			X:      it.X,
			Y:      it.Y,
			Speed:  it.Speed,
			Width:  it.Width,
			Height: it.Height,
		})
	}
	return snapshot
}
