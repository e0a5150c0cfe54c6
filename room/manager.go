package room

import (
	"sync"

	"dodge/protocol"
)

// Manager is the registry of live rooms plus the connection→room index.
// Rooms are created on first join and removed when the last player
// leaves. The index resolves disconnects and input events without the
// transport re-supplying the room name.
type Manager struct {
	mu     sync.RWMutex
	rooms  map[string]*Room
	byConn map[string]string // connection id -> room name
	tickHz int
}

func NewManager(tickHz int) *Manager {
	return &Manager{
		rooms:  make(map[string]*Room),
		byConn: make(map[string]string),
		tickHz: tickHz,
	}
}

// Join routes a connection into the named room, creating it if needed.
func (m *Manager) Join(connID, roomName, name string, c Conn) {
	if roomName == "" {
		return
	}
	m.mu.Lock()
	r, ok := m.rooms[roomName]
	if !ok {
		r = New(roomName, m.tickHz)
		r.OnEmpty = func(n string) {
			m.removeRoom(n)
		}
		m.rooms[roomName] = r
		go r.Run()
	}
	m.byConn[connID] = roomName
	m.mu.Unlock()

	r.Inbox <- Join{ConnID: connID, Name: name, Conn: c}
}

// Disconnect removes the connection from its last-joined room, if any.
func (m *Manager) Disconnect(connID string) {
	m.mu.Lock()
	roomName, ok := m.byConn[connID]
	delete(m.byConn, connID)
	var r *Room
	if ok {
		r = m.rooms[roomName]
	}
	m.mu.Unlock()

	if r != nil {
		r.Inbox <- Leave{ConnID: connID}
	}
}

// Start asks the connection's current room to begin a round.
func (m *Manager) Start(connID string) {
	if r := m.roomOf(connID); r != nil {
		r.Inbox <- Start{ConnID: connID}
	}
}

// SetKey forwards a key state change to the connection's current room.
func (m *Manager) SetKey(connID string, key protocol.Key, pressed bool) {
	if r := m.roomOf(connID); r != nil {
		r.Inbox <- SetKey{ConnID: connID, Key: key, Pressed: pressed}
	}
}

func (m *Manager) roomOf(connID string) *Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	roomName, ok := m.byConn[connID]
	if !ok {
		return nil
	}
	return m.rooms[roomName]
}

func (m *Manager) removeRoom(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.rooms[name]; ok {
		r.Stop()
		delete(m.rooms, name)
	}
}
