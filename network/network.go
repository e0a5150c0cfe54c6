package network

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"dodge/logging"
	"dodge/protocol"
	"dodge/room"
)

const (
	readWait     = 60 * time.Second
	pingInterval = 25 * time.Second
	maxFrameSize = 1 << 20 // 1MB
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server is the websocket entry point: it upgrades connections, assigns
// each a session id, and translates inbound envelopes into room events.
type Server struct {
	manager *room.Manager
}

func NewServer(m *room.Manager) *Server {
	return &Server{manager: m}
}

func (s *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger.Errorf("websocket upgrade: %v", err)
		return
	}

	id := uuid.NewString()
	cl := &client{conn: conn}
	logging.Logger.Infof("connection %s opened from %s", id, r.RemoteAddr)

	defer func() {
		s.manager.Disconnect(id)
		_ = conn.Close()
		logging.Logger.Infof("connection %s closed", id)
	}()

	conn.SetReadLimit(maxFrameSize)
	_ = conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(readWait))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := cl.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		s.dispatch(id, cl, msg)
	}
}

// dispatch parses one inbound envelope. Anything malformed or unknown
// is dropped; the only contract with clients is that bad events are
// no-ops.
func (s *Server) dispatch(id string, cl *client, msg []byte) {
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		logging.Logger.Debugf("connection %s: bad envelope: %v", id, err)
		return
	}

	switch env.T {
	case protocol.MsgJoin:
		p, err := protocol.DecodePayload[protocol.Join](env)
		if err != nil {
			return
		}
		s.manager.Join(id, p.Room, p.Name, cl)
	case protocol.MsgStart:
		s.manager.Start(id)
	case protocol.MsgKeyDown, protocol.MsgKeyUp:
		k, err := protocol.DecodePayload[protocol.Key](env)
		if err != nil || !k.Valid() {
			return
		}
		s.manager.SetKey(id, k, env.T == protocol.MsgKeyDown)
	default:
		logging.Logger.Debugf("connection %s: unknown event %q", id, env.T)
	}
}
