package protocol

// Payloads coming in from the client.

type Join struct {
	Room string `json:"room"`
	Name string `json:"name,omitempty"`
}

// Key is the payload of keydown/keyup: one of "up", "down", "left", "right".
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

func (k Key) Valid() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}
