package device

import (
	"encoding/json"

	"ortomat-backend/internal/pkg/errs"
)

var ErrMalformedMessage = errs.New("malformed device message")

type MessageType string

const (
	// controller -> backend
	TypeHello MessageType = "hello"
	TypeDiag  MessageType = "diag"
	TypeAck   MessageType = "ack"
	TypeState MessageType = "state"

	// backend -> controller
	TypeWelcome MessageType = "welcome"
	TypeCommand MessageType = "cmd"
)

const ActionOpen = "open"

// Message is one decoded frame received from a controller.
type Message interface {
	Type() MessageType
}

type Hello struct {
	DeviceID string `json:"device_id"`
}

type Diag struct {
	DeviceID string `json:"device_id"`
	UptimeMs int64  `json:"uptime_ms"`
	WifiRSSI int    `json:"wifi_rssi"`
}

type Ack struct {
	CmdID string `json:"cmd_id"`
}

type State struct {
	Cell   int    `json:"cell"`
	Result string `json:"result"`
	Sensor string `json:"sensor"`
}

// Unknown carries frames with a type this server does not handle.
type Unknown struct {
	Kind MessageType
	Raw  json.RawMessage
}

func (Hello) Type() MessageType     { return TypeHello }
func (Diag) Type() MessageType      { return TypeDiag }
func (Ack) Type() MessageType       { return TypeAck }
func (State) Type() MessageType     { return TypeState }
func (u Unknown) Type() MessageType { return u.Kind }

type Welcome struct {
	Type       MessageType `json:"type"`
	ServerTime int64       `json:"server_time"`
}

type Command struct {
	Type      MessageType `json:"type"`
	CmdID     string      `json:"cmd_id"`
	Action    string      `json:"action"`
	Cell      int         `json:"cell"`
	Timestamp int64       `json:"timestamp"`
}

func NewWelcome(serverTimeMillis int64) Welcome {
	return Welcome{Type: TypeWelcome, ServerTime: serverTimeMillis}
}

func NewOpenCommand(cmdID string, cell int, timestampMillis int64) Command {
	return Command{
		Type:      TypeCommand,
		CmdID:     cmdID,
		Action:    ActionOpen,
		Cell:      cell,
		Timestamp: timestampMillis,
	}
}

// Decode parses a single frame into its typed message.
func Decode(data []byte) (Message, error) {
	var head struct {
		Type MessageType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, errs.Wrap(errs.Mark(err, ErrMalformedMessage), "decode frame type")
	}

	var msg Message
	switch head.Type {
	case TypeHello:
		var m Hello
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errs.Wrap(errs.Mark(err, ErrMalformedMessage), "decode hello")
		}
		msg = m
	case TypeDiag:
		var m Diag
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errs.Wrap(errs.Mark(err, ErrMalformedMessage), "decode diag")
		}
		msg = m
	case TypeAck:
		var m Ack
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errs.Wrap(errs.Mark(err, ErrMalformedMessage), "decode ack")
		}
		msg = m
	case TypeState:
		var m State
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, errs.Wrap(errs.Mark(err, ErrMalformedMessage), "decode state")
		}
		msg = m
	default:
		msg = Unknown{Kind: head.Type, Raw: append(json.RawMessage(nil), data...)}
	}
	return msg, nil
}
