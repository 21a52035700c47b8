package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Encoding selects the format of outbound state frames.
type Encoding string

const (
	EncodingProto   Encoding = "proto"
	EncodingMsgpack Encoding = "msgpack"
	EncodingJSON    Encoding = "json"
)

func parseEncoding(raw string) Encoding {
	switch Encoding(raw) {
	case EncodingMsgpack:
		return EncodingMsgpack
	case EncodingJSON:
		return EncodingJSON
	default:
		return EncodingProto
	}
}

func marshalMsgpack(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unmarshalMsgpack(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(v)
}

// encodeState returns the websocket message type and payload for a state frame.
func encodeState(enc Encoding, s snapshotDTO) (int, []byte, error) {
	switch enc {
	case EncodingJSON:
		data, err := json.Marshal(s)
		if err != nil {
			return 0, nil, fmt.Errorf("encode state as json: %w", err)
		}
		return websocket.TextMessage, data, nil
	case EncodingMsgpack:
		data, err := marshalMsgpack(s)
		if err != nil {
			return 0, nil, fmt.Errorf("encode state as msgpack: %w", err)
		}
		return websocket.BinaryMessage, data, nil
	default:
		return websocket.BinaryMessage, stateToProto(s), nil
	}
}
