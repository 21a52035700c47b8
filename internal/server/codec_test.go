package server

import (
	"encoding/json"
	"testing"

	. "MissileCommand/internal/game"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protowire"
)

type wireField struct {
	num    protowire.Number
	varint uint64
	fixed  uint64
	bytes  []byte
}

func decodeFields(t *testing.T, b []byte) []wireField {
	t.Helper()
	var out []wireField
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			t.Fatalf("bad tag: %v", protowire.ParseError(n))
		}
		b = b[n:]
		f := wireField{num: num}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.fixed, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			t.Fatalf("unexpected wire type %v for field %d", typ, num)
		}
		if n < 0 {
			t.Fatalf("bad field %d: %v", num, protowire.ParseError(n))
		}
		b = b[n:]
		out = append(out, f)
	}
	return out
}

func fieldsNamed(fields []wireField, num protowire.Number) []wireField {
	var out []wireField
	for _, f := range fields {
		if f.num == num {
			out = append(out, f)
		}
	}
	return out
}

func launchedState(t *testing.T) snapshotDTO {
	t.Helper()
	p := DefaultParams()
	p.Seed = 3
	p.MaxAttackers = 0
	room := NewRoom("codec", p)
	room.Enqueue(Command{Kind: CmdLaunch, At: Vec2{X: 640, Y: 200}})
	room.Tick()
	return snapshotToDTO(room.Snapshot())
}

func TestEncodeStateProto(t *testing.T) {
	state := launchedState(t)
	msgType, data, err := encodeState(EncodingProto, state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("expected binary frame, got %d", msgType)
	}

	fields := decodeFields(t, data)
	room := fieldsNamed(fields, stateRoom)
	if len(room) != 1 || string(room[0].bytes) != "codec" {
		t.Fatalf("unexpected room field: %+v", room)
	}
	now := fieldsNamed(fields, stateNow)
	if len(now) != 1 || int64(now[0].varint) != TickMs {
		t.Fatalf("unexpected now field: %+v", now)
	}
	if n := len(fieldsNamed(fields, stateCity)); n != 3 {
		t.Fatalf("expected 3 cities, got %d", n)
	}
	if n := len(fieldsNamed(fields, stateSilo)); n != 2 {
		t.Fatalf("expected 2 silos, got %d", n)
	}

	missiles := fieldsNamed(fields, stateMissile)
	if len(missiles) != 1 {
		t.Fatalf("expected 1 missile, got %d", len(missiles))
	}
	player := fieldsNamed(decodeFields(t, missiles[0].bytes), 7)
	if len(player) != 1 || !protowire.DecodeBool(player[0].varint) {
		t.Fatal("expected missile to be flagged as player-owned")
	}

	stats := fieldsNamed(fields, stateStats)
	if len(stats) != 1 {
		t.Fatalf("expected one stats message, got %d", len(stats))
	}
	launches := fieldsNamed(decodeFields(t, stats[0].bytes), 1)
	if len(launches) != 1 || launches[0].varint != 1 {
		t.Fatalf("expected launches=1, got %+v", launches)
	}
}

func TestEncodeStateMsgpack(t *testing.T) {
	state := launchedState(t)
	msgType, data, err := encodeState(EncodingMsgpack, state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if msgType != websocket.BinaryMessage {
		t.Fatalf("expected binary frame, got %d", msgType)
	}
	var got snapshotDTO
	if err := unmarshalMsgpack(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Room != "codec" || got.Now != state.Now || len(got.Missiles) != 1 || len(got.Cities) != 3 {
		t.Fatalf("unexpected decoded state: %+v", got)
	}
	if got.Missiles[0].Target != state.Missiles[0].Target {
		t.Fatalf("target mismatch: %+v vs %+v", got.Missiles[0].Target, state.Missiles[0].Target)
	}
}

func TestEncodeStateJSON(t *testing.T) {
	state := launchedState(t)
	msgType, data, err := encodeState(EncodingJSON, state)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if msgType != websocket.TextMessage {
		t.Fatalf("expected text frame, got %d", msgType)
	}
	var got snapshotDTO
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Type != "state" || got.Stats.Launches != 1 {
		t.Fatalf("unexpected decoded state: %+v", got)
	}
}

func TestParseEncodingDefaultsToProto(t *testing.T) {
	cases := map[string]Encoding{
		"":        EncodingProto,
		"proto":   EncodingProto,
		"msgpack": EncodingMsgpack,
		"json":    EncodingJSON,
		"xml":     EncodingProto,
	}
	for raw, want := range cases {
		if got := parseEncoding(raw); got != want {
			t.Errorf("parseEncoding(%q) = %q, want %q", raw, got, want)
		}
	}
}
