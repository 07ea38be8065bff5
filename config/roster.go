package config

import "github.com/mitander/kalandra/models"

// DefaultRoster is the fixed, ordered list of fuzz targets. Order is
// priority: the connection state machine guards authentication and runs
// first, wire decoding next, server-side surfaces last. Add or remove
// harnesses by editing this list; there is no dynamic discovery.
func DefaultRoster() []models.Target {
	return []models.Target{
		{Name: "connection_state_fuzzer", Description: "connection handshake state machine"},
		{Name: "frame_decode_fuzzer", Description: "wire frame header and payload decoding"},
		{Name: "session_payload_fuzzer", Description: "Hello/HelloReply/Goodbye session payloads"},
		{Name: "sequencer_fuzzer", Description: "frame sequencer log-index assignment"},
		{Name: "room_manager_fuzzer", Description: "room lifecycle and MLS validation glue"},
	}
}
