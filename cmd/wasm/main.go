//go:build js && wasm

package main

import (
	"encoding/json"
	"fmt"
	"math"
	"syscall/js"

	"github.com/smallyu/go-weierstrass/internal/config"
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/protocol/handshake"
	"github.com/smallyu/go-weierstrass/pkg/ecdh"
)

// Active handshakes keyed by session handle.
var sessions = make(map[string]*session)

type session struct {
	preset config.Preset
	sm     ecdh.StateMachine[curves.Point]
}

var presets *config.Config

func main() {
	c := make(chan struct{})

	var err error
	presets, err = config.Default()
	if err != nil {
		fmt.Println("failed to load presets:", err)
		return
	}

	fmt.Println("go-weierstrass WASM initialized")

	js.Global().Set("GoWeierstrass", map[string]interface{}{
		"ScalarMul":    js.FuncOf(ScalarMul),
		"NaiveFactor":  js.FuncOf(NaiveFactor),
		"NewHandshake": js.FuncOf(NewHandshake),
		"Update":       js.FuncOf(Update),
		"Result":       js.FuncOf(Result),
	})

	<-c
}

// ScalarMul multiplies a preset's generator.
// Arguments:
// 0: preset name
// 1: scalar k
// Returns:
// "(x, y)" or "Infinity"
func ScalarMul(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (preset, k)"
	}
	p, err := presets.Lookup(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	g, err := p.GeneratorPoint()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	k, err := scalarArg(args[1].Float())
	if err != nil {
		return fmt.Sprintf("error: k: %v", err)
	}
	r, err := g.ScalarMul(k)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return r.String()
}

// NaiveFactor searches for k with k*G equal to the preset's target.
// Arguments:
// 0: preset name
// 1: search limit
// Returns:
// k, or null when no k up to the limit matches
func NaiveFactor(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (preset, limit)"
	}
	p, err := presets.Lookup(args[0].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if p.Target == nil {
		return "error: preset has no target"
	}
	g, err := p.GeneratorPoint()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	target, err := p.Point(*p.Target)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	limit, err := scalarArg(args[1].Float())
	if err != nil {
		return fmt.Sprintf("error: limit: %v", err)
	}
	k, found, err := g.NaiveFactor(target, limit)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if !found {
		return nil
	}
	return k
}

// NewHandshake starts one side of a toy Diffie-Hellman exchange.
// Arguments:
// 0: JSON string of parameters
// Returns:
// JSON object { sessionID, messages } or an error string
func NewHandshake(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	type ParamsInput struct {
		PartyID   string `json:"partyID"`
		PeerID    string `json:"peerID"`
		Preset    string `json:"preset"`
		Secret    uint64 `json:"secret"`
		SessionID string `json:"sessionID"`
	}

	var input ParamsInput
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	p, err := presets.Lookup(input.Preset)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	g, err := p.GeneratorPoint()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sm, out, err := handshake.NewStateMachine(&ecdh.Parameters[curves.Point]{
		PartyID:   input.PartyID,
		PeerID:    input.PeerID,
		Group:     curves.NewWeierstrassGroup(p.Curve()),
		Generator: g,
		Secret:    input.Secret,
	})
	if err != nil {
		return fmt.Sprintf("error: failed to create state machine: %v", err)
	}

	handle := fmt.Sprintf("%s-%s", input.PartyID, input.SessionID)
	sessions[handle] = &session{preset: p, sm: sm}

	resp := map[string]interface{}{
		"sessionID": handle,
		"messages":  encodeMessages(out),
	}
	respBytes, _ := json.Marshal(resp)
	return string(respBytes)
}

// Update feeds the peer's message into a session.
// Arguments:
// 0: Session ID
// 1: JSON string of message
// Returns:
// JSON array of output messages
func Update(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (sessionID, jsonMsg)"
	}

	s, ok := sessions[args[0].String()]
	if !ok {
		return "error: session not found"
	}

	var dto messageDTO
	if err := json.Unmarshal([]byte(args[1].String()), &dto); err != nil {
		return fmt.Sprintf("error: invalid message json: %v", err)
	}

	pt := curves.Identity(s.preset.Curve())
	if !dto.Infinity {
		var err error
		pt, err = s.preset.Point(config.Coordinates{X: dto.X, Y: dto.Y})
		if err != nil {
			return fmt.Sprintf("error: invalid point: %v", err)
		}
	}

	next, out, err := s.sm.Update(&handshake.PointMessage[curves.Point]{
		FromParty: dto.From,
		ToParty:   dto.To,
		RoundNum:  dto.Round,
		Value:     pt,
	})
	if err != nil {
		return fmt.Sprintf("error: update failed: %v", err)
	}
	s.sm = next

	return marshalMessages(out)
}

// Result returns the shared point once the session is done.
// Arguments:
// 0: Session ID
// Returns:
// "(x, y)", "Infinity" or null while the exchange is running
func Result(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (sessionID)"
	}
	s, ok := sessions[args[0].String()]
	if !ok {
		return "error: session not found"
	}
	shared, done := s.sm.Result()
	if !done {
		return nil
	}
	return shared.String()
}

// scalarArg converts a JS number into a scalar. Only non-negative integers
// that a float64 represents exactly are accepted.
func scalarArg(v float64) (uint64, error) {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, fmt.Errorf("%v is not a finite number", v)
	case v < 0:
		return 0, fmt.Errorf("%v is negative", v)
	case v != math.Trunc(v):
		return 0, fmt.Errorf("%v is not an integer", v)
	case v > 1<<53:
		return 0, fmt.Errorf("%v exceeds 2^53", v)
	}
	return uint64(v), nil
}

type messageDTO struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Round    uint32 `json:"round"`
	X        int64  `json:"x"`
	Y        int64  `json:"y"`
	Infinity bool   `json:"infinity,omitempty"`
}

func encodeMessages(msgs []ecdh.Message[curves.Point]) []messageDTO {
	out := make([]messageDTO, 0, len(msgs))
	for _, m := range msgs {
		dto := messageDTO{From: m.From(), To: m.To(), Round: m.RoundNumber()}
		pt := m.Point()
		if pt.IsIdentity() {
			dto.Infinity = true
		} else {
			dto.X = pt.X().(field.Prime).Value()
			dto.Y = pt.Y().(field.Prime).Value()
		}
		out = append(out, dto)
	}
	return out
}

func marshalMessages(msgs []ecdh.Message[curves.Point]) string {
	b, _ := json.Marshal(encodeMessages(msgs))
	return string(b)
}
