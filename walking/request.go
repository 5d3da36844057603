package walking

import (
	"fmt"
)

type RequestKind int

const (
	RequestStand RequestKind = iota
	RequestWalk
	RequestKick
)

// Request is what the rest of the robot asks the engine to do this cycle.
type Request struct {
	Kind RequestKind

	// Only for RequestWalk.
	Step Step

	// Only for RequestKick.
	KickVariant KickVariant
	KickSide    Side
	Strength    float64
}

func StandRequest() Request {
	return Request{Kind: RequestStand}
}

func WalkRequest(step Step) Request {
	return Request{Kind: RequestWalk, Step: step}
}

func KickRequest(variant KickVariant, side Side, strength float64) Request {
	return Request{Kind: RequestKick, KickVariant: variant, KickSide: side, Strength: strength}
}

// Apply runs the transition of the current mode which matches the request.
func (r Request) Apply(ctx *Context, m Mode) Mode {
	switch r.Kind {
	case RequestWalk:
		return m.Walk(ctx, r.Step)
	case RequestKick:
		return m.Kick(ctx, r.KickVariant, r.KickSide, r.Strength)
	default:
		return m.Stand(ctx)
	}
}

func (r Request) String() string {
	switch r.Kind {
	case RequestStand:
		return "stand"
	case RequestWalk:
		return fmt.Sprintf("walk %s", r.Step)
	case RequestKick:
		return fmt.Sprintf("kick %s side=%s strength=%.2f", r.KickVariant, r.KickSide, r.Strength)
	default:
		return fmt.Sprintf("Request(%d)", int(r.Kind))
	}
}
