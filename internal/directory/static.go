package directory

import "context"

// StaticResolver answers every lookup with a fixed switch/port pair. It
// stands in while the real directory endpoint is not configured.
type StaticResolver struct {
	SwitchNumber string
	PortNumber   string
}

// NewStaticResolver returns the stub resolver with its default mapping.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		SwitchNumber: "SW001",
		PortNumber:   "P001",
	}
}

// Resolve returns the fixed mapping for any identifier.
func (r *StaticResolver) Resolve(ctx context.Context, kennitala string) (Resolution, error) {
	return Resolution{
		SwitchNumber: r.SwitchNumber,
		PortNumber:   r.PortNumber,
		Success:      true,
		Message:      "Success",
	}, nil
}
