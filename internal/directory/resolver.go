// Package directory resolves a kennitala to the switch/port pair serving it.
package directory

import "context"

// Resolution is the directory's answer for one identifier. Success=false
// means the directory has no mapping; Message carries its explanation.
type Resolution struct {
	SwitchNumber string `json:"switch_number"`
	PortNumber   string `json:"port_number"`
	Success      bool   `json:"success"`
	Message      string `json:"message"`
}

// Resolver maps a normalized kennitala to a switch/port pair.
type Resolver interface {
	Resolve(ctx context.Context, kennitala string) (Resolution, error)
}
