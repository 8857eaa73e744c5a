// Package domain contains the usage-record model returned to callers.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gagnaveita/portvakt/internal/monitoring"
)

// UsageRecord is the assembled answer for one request. It is ephemeral:
// records are returned to the caller and never stored.
type UsageRecord struct {
	ID           snowflake.ID       `json:"id"`
	Kennitala    string             `json:"kennitala"`
	SwitchNumber string             `json:"switch_number"`
	PortNumber   string             `json:"port_number"`
	UsageData    monitoring.Outcome `json:"usage_data"`
	Timestamp    time.Time          `json:"timestamp"`
}
