package ui

import (
	"strings"

	"life-ca/internal/core"
)

// statusKeys lists the snapshot entries shown on the status line, in order.
var statusKeys = []string{"generation", "population", "tps"}

// StatusLine renders the HUD text for a parameter snapshot.
func StatusLine(snap core.ParameterSnapshot, paused bool) string {
	parts := make([]string, 0, len(statusKeys)+1)
	for _, key := range statusKeys {
		p, ok := snap.Lookup(key)
		if !ok {
			continue
		}
		parts = append(parts, p.Label+": "+p.Value)
	}
	if paused {
		parts = append(parts, "PAUSED")
	}
	return strings.Join(parts, "  ")
}
