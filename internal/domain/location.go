package domain

import "strings"

// A place name resolved by the geocoder. Produced fresh on every lookup and
// never stored.
type ResolvedLocation struct {
	Coordinates
	DisplayName string
}

// JoinDisplayName builds a label from name, state and country, skipping empty parts.
func JoinDisplayName(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, ", ")
}
