package domain

// City groups recommended spots for one destination city.
type City struct {
	Name  string
	Spots []string
}

// Destination is the place text routed to for spot i, e.g. "Intramuros, Manila".
func (c City) Destination(i int) (string, error) {
	if i < 0 || i >= len(c.Spots) {
		return "", Errorf(KindInvalidInput, "spot index %d out of range for %s (0..%d)", i, c.Name, len(c.Spots)-1)
	}
	return c.Spots[i] + ", " + c.Name, nil
}
