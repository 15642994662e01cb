package domain

type Executor struct {
	Position      Position
	Possibilities []Demand
}

// MeetsDemands reports whether every demand of the client appears in the
// executor's possibilities. A client without demands is always met.
func (e Executor) MeetsDemands(c Client) bool {
demands:
	for _, d := range c.Demands {
		for _, p := range e.Possibilities {
			if p == d {
				continue demands
			}
		}
		return false
	}
	return true
}
