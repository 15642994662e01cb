package domain

import "errors"

// ErrNoEligibleClients doubles as the final report text when no client
// qualifies, so the message is a full sentence.
var ErrNoEligibleClients = errors.New("This executor cannot meet the demands of any client!")
