package application

import "errors"

var ErrUnsupportedSortKey = errors.New("unsupported sort key")

// SortBy selects the ranking key for the report.
type SortBy string

const (
	SortByDistance SortBy = "distance"
	SortByReward   SortBy = "reward"
)

func (s SortBy) Valid() bool {
	switch s {
	case SortByDistance, SortByReward:
		return true
	default:
		return false
	}
}
