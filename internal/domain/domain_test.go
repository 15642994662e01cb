package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeetsDemandsAllOf(t *testing.T) {
	executor := Executor{Possibilities: []Demand{"towing", "jumpstart", "fuel"}}

	tests := []struct {
		name   string
		client Client
		want   bool
	}{
		{name: "nil demands", client: Client{Name: "a"}, want: true},
		{name: "empty demands", client: Client{Name: "b", Demands: []Demand{}}, want: true},
		{name: "single covered demand", client: Client{Demands: []Demand{"towing"}}, want: true},
		{name: "single uncovered demand", client: Client{Demands: []Demand{"lockout"}}, want: false},
		{name: "all demands covered", client: Client{Demands: []Demand{"fuel", "towing"}}, want: true},
		{name: "one of many uncovered", client: Client{Demands: []Demand{"towing", "lockout"}}, want: false},
		{name: "duplicate covered demand", client: Client{Demands: []Demand{"fuel", "fuel"}}, want: true},
		{name: "tags are case sensitive", client: Client{Demands: []Demand{"Towing"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, executor.MeetsDemands(tt.client))
		})
	}
}

func TestMeetsDemandsEmptyExecutor(t *testing.T) {
	executor := Executor{}

	assert.True(t, executor.MeetsDemands(Client{Name: "undemanding"}))
	assert.False(t, executor.MeetsDemands(Client{Demands: []Demand{"towing"}}))
}

func TestEuclideanDistance(t *testing.T) {
	tests := []struct {
		name string
		a    Position
		b    Position
		want float64
	}{
		{name: "same point", a: Position{X: 2, Y: 3}, b: Position{X: 2, Y: 3}, want: 0},
		{name: "3-4-5 triangle", a: Position{}, b: Position{X: 3, Y: 4}, want: 5},
		{name: "negative coordinates", a: Position{X: -1, Y: -1}, b: Position{X: 2, Y: 3}, want: 5},
		{name: "axis aligned", a: Position{X: 10, Y: 0}, b: Position{X: 4, Y: 0}, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EuclideanDistance(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.want, EuclideanDistance(tt.b, tt.a), 1e-9)
		})
	}
}

func TestNoEligibleClientsMessage(t *testing.T) {
	assert.EqualError(t, ErrNoEligibleClients, "This executor cannot meet the demands of any client!")
}
