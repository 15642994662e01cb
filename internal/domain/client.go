package domain

import "github.com/shopspring/decimal"

type Demand string

type Position struct {
	X float64
	Y float64
}

type Client struct {
	Name     string
	Position Position
	Reward   decimal.Decimal
	Demands  []Demand
}
