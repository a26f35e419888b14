package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Resource struct {
	ID         string
	Name       string
	HourlyRate decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EstimateCost prices the given number of hours at the resource's hourly
// rate, rounded to cents.
func (r *Resource) EstimateCost(hours float64) decimal.Decimal {
	return r.HourlyRate.Mul(decimal.NewFromFloat(hours)).Round(2)
}

func (r *Resource) DisplayID() string {
	return shortID(r.ID)
}
