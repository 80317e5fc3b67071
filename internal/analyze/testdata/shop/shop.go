// Package shop declares interfaces for analyzer tests.
package shop

import (
	"time"

	"builder-generator/fb"
)

// Order is a placed order.
//
//builder:generate
type Order interface {
	// ID identifies the order.
	ID() int64
	//builder:default time.Now
	Clock() func() time.Time
	Note() *string
	Tags() fb.Set[string]
	Codes() map[int]struct{}
	Shipping() Address
	Total() Money
	Labelled

	String() string
	Hash() uint64
	Equal(other Order) bool
}

// Labelled is embedded into Order.
type Labelled interface {
	Label() string
}

//builder:generate
type Address interface {
	Street() string
}

// Money has a hand-written builder without MergeFromBuilder.
type Money interface {
	Cents() int64
}

// Coupon is only generated when selected by name.
type Coupon interface {
	Code() string
}

type MoneyBuilder struct {
	cents int64
}

func NewMoneyBuilder() *MoneyBuilder {
	return &MoneyBuilder{}
}

func (b *MoneyBuilder) SetCents(cents int64) *MoneyBuilder {
	b.cents = cents
	return b
}

func (b *MoneyBuilder) MergeFrom(value Money) *MoneyBuilder {
	b.cents = value.Cents()
	return b
}

func (b *MoneyBuilder) Build() (Money, error) {
	return money(b.cents), nil
}

type money int64

func (m money) Cents() int64 {
	return int64(m)
}
