package services

import "fmt"

// Pricing decides the charged price of a new registration
type Pricing struct {
	// DiscountThreshold is the number of existing registrations from which the discount applies
	DiscountThreshold int
	// DiscountPercent is the share of the list price charged once discounted
	DiscountPercent int64
}

// DefaultPricing charges 75% from the third registration on
func DefaultPricing() Pricing {
	return Pricing{DiscountThreshold: 2, DiscountPercent: 75}
}

// Validate rejects tiers that could produce a negative or inflated price
func (p Pricing) Validate() error {
	if p.DiscountThreshold < 0 {
		return fmt.Errorf("discount threshold must not be negative, got %d", p.DiscountThreshold)
	}
	if p.DiscountPercent <= 0 || p.DiscountPercent > 100 {
		return fmt.Errorf("discount percent must be in (0, 100], got %d", p.DiscountPercent)
	}
	return nil
}

// Discounted reports whether a student holding existing registrations gets the discount
func (p Pricing) Discounted(existing int) bool {
	return existing >= p.DiscountThreshold
}

// Charge returns the price for a new registration. Division truncates toward zero.
func (p Pricing) Charge(listPrice int64, existing int) int64 {
	if p.Discounted(existing) {
		return listPrice * p.DiscountPercent / 100
	}
	return listPrice
}
