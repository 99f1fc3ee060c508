package models

import "time"

// Page is a 1-based offset page.
type Page struct {
	Number       int
	ItemsPerPage int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.ItemsPerPage
}

// Order sorts a listing by one column. Field holds the API name, e.g. "createdAt".
type Order struct {
	Field string
	Desc  bool
}

// DateRange bounds a nullable timestamp column. Rows with a null value never match a
// non-empty range.
type DateRange struct {
	Before         *time.Time
	StrictlyBefore *time.Time
	After          *time.Time
	StrictlyAfter  *time.Time
}

func (r DateRange) IsZero() bool {
	return r.Before == nil && r.StrictlyBefore == nil && r.After == nil && r.StrictlyAfter == nil
}

type ListQuery[F any] struct {
	Filter F
	Order  []Order
	Page   Page
}
