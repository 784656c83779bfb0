package utils

import "gorm.io/gorm"

// SortingDictionary maps a sort-order key from the query string to a gorm
// scope, with an explicit default ordering for unknown or empty keys.
// Instances are built once per controller as package-level data and are never
// mutated after construction, so they are safe to share across requests.
type SortingDictionary struct {
	orders       map[string]func(*gorm.DB) *gorm.DB
	defaultOrder func(*gorm.DB) *gorm.DB
}

func NewSortingDictionary(defaultOrder func(*gorm.DB) *gorm.DB, orders map[string]func(*gorm.DB) *gorm.DB) *SortingDictionary {
	return &SortingDictionary{orders: orders, defaultOrder: defaultOrder}
}

// Apply returns the query with the ordering for sortOrder applied, or the
// default ordering when the key is unknown.
func (d *SortingDictionary) Apply(db *gorm.DB, sortOrder string) *gorm.DB {
	if fn, ok := d.orders[sortOrder]; ok {
		return fn(db)
	}
	if d.defaultOrder != nil {
		return d.defaultOrder(db)
	}
	return db
}

// Keys lists the known sort keys, handy for exposing to the frontend.
func (d *SortingDictionary) Keys() []string {
	keys := make([]string, 0, len(d.orders))
	for k := range d.orders {
		keys = append(keys, k)
	}
	return keys
}
