package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSortingDictionaryApply(t *testing.T) {
	var applied string
	dict := NewSortingDictionary(
		func(db *gorm.DB) *gorm.DB { applied = "default"; return db },
		map[string]func(*gorm.DB) *gorm.DB{
			"price":      func(db *gorm.DB) *gorm.DB { applied = "price"; return db },
			"price_desc": func(db *gorm.DB) *gorm.DB { applied = "price_desc"; return db },
		},
	)

	dict.Apply(nil, "price")
	assert.Equal(t, "price", applied)

	dict.Apply(nil, "price_desc")
	assert.Equal(t, "price_desc", applied)

	// unknown and empty keys fall back to the default ordering
	dict.Apply(nil, "bogus")
	assert.Equal(t, "default", applied)

	dict.Apply(nil, "")
	assert.Equal(t, "default", applied)
}

func TestSortingDictionaryNoDefault(t *testing.T) {
	dict := NewSortingDictionary(nil, map[string]func(*gorm.DB) *gorm.DB{})
	assert.Nil(t, dict.Apply(nil, "anything"))
}

func TestSortingDictionaryKeys(t *testing.T) {
	dict := NewSortingDictionary(nil, map[string]func(*gorm.DB) *gorm.DB{
		"a": func(db *gorm.DB) *gorm.DB { return db },
		"b": func(db *gorm.DB) *gorm.DB { return db },
	})
	assert.ElementsMatch(t, []string{"a", "b"}, dict.Keys())
}
