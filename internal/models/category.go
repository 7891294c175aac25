package models

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the closed set of catalog categories. Values are stored and
// transmitted by name.
type Category string

const (
	CategoryElectronica Category = "ELECTRONICA"
	CategoryRopa        Category = "ROPA"
	CategoryAlimentos   Category = "ALIMENTOS"
	CategoryHogar       Category = "HOGAR"
	CategoryDeportes    Category = "DEPORTES"
)

// ErrInvalidCategory is returned by ParseCategory for unknown names.
var ErrInvalidCategory = errors.New("invalid category")

// Categories lists every category in declaration order.
var Categories = []Category{
	CategoryElectronica,
	CategoryRopa,
	CategoryAlimentos,
	CategoryHogar,
	CategoryDeportes,
}

// ParseCategory matches s exactly (case-sensitive) against the known categories.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, err := ParseCategory(string(c))
	return err == nil
}

// CategoryNames returns the category names joined by ", ".
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
