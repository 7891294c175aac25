package models_test

import (
	"testing"

	"productos/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	for _, c := range models.Categories {
		got, err := models.ParseCategory(string(c))
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	for _, name := range []string{"electronica", "Ropa", "TECNOLOGIA", "", " HOGAR"} {
		_, err := models.ParseCategory(name)
		assert.ErrorIs(t, err, models.ErrInvalidCategory, name)
	}
}

func TestCategoryNames(t *testing.T) {
	assert.Equal(t, "ELECTRONICA, ROPA, ALIMENTOS, HOGAR, DEPORTES", models.CategoryNames())
	assert.True(t, models.CategoryHogar.Valid())
	assert.False(t, models.Category("hogar").Valid())
}
