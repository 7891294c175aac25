package handlers

import (
	"errors"
	"reflect"
	"strings"

	"productos/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// validationMessages maps "field.tag" to the message returned to clients.
var validationMessages = map[string]string{
	"nombre.notblank":     "El nombre no debe ser nulo o vacio",
	"nombre.min":          "El nombre debe tener entre 3 y 100 caracteres",
	"nombre.max":          "El nombre debe tener entre 3 y 100 caracteres",
	"descripcion.max":     "Limite excedido - Caracteres permitidos: 500",
	"precio.required":     "El precio no puede ser nulo",
	"precio.gte":          "El valor no puede ser inferior a $0,01",
	"stock.required":      "El stock no puede ser nulo",
	"stock.gte":           "El stock no puede ser inferior a 0",
	"categoria.required":  "La categoria no puede ser nula",
	"categoria.categoria": "Categoría inválida. Valores permitidos: " + models.CategoryNames(),
}

// newValidator returns a validator that reports fields by their JSON name
// and knows the notblank and categoria tags.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("categoria", func(fl validator.FieldLevel) bool {
		return models.Category(fl.Field().String()).Valid()
	})
	return v
}

// validationErrors validates s and returns one message per invalid field, or
// nil when s is valid.
func validationErrors(v *validator.Validate, s any) map[string]string {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, e := range fieldErrs {
		if _, seen := out[e.Field()]; seen {
			continue
		}
		msg, ok := validationMessages[e.Field()+"."+e.Tag()]
		if !ok {
			msg = "Valor inválido"
		}
		out[e.Field()] = msg
	}
	return out
}
