package api

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateBody checks the validate tags of a decoded response. out is a
// pointer to a struct or to a slice of structs; anything else passes.
func validateBody(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return validate.Struct(v.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			item := reflect.Indirect(v.Index(i))
			if item.Kind() != reflect.Struct {
				continue
			}
			if err := validate.Struct(item.Interface()); err != nil {
				return err
			}
		}
	}
	return nil
}
