// Package validate wraps go-playground/validator with json-tag field names
// and human-readable messages.
//
// Models declare their constraints as struct tags:
//
//	type Product struct {
//	    Name  string  `json:"name"  validate:"required"`
//	    Price float64 `json:"price" validate:"gte=0"`
//	}
//
// Struct returns a fieldName → message map; an empty map means the value is
// valid.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return val
}

// Struct validates all tagged fields of s and reports the first failing rule
// per field.
func Struct(s interface{}) map[string]string {
	errs := make(map[string]string)

	err := v.Struct(s)
	if err == nil {
		return errs
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["_"] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		name := fieldPath(fe)
		if _, seen := errs[name]; !seen {
			errs[name] = message(fe)
		}
	}
	return errs
}

// HasErrors reports whether the Struct result contains any failure.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

// fieldPath strips the root struct name from the namespace so nested fields
// read as "items[0].quantity" rather than "Cart.items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	}
	return "is invalid"
}
