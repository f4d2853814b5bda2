package validators

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/ripplerest/ripplerest-go/pkg/ripplerest/types"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("ripple_address", rippleAddressValidation)
	_ = validate.RegisterValidation("ripple_currency", rippleCurrencyValidation)
	_ = validate.RegisterValidation("ripple_hash", rippleHashValidation)
	validate.RegisterAlias("not_empty", "required")
	return validate
}

func rippleAddressValidation(fl validator.FieldLevel) bool {
	return types.AddressPattern.MatchString(fl.Field().String())
}

func rippleCurrencyValidation(fl validator.FieldLevel) bool {
	return types.CurrencyPattern.MatchString(fl.Field().String())
}

// An empty hash is rejected here even though the entity pattern allows it.
func rippleHashValidation(fl validator.FieldLevel) bool {
	hash := fl.Field().String()
	return hash != "" && types.Hash256Pattern.MatchString(hash)
}

// Struct validates v and flattens any field errors into a single error.
func Struct(validate *validator.Validate, v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("validating %T: %w", v, err)
	}

	fieldErrors := ParseValidationError(vErrs)
	names := make([]string, 0, len(fieldErrors))
	for name := range fieldErrors {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, fmt.Sprintf("%s: %v", name, fieldErrors[name]))
	}
	return fmt.Errorf("invalid %T: %s", v, strings.Join(msgs, "; "))
}

func ParseValidationError(errors validator.ValidationErrors) map[string]interface{} {
	fieldErrors := make(map[string]interface{})
	for _, err := range errors {
		fieldErrors[getFieldName(err)] = msgForFieldError(err)
	}
	return fieldErrors
}

// msgForFieldError gets the message for the given validation error (tag).
func msgForFieldError(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "This field is required"
	case "not_empty":
		return "This field cannot be empty"
	case "ripple_address":
		return "Invalid ripple address provided"
	case "ripple_currency":
		return "Invalid currency code provided"
	case "ripple_hash":
		return "Invalid transaction hash provided"
	case "url":
		return "Invalid URL provided"
	case "oneof":
		params := strings.Join(strings.Split(fieldError.Param(), " "), ", ")
		return fmt.Sprintf("Unexpected value %q. Expected one of the following values: %s", fieldError.Value(), params)
	case "gt":
		if fieldError.Kind() == reflect.Slice || fieldError.Kind() == reflect.Array {
			return "Should have at least 1 element"
		}
		return fmt.Sprintf("Should be greater than %s", fieldError.Param())
	case "gte":
		return fmt.Sprintf("Should be greater than or equal %s", fieldError.Param())
	default:
		return "Invalid value"
	}
}

func getFieldName(fieldError validator.FieldError) string {
	// Ex.: structName.FieldName, structName.nestedStructName.nestedStructFieldName, structName.nestedStructName.nestedStructName....
	namespace := strings.Split(fieldError.StructNamespace(), ".")
	length := len(namespace)
	if length == 2 {
		return lcFirst(namespace[1])
	}

	if length > 2 {
		return fmt.Sprintf("%s.%s", lcFirst(namespace[length-2]), lcFirst(namespace[length-1]))
	}

	return lcFirst(namespace[0])
}

// lcFirst lowers the case of the first letter of the given string.
//
//	Example: Address -> address
func lcFirst(str string) string {
	for index, letter := range str {
		return string(unicode.ToLower(letter)) + str[index+1:]
	}
	return ""
}
