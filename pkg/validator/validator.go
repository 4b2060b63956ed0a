package validator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"healthcare-saas-backend/pkg/apierror"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their wire names, not Go struct names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &CustomValidator{validator: v}
}

// Validate checks a request payload against its declared constraints and
// returns a *apierror.ValidationError carrying one FieldError per failed
// field, in validation order.
func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]apierror.FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, toFieldError(fe))
	}
	return &apierror.ValidationError{Fields: fields}
}

// toFieldError translates a validator.v10 failure into the structured form
// the friendly-message table understands.
func toFieldError(fe validator.FieldError) apierror.FieldError {
	loc := []string{"body", fe.Field()}

	switch fe.Tag() {
	case "required":
		return apierror.FieldError{Loc: loc, Kind: "missing"}
	case "min":
		if fe.Kind() == reflect.String {
			return apierror.FieldError{
				Loc:  loc,
				Kind: "string_too_short",
				Ctx:  map[string]interface{}{"min_length": fe.Param()},
			}
		}
		return apierror.FieldError{Loc: loc, Kind: "greater_than_equal", Msg: "should be at least " + fe.Param()}
	case "max":
		if fe.Kind() == reflect.String {
			return apierror.FieldError{
				Loc:  loc,
				Kind: "string_too_long",
				Ctx:  map[string]interface{}{"max_length": fe.Param()},
			}
		}
		return apierror.FieldError{Loc: loc, Kind: "less_than_equal", Msg: "should be at most " + fe.Param()}
	case "gte":
		return apierror.FieldError{Loc: loc, Kind: "greater_than_equal", Msg: "should be greater than or equal to " + fe.Param()}
	case "lte":
		return apierror.FieldError{Loc: loc, Kind: "less_than_equal", Msg: "should be less than or equal to " + fe.Param()}
	case "email":
		return apierror.FieldError{Loc: loc, Kind: "email", Msg: "should be a valid email address"}
	default:
		return apierror.FieldError{Loc: loc, Kind: fe.Tag(), Msg: "is invalid"}
	}
}

// DecodeError translates a JSON body decoding failure into the standard
// validation error shape. Type mismatches are reported per-field, anything
// else is a flat 400 rejection.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		target := typeErr.Type
		for target != nil && target.Kind() == reflect.Ptr {
			target = target.Elem()
		}

		kind := "type_error"
		switch target.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			kind = "int_parsing"
		case reflect.String:
			kind = "string_type"
		case reflect.Bool:
			kind = "bool_parsing"
		}

		field := typeErr.Field
		if idx := strings.LastIndex(field, "."); idx >= 0 {
			field = field[idx+1:]
		}

		loc := []string{"body"}
		if field != "" {
			loc = append(loc, field)
		}
		return &apierror.ValidationError{Fields: []apierror.FieldError{{Loc: loc, Kind: kind}}}
	}

	return apierror.BadRequest("Invalid request body")
}
