package validator

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// step=N accepts integers that are a multiple of N.
	_ = v.RegisterValidation("step", func(fl validator.FieldLevel) bool {
		step, err := strconv.ParseInt(fl.Param(), 10, 64)
		if err != nil || step <= 0 {
			return false
		}
		switch fl.Field().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return fl.Field().Int()%step == 0
		default:
			return false
		}
	})

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			key := fieldPath(e.Namespace())
			switch e.Tag() {
			case "required":
				errors[key] = field + " is required"
			case "min":
				errors[key] = field + " must be at least " + e.Param() + sizeUnit(e)
			case "max":
				errors[key] = field + " must be at most " + e.Param() + sizeUnit(e)
			case "step":
				errors[key] = field + " must be a multiple of " + e.Param()
			case "oneof":
				errors[key] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "datetime":
				errors[key] = field + " must match the format " + datetimeHint(e.Param())
			default:
				errors[key] = field + " is invalid"
			}
		}
	}

	return errors
}

// fieldPath drops the struct name from a namespace such as
// "ReplaceScheduleRequest.visits[0].date".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func sizeUnit(e validator.FieldError) string {
	if e.Kind() == reflect.String {
		return " characters"
	}
	return ""
}

func datetimeHint(layout string) string {
	switch layout {
	case "2006-01-02":
		return "YYYY-MM-DD"
	case "15:04":
		return "HH:MM"
	default:
		return layout
	}
}
