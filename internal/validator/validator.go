// Package validator provides the validation rules for expenses. The same rules
// are registered on Gin's binding engine and on a standalone instance used by
// the service layer.
package validator

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "expensetracker/internal/errors"
	"expensetracker/internal/models"
)

// tagName matches Gin's binding tag so request structs carry a single set of rules.
const tagName = "binding"

var (
	instance *validator.Validate
	once     sync.Once
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

// Struct validates v against its binding tags. It returns nil or a
// VALIDATION_ERROR AppError listing every failing field.
func Struct(v any) error {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.SetTagName(tagName)
		configure(instance)
	})

	if err := instance.Struct(v); err != nil {
		return translate(err)
	}
	return nil
}

// FromBindError converts an error returned by Gin's ShouldBindJSON into a
// VALIDATION_ERROR AppError.
func FromBindError(err error) error {
	var dateErr *models.DateParseError
	if errors.As(err, &dateErr) {
		return apperrors.Validation(map[string]string{"date": "must be a calendar date"})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.Validation(map[string]string{typeErr.Field: "must be a " + kindName(typeErr.Type)})
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return translate(verrs)
	}

	return apperrors.WithMessage(apperrors.ErrValidation, "Malformed request body")
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	v.RegisterCustomTypeFunc(dateValue, models.Date{})
	_ = v.RegisterValidation("expense_category", validateExpenseCategory)
	_ = v.RegisterValidation("money", validateMoney)
}

// jsonFieldName reports fields by their JSON name so errors match the wire format.
func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// dateValue lets the standard rules (required) see a Date as its string form.
func dateValue(field reflect.Value) any {
	if d, ok := field.Interface().(models.Date); ok {
		return d.String()
	}
	return nil
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.ExpenseCategory(fl.Field().String()).Valid()
}

// validateMoney rejects amounts with more than two fractional digits.
func validateMoney(fl validator.FieldLevel) bool {
	d := decimal.NewFromFloat(fl.Field().Float())
	return d.Equal(d.Truncate(models.AmountScale))
}

func kindName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Float32, reflect.Float64, reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
		return "number"
	case reflect.String:
		return "string"
	default:
		return t.String()
	}
}

func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Wrap(apperrors.ErrValidation, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = ruleMessage(fe)
	}
	return apperrors.Validation(fields)
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		if fe.Param() == "0" {
			return "must be positive"
		}
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "money":
		return "must have at most two decimal places"
	case "expense_category":
		names := make([]string, 0, len(models.Categories()))
		for _, c := range models.Categories() {
			names = append(names, string(c))
		}
		return "must be one of " + strings.Join(names, ", ")
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
