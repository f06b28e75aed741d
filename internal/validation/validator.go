package validation

import (
	"reflect"
	"strings"
	"sync"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/pipeline"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("sort_option", validateSortOption)
	_ = v.RegisterValidation("sales_date", validateSalesDate)

	// Report query parameter names first, then JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates s against its validate tags
func (v *Validator) Struct(s any) error {
	return v.validate.Struct(s)
}

// validateSortOption accepts the identifiers of the supported orderings
func validateSortOption(fl validator.FieldLevel) bool {
	return models.SortOption(fl.Field().String()).IsValid()
}

// validateSalesDate accepts any date layout transaction dates may use
func validateSalesDate(fl validator.FieldLevel) bool {
	_, ok := pipeline.ParseDate(fl.Field().String())
	return ok
}
