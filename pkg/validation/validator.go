package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// Custom validator instance
	validate = validator.New()

	// Regex patterns for validation
	symbolPattern = regexp.MustCompile(`^[A-Z0-9]{1,12}$`)
)

// ValidationError represents a validation error with field and message
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ""
	}

	var messages []string
	for _, err := range ve {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Register custom validators
func init() {
	validate.RegisterValidation("symbol", validateSymbol)
	validate.RegisterValidation("price", validatePrice)
	validate.RegisterValidation("timestamp", validateTimestamp)
}

// validateSymbol validates trading-pair symbol format, e.g. ETHUSDC
func validateSymbol(fl validator.FieldLevel) bool {
	symbol, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return symbolPattern.MatchString(symbol)
}

// validatePrice validates price is positive and reasonable
func validatePrice(fl validator.FieldLevel) bool {
	price, ok := fl.Field().Interface().(float64)
	if !ok {
		return false
	}
	return price > 0 && price < 1000000
}

// validateTimestamp validates a millisecond timestamp is not in the future
func validateTimestamp(fl validator.FieldLevel) bool {
	timestamp, ok := fl.Field().Interface().(int64)
	if !ok {
		return false
	}
	return timestamp > 0 && !time.UnixMilli(timestamp).After(time.Now().Add(time.Minute))
}

// ValidateStruct validates a struct using tags
func ValidateStruct(s interface{}) ValidationErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var errors ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, ValidationError{
			Field:   err.Field(),
			Message: getErrorMessage(err.Field(), err.Tag()),
			Value:   err.Value(),
		})
	}

	return errors
}

// getErrorMessage returns a user-friendly error message
func getErrorMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "symbol":
		return fmt.Sprintf("%s must be a valid trading-pair symbol (1-12 uppercase letters/numbers)", field)
	case "price":
		return fmt.Sprintf("%s must be a positive price less than 1,000,000", field)
	case "timestamp":
		return fmt.Sprintf("%s must be a positive millisecond timestamp not in the future", field)
	default:
		return fmt.Sprintf("%s failed validation: %s", field, tag)
	}
}

// SanitizeString removes null bytes and control characters and trims whitespace
func SanitizeString(s string) string {
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// SanitizePrice clamps price into reasonable bounds
func SanitizePrice(price float64) float64 {
	if price <= 0 {
		return 0.01
	}
	if price > 1000000 {
		return 1000000
	}
	return price
}

// SanitizeTimestamp replaces future timestamps with the current time
func SanitizeTimestamp(timestamp int64) int64 {
	now := time.Now()
	if timestamp <= 0 || time.UnixMilli(timestamp).After(now) {
		return now.UnixMilli()
	}
	return timestamp
}
