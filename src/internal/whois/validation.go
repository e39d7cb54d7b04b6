package whois

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var hostnameRegexp = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)*$`)

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // The zone or special target the entry belongs to (e.g., "com", "_.ip")
	FieldPath string // Field name from the JSON tag (e.g., "host", "query")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("whois_host", validateWhoisHost); err != nil {
		panic(err)
	}

	// Register function to get field name from "json" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks every server entry against the schema rules.
func (w *WhoIs) Validate() error {
	var validationErrors ValidationErrors

	for _, zone := range sortedKeys(w.servers) {
		if err := validate.Struct(w.servers[zone]); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, zone)...)
		}
	}
	for _, name := range sortedKeys(w.special) {
		if err := validate.Struct(w.special[name]); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "_."+name)...)
		}
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}
	return nil
}

func sortedKeys(m map[string]*Server) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Custom validator: hostname or IP address, optionally with an explicit port
func validateWhoisHost(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}

	host := value
	if h, port, err := net.SplitHostPort(value); err == nil {
		if n, err := strconv.ParseUint(port, 10, 16); err != nil || n == 0 {
			return false
		}
		host = h
	}

	if ip := net.ParseIP(host); ip != nil {
		return true
	}
	return hostnameRegexp.MatchString(host)
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "contains":
		return fmt.Sprintf("must contain %s", e.Param())
	case "whois_host":
		return "must be a hostname or IP address, optionally with a port"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: e.Field(),
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
