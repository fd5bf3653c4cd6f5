package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validation rule patterns
var (
	// Phone numbers are 10 to 15 digits without separators
	PhonePattern = `^[0-9]{10,15}$`
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	Phone *regexp.Regexp
}{
	Phone: regexp.MustCompile(PhonePattern),
}

var registerOnce sync.Once

// Register installs the custom rules on gin's validator engine and makes field
// errors report JSON field names. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			RegisterOn(v)
		}
	})
}

// RegisterOn installs the custom rules on v.
func RegisterOn(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("phone", validatePhone)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

func validatePhone(fl validator.FieldLevel) bool {
	return CompiledPatterns.Phone.MatchString(fl.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
