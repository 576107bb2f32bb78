package dto

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// identityRe accepts textual principals such as "rrkah-fqaaa-aaaaa-aaaaq-cai".
var identityRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_\-\.]{0,127}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("identity", validateIdentity)
	}
}

// ValidIdentity reports whether s is a well-formed caller identity.
func ValidIdentity(s string) bool {
	return identityRe.MatchString(s)
}

func validateIdentity(fl validator.FieldLevel) bool {
	return ValidIdentity(fl.Field().String())
}

// TrimStruct trims surrounding whitespace from every exported string field
// (including *string) of a struct pointer.
func TrimStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	rv = rv.Elem()
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if !f.IsNil() && f.Elem().Kind() == reflect.String {
				f.Elem().SetString(strings.TrimSpace(f.Elem().String()))
			}
		}
	}
}
