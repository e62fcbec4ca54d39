package odata

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

const authorityTag = "authority"

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New()
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("odata: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	if err := validate.RegisterValidation(authorityTag, isAuthority); err != nil {
		panic(err)
	}
}

// isAuthority reports whether the field is a bare URI authority: a host
// name, an IPv4 address or a bracketed IPv6 address, with an optional port.
func isAuthority(fl validator.FieldLevel) bool {
	authority := fl.Field().String()

	u, err := url.Parse("https://" + authority)
	if err != nil {
		return false
	}

	return u.Host == authority &&
		u.Hostname() != "" &&
		u.User == nil &&
		u.Path == "" &&
		u.RawQuery == "" &&
		!u.ForceQuery &&
		u.Fragment == ""
}

// config is the resolved target of a DataSource.
type config struct {
	Authority string `json:"authority" validate:"required,authority"`
	BasePath  string `json:"base_path" validate:"omitempty,startswith=/"`
}

// check validates the model against its declared tags.
func check(val any) error {
	if err := validate.Struct(val); err != nil {
		var verrors validator.ValidationErrors
		if !errors.As(err, &verrors) {
			return err
		}

		var fields FieldErrors
		for _, verror := range verrors {
			field := FieldError{
				Field: verror.Field(),
				Err:   customErrForTag(verror.Tag(), verror),
			}
			fields = append(fields, field)
		}
		return fields
	}

	return nil
}

// FieldError represents a single validation error for a specific field.
type FieldError struct {
	Field string `json:"field"`
	Err   string `json:"error"`
}

// FieldErrors represents a collection of field errors.
type FieldErrors []FieldError

// Error implements the error interface, returning a human-readable
// summary of all field errors.
func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, f := range fe {
		parts[i] = f.Field + ": " + f.Err
	}
	return strings.Join(parts, "; ")
}

func customErrForTag(tag string, verror validator.FieldError) string {
	switch tag {
	case "required":
		return "This field is required"
	case authorityTag:
		return "must be a host name, an IP address or host:port"
	default:
		return verror.Translate(translator)
	}
}
