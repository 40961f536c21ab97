package environment

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var reTenant = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fe.Error()
	}
	return "invalid environment: " + strings.Join(msgs, "; ")
}

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, fe := range e.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Validate checks that every field is present and well formed. All problems
// are reported at once as a *ValidationError.
func (c Config) Validate() error {
	var errs []FieldError
	add := func(field, msg string) {
		errs = append(errs, FieldError{Field: field, Message: msg})
	}

	if msg := checkHTTPURL(c.APIServerURL); msg != "" {
		add("apiServerUrl", msg)
	}
	if msg := checkTenant(c.Auth0.URL); msg != "" {
		add("auth0.url", msg)
	}
	if msg := checkHTTPURL(c.Auth0.Audience); msg != "" {
		add("auth0.audience", msg)
	}
	if c.Auth0.ClientID == "" {
		add("auth0.clientId", "is empty")
	} else if strings.IndexFunc(c.Auth0.ClientID, unicode.IsSpace) >= 0 {
		add("auth0.clientId", "contains whitespace")
	}
	if msg := checkHTTPURL(c.Auth0.CallbackURL); msg != "" {
		add("auth0.callbackURL", msg)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func checkHTTPURL(v string) string {
	if v == "" {
		return "is empty"
	}
	u, err := url.Parse(v)
	if err != nil {
		return "is not a valid url"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "must be an absolute http or https url"
	}
	if u.Host == "" {
		return "has no host"
	}
	return ""
}

func checkTenant(v string) string {
	if v == "" {
		return "is empty"
	}
	if strings.Contains(v, "://") {
		return "must be a tenant domain prefix, not a url"
	}
	if !reTenant.MatchString(v) {
		return "is not a valid domain prefix"
	}
	return ""
}

// ValidateVariants checks every variant and that exactly one of them is a
// production variant.
func ValidateVariants(variants map[string]Config) error {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []FieldError
	var production []string
	for _, name := range names {
		c := variants[name]
		if c.Production {
			production = append(production, name)
		}
		if err := c.Validate(); err != nil {
			for _, fe := range err.(*ValidationError).Errors {
				errs = append(errs, FieldError{Field: name + "." + fe.Field, Message: fe.Message})
			}
		}
	}

	switch len(production) {
	case 1:
	case 0:
		errs = append(errs, FieldError{Field: "production", Message: "no production variant"})
	default:
		errs = append(errs, FieldError{
			Field:   "production",
			Message: fmt.Sprintf("multiple production variants: %s", strings.Join(production, ", ")),
		})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
