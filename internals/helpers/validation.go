package helper

import (
	"errors"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationError carries per-field failures; FromStoreError renders it as 422.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string { return "validation failed" }

// FieldErrors flattens validator errors to field -> failed rules.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		rule := fe.Tag()
		if p := fe.Param(); p != "" {
			rule += "=" + p
		}
		out[fe.Field()] = append(out[fe.Field()], rule)
	}
	return out
}

/* ===============================
   Request binding
=================================*/

// BindJSON parses the body into dst and validates it.
func BindJSON(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	return check(v, dst)
}

// BindQuery parses the query string into dst and validates it.
func BindQuery(c *fiber.Ctx, v *validator.Validate, dst any) error {
	if err := c.QueryParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid query parameters")
	}
	return check(v, dst)
}

func check(v *validator.Validate, dst any) error {
	if err := v.Struct(dst); err != nil {
		return &ValidationError{Fields: FieldErrors(err)}
	}
	return nil
}

// PathParam returns the route parameter percent-decoded, so keys such as
// "lakshya%20sharma" match the stored "lakshya sharma".
func PathParam(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if s, err := url.PathUnescape(raw); err == nil {
		return s
	}
	return raw
}
