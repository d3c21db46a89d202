package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their TOML key.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks the configuration and returns all problems joined.
func (c *Config) Validate() error {
	var errs []error
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, fieldError(fe))
		}
	}
	if c.Backend == "redis" && strings.TrimSpace(c.Redis.Addr) == "" {
		errs = append(errs, fmt.Errorf("redis.addr: required for the redis backend"))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	path := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%s: %q is not one of [%s]", path, fe.Value(), fe.Param())
	case "required", "required_if":
		return fmt.Errorf("%s: required", path)
	case "hostname_port":
		return fmt.Errorf("%s: %q is not a host:port address", path, fe.Value())
	default:
		return fmt.Errorf("%s: failed %s validation", path, fe.Tag())
	}
}
