package gstyle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidStyle is returned when a style fails validation.
var ErrInvalidStyle = errors.New("gstyle: invalid style")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used for style values.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// unit accepts fractions in [0, 1], such as opacities and alignments.
		_ = v.RegisterValidation("unit", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return f >= 0 && f <= 1
		})

		validateInst = v
	})
	return validateInst
}

// Validator exposes the configured validator to sub-packages.
func Validator() *validator.Validate { return validatorInstance() }

func wrapInvalid(what string, err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fe.Field()
		if field == "" {
			field = "value"
		}
		return fmt.Errorf("%w: %s: %s failed on '%s': %w", ErrInvalidStyle, what, field, fe.Tag(), err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidStyle, what, err)
}

// Validate checks every value of the style and reports the first problem.
// The returned error wraps ErrInvalidStyle.
func (s Style) Validate() error {
	v := validatorInstance()
	if err := v.Struct(s.font); err != nil {
		return wrapInvalid("font", err)
	}
	if err := s.dim.validate(); err != nil {
		return wrapInvalid("dimensionality", err)
	}
	if err := s.layout.validate(); err != nil {
		return wrapInvalid("layout", err)
	}
	for _, o := range []struct {
		name string
		out  Outline
	}{{"margin", s.margin}, {"padding", s.padding}, {"border width", s.border.widths}} {
		for _, side := range o.out.sides() {
			if n, ok := side.Get(); ok && n < 0 {
				return fmt.Errorf("%w: %s: negative side %d", ErrInvalidStyle, o.name, n)
			}
		}
	}
	for c, a := range s.border.arcs {
		if a.Width < 0 || a.Height < 0 {
			return fmt.Errorf("%w: border arc %v: negative radius", ErrInvalidStyle, Corner(c))
		}
	}
	for _, g := range s.border.gradients {
		if err := g.Value.validate(); err != nil {
			return wrapInvalid("border gradient "+g.Name, err)
		}
	}
	for i, l := range s.layers {
		if err := l.validate(); err != nil {
			return fmt.Errorf("%v layer: %w", Layer(i), err)
		}
	}
	return nil
}
