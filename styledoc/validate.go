package styledoc

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/gogpu/gstyle"
)

// ErrInvalidDocument is returned when a document fails validation.
var ErrInvalidDocument = errors.New("styledoc: invalid document")

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the document validator. Each enumeration tag
// accepts exactly the names its gstyle parser accepts.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		parsers := map[string]func(string) error{
			"color":          func(s string) error { _, err := gstyle.ParseColor(s); return err },
			"layer":          func(s string) error { _, err := gstyle.ParseLayer(s); return err },
			"area":           func(s string) error { _, err := gstyle.ParseArea(s); return err },
			"cursor":         func(s string) error { _, err := gstyle.ParseCursor(s); return err },
			"fit":            func(s string) error { _, err := gstyle.ParseFitMode(s); return err },
			"placement":      func(s string) error { _, err := gstyle.ParsePlacement(s); return err },
			"transition":     func(s string) error { _, err := gstyle.ParseTransition(s); return err },
			"gradient_type":  func(s string) error { _, err := gstyle.ParseGradientType(s); return err },
			"text_transform": func(s string) error { _, err := gstyle.ParseTextTransform(s); return err },
		}
		for tag, parse := range parsers {
			_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
				return parse(fl.Field().String()) == nil
			})
		}

		validateInst = v
	})
	return validateInst
}

// Validate checks the document against its field rules.
// The returned error wraps ErrInvalidDocument.
func (d *Document) Validate() error {
	v := validatorInstance()
	if err := v.Struct(d); err != nil {
		return invalid(err)
	}
	for _, name := range sortedKeys(d.Layers) {
		if err := v.Struct(d.Layers[name]); err != nil {
			return fmt.Errorf("layer %s: %w", name, invalid(err))
		}
	}
	return nil
}

func invalid(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return fmt.Errorf("%w: %s: failed on '%s' with value %v", ErrInvalidDocument, fe.Namespace(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
}
