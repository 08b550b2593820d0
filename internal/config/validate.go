package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iburimskiy/light-tricks/internal/icons"
	"github.com/iburimskiy/light-tricks/internal/style"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their document names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	for tag, fn := range map[string]validator.Func{
		"icon":       validIcon,
		"style":      validStyle,
		"hexrgb":     validHexRGB,
		"messagekey": validMessageKey,
	} {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
	validate.RegisterStructValidation(validateButton, Button{})
	validate.RegisterStructValidation(validateConfig, Config{})
}

func validIcon(fl validator.FieldLevel) bool {
	return icons.Has(fl.Field().String())
}

func validStyle(fl validator.FieldLevel) bool {
	_, err := style.Parse(fl.Field().String())
	return err == nil
}

// validHexRGB limits colours to the #rgb and #rrggbb forms the renderer fills with.
func validHexRGB(fl validator.FieldLevel) bool {
	_, err := style.HexColor(fl.Field().String())
	return err == nil
}

// validMessageKey accepts the default key and every effect that shows a message.
func validMessageKey(fl validator.FieldLevel) bool {
	key := fl.Field().String()
	if key == MessageDefault {
		return true
	}
	e := Effect(key)
	return e.Valid() && !e.Momentary()
}

func validateButton(sl validator.StructLevel) {
	b := sl.Current().Interface().(Button)
	if b.States == nil {
		return
	}
	switch {
	case b.Effect == "":
		sl.ReportError(b.States, "states", "States", "stateeffect", "")
	case b.Effect.Momentary():
		sl.ReportError(b.States, "states", "States", "statemomentary", string(b.Effect))
	}
}

func validateConfig(sl validator.StructLevel) {
	c := sl.Current().Interface().(Config)

	if _, ok := c.Messages[MessageDefault]; !ok {
		sl.ReportError(c.Messages, "messages."+MessageDefault, "Messages", "required", "")
	}

	bound := make(map[Effect]string, len(Effects))
	for i, b := range c.Buttons {
		if b.Effect == "" || !b.Effect.Valid() {
			continue
		}
		field := fmt.Sprintf("buttons[%d].effect", i)
		if other, dup := bound[b.Effect]; dup {
			sl.ReportError(b.Effect, field, "Effect", "boundonce", other)
			continue
		}
		bound[b.Effect] = b.ID

		if (b.Effect == EffectSpotlight || b.Effect == EffectDarkMode) && b.BackgroundColor == "" {
			sl.ReportError(b.BackgroundColor, fmt.Sprintf("buttons[%d].backgroundColor", i), "BackgroundColor", "backgroundfor", string(b.Effect))
		}
	}
}

// Validate checks that every effect, icon and style token referenced by the
// configuration resolves. All problems are reported together.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, errors.New(describe(fe)))
	}
	return errors.Join(errs...)
}

// describe turns a validation failure into a message naming the document field.
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s needs at least %s entry", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s: duplicate id", field)
	case "oneof":
		return fmt.Sprintf("%s: unknown effect %q", field, fe.Value())
	case "icon":
		return fmt.Sprintf("%s: icon %q not in icon registry", field, fe.Value())
	case "style":
		_, err := style.Parse(fmt.Sprint(fe.Value()))
		return fmt.Sprintf("%s: %v", field, err)
	case "hexcolor", "hexrgb":
		return fmt.Sprintf("%s: invalid disco colour %q", field, fe.Value())
	case "gte":
		return fmt.Sprintf("%s must not be negative", field)
	case "messagekey":
		if Effect(fmt.Sprint(fe.Value())).Momentary() {
			return fmt.Sprintf("messages.%v belongs to a momentary effect and is never shown", fe.Value())
		}
		return fmt.Sprintf("messages.%v does not name an effect", fe.Value())
	case "stateeffect":
		return fmt.Sprintf("%s require an effect", field)
	case "statemomentary":
		return fmt.Sprintf("%s: momentary effect %q cannot have states", field, fe.Param())
	case "boundonce":
		return fmt.Sprintf("%s: effect %q already bound to button %q", field, fe.Value(), fe.Param())
	case "backgroundfor":
		return fmt.Sprintf("%s is required for effect %q", field, fe.Param())
	}
	return fe.Error()
}
