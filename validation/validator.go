package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	leads "github.com/gettupp/backoffice/leads/domain"
	tiers "github.com/gettupp/backoffice/tiers/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

var customValidations = map[string]validator.Func{
	"tier": func(fl validator.FieldLevel) bool {
		return tiers.Tier(fl.Field().String()).IsValid()
	},
	"phone": func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	},
	"leadstatus": func(fl validator.FieldLevel) bool {
		return leads.LeadStatus(fl.Field().String()).IsValid()
	},
}

func init() {
	RegisterBindingValidations()
}

// RegisterBindingValidations makes the custom tags available to gin request binding.
func RegisterBindingValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustom(v)
	}
}

func registerCustom(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonFieldName)

	for tag, fn := range customValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %s: %s", tag, err))
		}
	}
}

// Validator returns the shared validator with the custom tags registered. It
// reads `validate` struct tags, used for payloads that are not request bodies.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		registerCustom(validate)
	})

	return validate
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}

	return name
}

// BindingError converts request binding failures into FieldErrors, leaving
// other decoding errors untouched.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return ToFieldErrors(verrs)
	}

	return err
}

// Struct validates v and reports the failures as FieldErrors.
func Struct(v interface{}) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	return ToFieldErrors(verrs)
}

// ToFieldErrors turns validator failures into readable per-field messages.
func ToFieldErrors(verrs validator.ValidationErrors) FieldErrors {
	errs := FieldErrors{}

	for _, fe := range verrs {
		errs[fe.Field()] = fieldMessage(fe)
	}

	return errs
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Valid email is required"
	case "phone":
		return "Invalid phone number format"
	case "tier":
		return tiers.ErrInvalidTier.Error()
	case "leadstatus":
		return leads.ErrInvalidStatus.Error()
	case "oneof":
		return fmt.Sprintf("Invalid %s. Must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
