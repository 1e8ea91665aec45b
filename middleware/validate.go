package middleware

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/utils"
)

const bodyKey = "body"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report JSON names so clients can match errors to their form fields.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return utils.ValidPhone(fl.Field().String())
	})
	_ = v.RegisterValidation("experience", func(fl validator.FieldLevel) bool {
		for _, b := range models.ExperienceBrackets {
			if fl.Field().String() == b {
				return true
			}
		}
		return false
	})
	_ = v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return utils.ValidClock(fl.Field().String())
	})
	return v
}

// ValidateBody parses the JSON body into T and validates it. Handlers fetch
// the result with Body.
func ValidateBody[T any]() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(T)
		if err := c.BodyParser(body); err != nil {
			return utils.Fail(c, fiber.StatusBadRequest, "Cannot parse request body")
		}
		if errs := ValidateStruct(body); len(errs) > 0 {
			return utils.Fail(c, fiber.StatusBadRequest, "Validation failed", errs...)
		}
		c.Locals(bodyKey, body)
		return c.Next()
	}
}

func Body[T any](c *fiber.Ctx) *T {
	body, _ := c.Locals(bodyKey).(*T)
	return body
}

// ValidateStruct returns one FieldError per failed rule.
func ValidateStruct(s any) []utils.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []utils.FieldError{{Field: "body", Message: err.Error()}}
	}

	out := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, utils.FieldError{
			Field:   fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldPath drops the struct name: "RegisterRequest.skills[0]" -> "skills[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must be a valid 10-digit mobile number"
	case "experience":
		return "must be one of " + strings.Join(models.ExperienceBrackets, ", ")
	case "clock":
		return "must be a time in HH:MM format"
	case "uuid":
		return "must be a valid id"
	case "url":
		return "must be a valid URL"
	case "numeric":
		return "must contain only digits"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return "must be at least " + fe.Param()
	}
	return "is invalid"
}
