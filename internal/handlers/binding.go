package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

var registerOnce sync.Once

// RegisterValidators makes gin's validator report json field names and
// adds the notblank tag. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
	})
}

// bindError reports a body that could not be decoded or failed its
// binding rules. Only the first failing field is reported.
func bindError(c *gin.Context, err error) {
	var ve *httperr.ValidationError
	if errors.As(err, &ve) {
		httperr.BadRequest(c, codeInvalidRequest, ve.Error())
		return
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		httperr.BadRequest(c, codeInvalidRequest, fe.Field()+": "+describe(fe))
		return
	}

	httperr.BadRequest(c, codeInvalidRequest, "Malformed request body")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "must be zero or greater"
		}
		return "must be " + fe.Param() + " or greater"
	default:
		return "is invalid"
	}
}
