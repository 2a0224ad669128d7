package req

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"numconv/pkg/errcodes"
)

// MaxBodyBytes bounds JSON request bodies; conversion inputs are short.
const MaxBodyBytes = 64 << 10

var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	validate = newValidator()                               //nolint:gochecknoglobals // skip
)

// Field errors are reported under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// Read decodes a JSON body into dest and validates it.
func Read(r *http.Request, dest any) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes)).Decode(dest); err != nil {
		return failure.NewInvalidArgumentError(
			fmt.Errorf("json.Decode: %w", err).Error(),
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription("Invalid JSON"),
		)
	}

	return Validate(r.Context(), dest)
}

// Validate checks the `validate` struct tags of dest.
func Validate(ctx context.Context, dest any) error {
	err := validate.StructCtx(ctx, dest)
	if err == nil {
		return nil
	}

	description := err.Error()

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		description = strings.Join(lo.Map(fieldErrs, func(fe validator.FieldError, _ int) string {
			return describe(fe)
		}), "; ")
	}

	return failure.NewInvalidArgumentError(
		"validation error: "+err.Error(),
		failure.WithCode(errcodes.ValidationError),
		failure.WithDescription(description),
	)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	default:
		return fe.Field() + " failed " + fe.Tag()
	}
}
