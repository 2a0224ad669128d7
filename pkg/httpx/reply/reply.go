package reply

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"git.appkode.ru/pub/go/failure"
	jsoniter "github.com/json-iterator/go"

	"numconv/pkg/contextx"
	"numconv/pkg/errcodes"
	"numconv/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Success   bool   `json:"success"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// HTML renders the named template of tmpl.
func HTML(ctx context.Context, w http.ResponseWriter, statusCode int, tmpl *template.Template, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		logger(ctx).Error("template.ExecuteTemplate", logx.Error(err))
	}
}

// errorClass maps a failure kind to its HTTP answer. The first matching class
// wins; anything unmatched is an internal error.
type errorClass struct {
	match   func(error) bool
	status  int
	code    failure.ErrorCode
	message string
	level   slog.Level
}

//nolint:gochecknoglobals
var errorClasses = []errorClass{
	{failure.IsInvalidArgumentError, http.StatusBadRequest, errcodes.ValidationError, "Invalid request", slog.LevelWarn},
	{failure.IsNotFoundError, http.StatusNotFound, errcodes.NotFound, "Not found", slog.LevelWarn},
	{failure.IsForbiddenError, http.StatusForbidden, errcodes.Forbidden, "Forbidden", slog.LevelWarn},
	{failure.IsUnprocessableEntityError, http.StatusUnprocessableEntity, "", "", slog.LevelWarn},
	{isTimeout, http.StatusGatewayTimeout, errcodes.TimeoutExceeded, "The request took too long, please try again", slog.LevelError},
}

var internalError = errorClass{ //nolint:gochecknoglobals
	status:  http.StatusInternalServerError,
	code:    errcodes.InternalServerError,
	message: "Something went wrong, please try again",
	level:   slog.LevelError,
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}

func classify(err error) errorClass {
	for _, c := range errorClasses {
		if c.match(err) {
			return c
		}
	}

	return internalError
}

func Error(ctx context.Context, w http.ResponseWriter, err error) {
	class := classify(err)

	response := errorResponse{
		Code:      failure.Code(err).String(),
		Message:   failure.Description(err),
		SupportID: SupportID(ctx),
	}

	if response.Code == "" {
		response.Code = class.code.String()
	}

	if response.Message == "" {
		response.Message = class.message
	}

	logger(ctx).Log(ctx, class.level, http.StatusText(class.status), logx.Error(err), slog.String(logx.FieldErrorCode, response.Code))

	JSON(ctx, w, class.status, response)
}

// SupportID is the trace id users can quote when reporting a problem.
func SupportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
