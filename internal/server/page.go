package server

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"git.appkode.ru/pub/go/failure"

	"numconv/internal/domain/service/converter"
	"numconv/internal/domain/value"
	"numconv/pkg/httpx/reply"
	"numconv/pkg/logx"
	"numconv/pkg/rest"
)

const (
	pageTemplate = "index"

	msgInvalidType = "The selected conversion type is invalid."
	msgFixErrors   = "Please fix the errors below and try again."
)

//go:embed templates/*.html
var templates embed.FS

type pageData struct {
	Input          string
	ConversionType string
	Error          string
	Errors         []string
	Result         *rest.Conversion
	Version        string
}

// PageServer renders the HTML form of the converter.
type PageServer struct {
	converterService converterService
	tmpl             *template.Template
	version          string
}

func NewPageServer(converterService converterService, version string) (PageServer, error) {
	tmpl, err := template.ParseFS(templates, "templates/*.html")
	if err != nil {
		return PageServer{}, fmt.Errorf("template.ParseFS: %w", err)
	}

	return PageServer{
		converterService: converterService,
		tmpl:             tmpl,
		version:          version,
	}, nil
}

func (s PageServer) getIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageData{ConversionType: value.NumberToWords.String()})
}

func (s PageServer) postConvert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := pageData{
		Input:          r.PostFormValue("input"),
		ConversionType: r.PostFormValue("conversion_type"),
	}

	direction, err := value.ParseDirection(data.ConversionType)
	if err != nil {
		data.Errors = append(data.Errors, msgInvalidType)
	} else {
		data.Errors = append(data.Errors, converter.ValidateInput(data.Input, direction)...)
	}

	if len(data.Errors) > 0 {
		data.Error = msgFixErrors
		s.render(w, r, http.StatusUnprocessableEntity, data)

		return
	}

	conversion, err := s.converterService.Convert(ctx, data.Input, direction)
	if err != nil {
		status := http.StatusInternalServerError
		data.Error = "Something went wrong. Support ID: " + reply.SupportID(ctx)

		if failure.IsInvalidArgumentError(err) {
			status = http.StatusBadRequest
			data.Error = "Something went wrong: " + failure.Description(err)
		} else {
			logger(ctx).Error("converterService.Convert", logx.Error(err))
		}

		s.render(w, r, status, data)

		return
	}

	result := newRESTConversion(conversion)
	data.Result = &result

	s.render(w, r, http.StatusOK, data)
}

func (s PageServer) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.Version = s.version
	reply.HTML(r.Context(), w, status, s.tmpl, pageTemplate, data)
}
