package server_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/service/converter"
	"numconv/internal/server"
	"numconv/pkg/errcodes"
	"numconv/pkg/middlewarex"
	"numconv/pkg/rest"
	"numconv/pkg/tests"
)

type nopMetrics struct{}

func (nopMetrics) ConversionDone(string, string) {}

type fakeCurrencies struct {
	err error
}

func (f fakeCurrencies) Currencies(context.Context) ([]entity.Currency, error) {
	if f.err != nil {
		return nil, f.err
	}

	return []entity.Currency{
		{ID: "PHP", Name: "Philippine Peso", Symbol: "₱"},
		{ID: "USD", Name: "United States Dollar", Symbol: "$"},
	}, nil
}

func newTestServer(t *testing.T, currencies fakeCurrencies) *httptest.Server {
	t.Helper()

	service := converter.NewService(nil, nopMetrics{})

	pageServer, err := server.NewPageServer(service, "test")
	require.NoError(t, err)

	srv := server.NewServer(
		server.NewConverterServer(service, currencies, "test"),
		pageServer,
	)

	r := chi.NewRouter()
	r.Use(middlewarex.TraceID, middlewarex.Logger, middlewarex.Recovery)
	srv.RegisterRoutes(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return ts
}

func TestAPIConvert(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(t, fakeCurrencies{})
	client := tests.NewAPIClient(ts.URL, ts.Client())

	testCases := []struct {
		name      string
		request   rest.ConvertRequest
		status    int
		converted string
		code      string
	}{
		{
			name:      "Number to words",
			request:   rest.ConvertRequest{Input: "390", ConversionType: "number_to_words"},
			status:    http.StatusOK,
			converted: "three hundred and ninety",
		},
		{
			name:      "Words to number",
			request:   rest.ConvertRequest{Input: "onehundred and ten", ConversionType: "words_to_number"},
			status:    http.StatusOK,
			converted: "110",
		},
		{
			name:    "Missing input",
			request: rest.ConvertRequest{ConversionType: "words_to_number"},
			status:  http.StatusBadRequest,
			code:    errcodes.ValidationError.String(),
		},
		{
			name:    "Unknown conversion type",
			request: rest.ConvertRequest{Input: "12", ConversionType: "roman"},
			status:  http.StatusBadRequest,
			code:    errcodes.ValidationError.String(),
		},
		{
			name:    "Unknown word",
			request: rest.ConvertRequest{Input: "twenty foo", ConversionType: "words_to_number"},
			status:  http.StatusBadRequest,
			code:    errcodes.UnrecognizedWord.String(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var (
				response rest.ConvertResponse
				apiErr   rest.Error
			)

			resp, err := client.Post(ctx, "/api/convert", nil, tc.request, &response, &apiErr)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			if tc.status != http.StatusOK {
				rq.False(apiErr.Success)
				rq.Equal(tc.code, string(apiErr.Code))
				rq.NotEmpty(apiErr.Message)
				rq.NotEmpty(apiErr.SupportID)

				return
			}

			rq.True(response.Success)
			rq.Equal(tc.converted, response.Data.Converted)
			rq.Equal(tc.request.ConversionType, response.Data.ConversionType)
			rq.Nil(response.Data.Currency)
		})
	}
}

func TestAPIConvert_InvalidJSON(t *testing.T) {
	rq := require.New(t)

	ts := newTestServer(t, fakeCurrencies{})

	var apiErr rest.Error

	resp, err := tests.NewAPIClient(ts.URL, ts.Client()).
		PostJSON(context.Background(), "/api/convert", nil, `{"input":`, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(errcodes.ValidationError.String(), string(apiErr.Code))
}

func TestAPICurrencies(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(t, fakeCurrencies{})

	var response rest.CurrenciesResponse

	resp, err := tests.NewAPIClient(ts.URL, ts.Client()).Get(ctx, "/api/currencies", nil, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(response.Success)
	rq.Len(response.Data, 2)
	rq.Equal("Philippine Peso", response.Data[0].Name)

	ts = newTestServer(t, fakeCurrencies{err: errors.New("upstream down")})

	var apiErr rest.Error

	resp, err = tests.NewAPIClient(ts.URL, ts.Client()).Get(ctx, "/api/currencies", nil, nil, &apiErr)
	rq.NoError(err)
	rq.Equal(http.StatusServiceUnavailable, resp.StatusCode)
	rq.Equal(errcodes.CurrencyUnavailable.String(), string(apiErr.Code))
}

func TestAPIHistory(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	ts := newTestServer(t, fakeCurrencies{})
	client := tests.NewAPIClient(ts.URL, ts.Client())

	var response rest.HistoryResponse

	resp, err := client.Get(ctx, "/api/history?limit=5", nil, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.True(response.Success)
	rq.Empty(response.Data)

	for _, limit := range []string{"abc", "0", "1000"} {
		var apiErr rest.Error

		resp, err = client.Get(ctx, "/api/history?limit="+limit, nil, nil, &apiErr)
		rq.NoError(err)
		rq.Equal(http.StatusBadRequest, resp.StatusCode)
		rq.Equal(errcodes.InvalidLimit.String(), string(apiErr.Code))
	}
}

func TestStatus(t *testing.T) {
	rq := require.New(t)

	ts := newTestServer(t, fakeCurrencies{})

	var status rest.Status

	resp, err := tests.NewAPIClient(ts.URL, ts.Client()).Get(context.Background(), "/test", nil, &status, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Number-Word Converter API is working!", status.Message)
	rq.Equal("test", status.Version)
	rq.False(status.Timestamp.IsZero())
}

func TestPage(t *testing.T) {
	rq := require.New(t)

	ctx := context.Background()

	ts := newTestServer(t, fakeCurrencies{})
	client := tests.NewAPIClient(ts.URL, ts.Client()).WithLog(t)

	resp, body, err := client.Page(ctx, "/", nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Contains(body, `<form method="POST" action="/convert">`)
	rq.Contains(body, `value="number_to_words" selected`)

	testCases := []struct {
		name     string
		form     url.Values
		status   int
		contains []string
	}{
		{
			name:     "Converted",
			form:     url.Values{"input": {"1001"}, "conversion_type": {"number_to_words"}},
			status:   http.StatusOK,
			contains: []string{"one thousand one", `value="1001"`},
		},
		{
			name:     "Validation errors",
			form:     url.Values{"input": {"12.5"}, "conversion_type": {"number_to_words"}},
			status:   http.StatusUnprocessableEntity,
			contains: []string{"Please fix the errors below and try again.", "decimal numbers are not supported"},
		},
		{
			name:     "Invalid type",
			form:     url.Values{"input": {"12"}, "conversion_type": {"roman"}},
			status:   http.StatusUnprocessableEntity,
			contains: []string{"The selected conversion type is invalid."},
		},
		{
			name:     "Conversion error",
			form:     url.Values{"input": {"twenty foo"}, "conversion_type": {"words_to_number"}},
			status:   http.StatusBadRequest,
			contains: []string{"Something went wrong: ", `value="words_to_number" selected`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			resp, body, err := client.Page(ctx, "/convert", tc.form)
			rq.NoError(err)
			rq.Equal(tc.status, resp.StatusCode)

			for _, s := range tc.contains {
				rq.Contains(body, s)
			}
		})
	}
}
