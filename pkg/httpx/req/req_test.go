package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"numconv/pkg/errcodes"
	"numconv/pkg/httpx/req"
)

type convertRequest struct {
	Input          string `json:"input"          validate:"required,max=10"`
	ConversionType string `json:"conversionType" validate:"required,oneof=number_to_words words_to_number"`
}

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name        string
		body        string
		expected    convertRequest
		description string
	}{
		{
			name:     "Valid",
			body:     `{"input":"390","conversionType":"number_to_words"}`,
			expected: convertRequest{Input: "390", ConversionType: "number_to_words"},
		},
		{
			name:        "Broken JSON",
			body:        `{"input":`,
			description: "Invalid JSON",
		},
		{
			name:        "Unknown conversion type",
			body:        `{"input":"390","conversionType":"sideways"}`,
			description: "conversionType must be one of: number_to_words, words_to_number",
		},
		{
			name:        "Input too long",
			body:        `{"input":"12345678901","conversionType":"number_to_words"}`,
			description: "input must be at most 10 characters",
		},
		{
			name:        "Both fields missing",
			body:        `{}`,
			description: "input is required; conversionType is required",
		},
		{
			name:        "Body over the limit",
			body:        `{"input":"` + strings.Repeat("9", req.MaxBodyBytes) + `","conversionType":"number_to_words"}`,
			description: "Invalid JSON",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(tc.body))

			var dest convertRequest

			err := req.Read(r, &dest)
			if tc.description == "" {
				rq.NoError(err)
				rq.Equal(tc.expected, dest)

				return
			}

			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))
			rq.Equal(tc.description, failure.Description(err))
		})
	}
}
