package logx

import (
	"regexp"
	"slices"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

// Keys masked by every SensitiveDataMasker, wherever they appear as a query
// or form parameter, a header or a JSON field.
var sensitiveKeys = []string{"apiKey", "password"} //nolint:gochecknoglobals

const masked = "${1}[MASKED]${2}"

type SensitiveDataMasker struct {
	patterns []*regexp.Regexp
}

// NewSensitiveDataMasker masks the default keys plus extraKeys
// (case-insensitively).
func NewSensitiveDataMasker(extraKeys ...string) SensitiveDataMasker {
	keys := append(slices.Clone(sensitiveKeys), extraKeys...)

	patterns := []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Authorization: \w+ )[^\r\n]+()`),
		regexp.MustCompile(`(?i)(X-Api-Key: )[^\r\n]+()`),
	}

	for _, key := range keys {
		k := regexp.QuoteMeta(key)

		patterns = append(patterns,
			regexp.MustCompile(`(?im)((?:^|[?&])`+k+`=)[^&\s]+()`),
			regexp.MustCompile(`(?i)("`+k+`":\s?")[^"]*(")`),
		)
	}

	return SensitiveDataMasker{patterns: patterns}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range s.patterns {
		input = pattern.ReplaceAll(input, []byte(masked))
	}

	return input
}

type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
