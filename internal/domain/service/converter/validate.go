package converter

import (
	"errors"
	"regexp"
	"strings"

	"numconv/internal/domain/service/numword"
	"numconv/internal/domain/value"
)

const (
	msgLettersInNumber  = `For number to words conversion, please enter only numbers (like 123, not "one two three")`
	msgNumberCharacters = "Please use only numbers and minus sign. No special characters allowed."
	msgNotANumber       = "This doesn't look like a valid number. Try something like: 123 or 1000"
	msgDecimal          = "Sorry, decimal numbers are not supported yet. Please enter whole numbers only."
	msgNumberTooBig     = "Number is too big! Please enter a number between -999,999,999,999 and 999,999,999,999"
	msgDigitsInWords    = `For words to number conversion, please enter words like "twenty five" instead of numbers like "25"`
	msgEmptyWords       = `Please enter some words like "twenty five" or "one hundred"`
	msgWordCharacters   = `Please use only letters, spaces, and hyphens. Example: "twenty-one" or "one hundred"`
	msgWordsTooShort    = `Please enter complete words like "ten" or "fifty"`
	msgNotUnderstood    = `I couldn't understand some of those words. Please use words like "one", "twenty", "hundred", etc.`
	msgNotConvertible   = `I couldn't convert those words to a number. Please try using standard number words like "twenty five" or "one hundred"`
	msgInputTooLong     = "Input is too long. Please keep it under 1000 characters."
)

const (
	minWordsInputLength = 2
	maxInputRunes       = 1000
)

//nolint:gochecknoglobals
var (
	lettersRe         = regexp.MustCompile(`[a-zA-Z]`)
	numberForbiddenRe = regexp.MustCompile(`[^0-9\s\-+.,]`)
	numericOnlyRe     = regexp.MustCompile(`^[\d\s\-+.,]+$`)
	wordsForbiddenRe  = regexp.MustCompile(`[^\w\s\-]`)
	numericRe         = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
)

// ValidateInput returns every rule the input breaks for the direction, in
// the order a user should read them. An empty result means the input may be
// converted.
func ValidateInput(input string, direction value.Direction) []string {
	input = strings.TrimSpace(input)

	var problems []string

	if len([]rune(input)) > maxInputRunes {
		problems = append(problems, msgInputTooLong)
	}

	switch direction {
	case value.NumberToWords:
		problems = append(problems, validateNumberInput(input)...)
	case value.WordsToNumber:
		problems = append(problems, validateWordsInput(input)...)
	}

	return problems
}

func validateNumberInput(input string) []string {
	var problems []string

	if lettersRe.MatchString(input) {
		problems = append(problems, msgLettersInNumber)
	}

	if numberForbiddenRe.MatchString(input) {
		problems = append(problems, msgNumberCharacters)
	}

	cleaned := strings.NewReplacer(" ", "", ",", "").Replace(input)
	numeric := numericRe.MatchString(cleaned)

	if !numeric {
		problems = append(problems, msgNotANumber)
	}

	if strings.Contains(cleaned, ".") {
		problems = append(problems, msgDecimal)
	}

	if numeric && !strings.Contains(cleaned, ".") {
		if _, err := numword.ParseNumber(cleaned); errors.Is(err, numword.ErrOutOfRange) {
			problems = append(problems, msgNumberTooBig)
		}
	}

	return problems
}

func validateWordsInput(input string) []string {
	var problems []string

	if numericOnlyRe.MatchString(input) {
		problems = append(problems, msgDigitsInWords)
	}

	if input == "" {
		problems = append(problems, msgEmptyWords)
	}

	if wordsForbiddenRe.MatchString(input) {
		problems = append(problems, msgWordCharacters)
	}

	if len(input) < minWordsInputLength {
		problems = append(problems, msgWordsTooShort)
	}

	return problems
}

//nolint:gochecknoglobals
var zeroSynonyms = map[string]struct{}{
	"zero":    {},
	"nothing": {},
	"none":    {},
	"null":    {},
	"empty":   {},
}

// saysZero reports whether the user spelled out nothing but zero.
func saysZero(input string) bool {
	_, ok := zeroSynonyms[strings.ToLower(strings.TrimSpace(input))]
	return ok
}
