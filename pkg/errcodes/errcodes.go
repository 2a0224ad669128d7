package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	InvalidConversionType failure.ErrorCode = "InvalidConversionType"
	InvalidNumber         failure.ErrorCode = "InvalidNumber"
	NumberOutOfRange      failure.ErrorCode = "NumberOutOfRange"
	UnrecognizedWord      failure.ErrorCode = "UnrecognizedWord"
	UnconvertibleWords    failure.ErrorCode = "UnconvertibleWords"
	InvalidLimit          failure.ErrorCode = "InvalidLimit"
	CurrencyUnavailable   failure.ErrorCode = "CurrencyUnavailable"
)
