package logx

const (
	FieldAppName         = "app-name"
	FieldAppVersion      = "app-version"
	FieldConversionType  = "conversion-type"
	FieldCurrencyPair    = "currency-pair"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldErrorCode       = "error-code"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldProvider        = "provider"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseBytes   = "response-bytes"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldStack           = "stack"
	FieldTaskType        = "task-type"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
