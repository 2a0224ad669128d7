package server

import "numconv/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server объединяет HTTP-серверы отдельных частей приложения: JSON API и
// HTML-страницу конвертера.
type Server struct {
	ConverterServer
	PageServer
}

func NewServer(
	converterServer ConverterServer,
	pageServer PageServer,
) Server {
	return Server{
		ConverterServer: converterServer,
		PageServer:      pageServer,
	}
}
