package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"git.appkode.ru/pub/go/failure"

	"numconv/internal/domain/entity"
	"numconv/internal/domain/service/converter"
	"numconv/internal/domain/value"
	"numconv/pkg/errcodes"
	"numconv/pkg/httpx/reply"
	"numconv/pkg/httpx/req"
	"numconv/pkg/logx"
	"numconv/pkg/rest"
)

const statusMessage = "Number-Word Converter API is working!"

type converterService interface {
	Convert(ctx context.Context, input string, direction value.Direction) (entity.Conversion, error)
	History(ctx context.Context, limit int) ([]entity.Conversion, error)
}

type currencyService interface {
	Currencies(ctx context.Context) ([]entity.Currency, error)
}

type ConverterServer struct {
	converterService converterService
	currencyService  currencyService
	version          string
}

func NewConverterServer(
	converterService converterService,
	currencyService currencyService,
	version string,
) ConverterServer {
	return ConverterServer{
		converterService: converterService,
		currencyService:  currencyService,
		version:          version,
	}
}

func (s ConverterServer) postAPIConvert(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ConvertRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	direction, err := value.ParseDirection(request.ConversionType)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("value.ParseDirection: %w", err),
			failure.WithCode(errcodes.InvalidConversionType),
		)
	}

	conversion, err := s.converterService.Convert(ctx, request.Input, direction)
	if err != nil {
		return fmt.Errorf("converterService.Convert: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.ConvertResponse{
		Success: true,
		Data:    newRESTConversion(conversion),
		Message: "Conversion completed successfully",
	})

	return nil
}

func (s ConverterServer) getAPICurrencies(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	currencies, err := s.currencyService.Currencies(ctx)
	if err != nil {
		logger(ctx).Warn("currencyService.Currencies", logx.Error(err))

		reply.JSON(ctx, w, http.StatusServiceUnavailable, rest.Error{
			Code:      rest.ErrorCode(errcodes.CurrencyUnavailable),
			Message:   "Could not get currencies list",
			SupportID: reply.SupportID(ctx),
		})

		return nil
	}

	reply.JSON(ctx, w, http.StatusOK, rest.CurrenciesResponse{
		Success: true,
		Data:    newRESTCurrencies(currencies),
	})

	return nil
}

func (s ConverterServer) getAPIHistory(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit := converter.DefaultHistoryLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("strconv.Atoi: %w", err),
				failure.WithCode(errcodes.InvalidLimit),
				failure.WithDescription("limit must be a number"),
			)
		}

		limit = parsed
	}

	conversions, err := s.converterService.History(ctx, limit)
	if err != nil {
		return fmt.Errorf("converterService.History: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.HistoryResponse{
		Success: true,
		Data:    newRESTConversions(conversions),
	})

	return nil
}

func (s ConverterServer) getTest(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.Status{
		Message:   statusMessage,
		Timestamp: time.Now().UTC(),
		Version:   s.version,
	})

	return nil
}
