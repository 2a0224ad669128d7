package converter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"numconv/internal/domain"
	"numconv/internal/domain/entity"
	"numconv/internal/domain/service/numword"
	"numconv/internal/domain/value"
	"numconv/pkg/contextx"
	"numconv/pkg/errcodes"
	"numconv/pkg/logx"
	"numconv/pkg/metrics"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type RateLookup interface {
	LookupRate(ctx context.Context, amount decimal.Decimal) (*entity.RateResult, error)
}

type HistoryRepository interface {
	Save(ctx context.Context, conversion *entity.Conversion) error
	List(ctx context.Context, limit int) ([]entity.Conversion, error)
}

type Metrics interface {
	ConversionDone(direction, status string)
}

type Service struct {
	rates   RateLookup
	history HistoryRepository
	metrics Metrics
	printer *message.Printer
	now     func() time.Time
}

func NewService(rates RateLookup, metrics Metrics) *Service {
	return &Service{
		rates:   rates,
		metrics: metrics,
		printer: message.NewPrinter(language.English),
		now:     time.Now,
	}
}

// WithHistory makes the service record every successful conversion.
func (s *Service) WithHistory(history HistoryRepository) *Service {
	s.history = history
	return s
}

// Convert validates the input, converts it in the requested direction and
// annotates the result with the USD value of the amount. A failed rate
// lookup does not fail the conversion.
func (s *Service) Convert(ctx context.Context, input string, direction value.Direction) (entity.Conversion, error) {
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldConversionType, direction.String())))

	conversion, err := s.convert(ctx, input, direction)
	if err != nil {
		s.metrics.ConversionDone(direction.String(), metrics.StatusFailure)
		return entity.Conversion{}, err
	}

	s.metrics.ConversionDone(direction.String(), metrics.StatusSuccess)

	if s.history != nil {
		if err := s.history.Save(ctx, &conversion); err != nil {
			code, _ := domain.CodeOf(err)
			logger(ctx).Warn("history save failed", logx.Error(err), slog.String(logx.FieldErrorCode, string(code)))
		}
	}

	return conversion, nil
}

func (s *Service) convert(ctx context.Context, input string, direction value.Direction) (entity.Conversion, error) {
	if _, err := value.ParseDirection(direction.String()); err != nil {
		return entity.Conversion{}, failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.InvalidConversionType),
			failure.WithDescription("Please choose number_to_words or words_to_number"),
		)
	}

	if problems := ValidateInput(input, direction); len(problems) > 0 {
		return entity.Conversion{}, failure.NewInvalidArgumentError(
			"input validation failed",
			failure.WithCode(errcodes.ValidationError),
			failure.WithDescription(strings.Join(problems, " ")),
		)
	}

	input = strings.TrimSpace(input)

	conversion := entity.Conversion{
		Input:     input,
		Direction: direction,
		CreatedAt: s.now().UTC(),
	}

	if ip, err := contextx.ClientIPFromContext(ctx); err == nil {
		conversion.ClientIP = ip.String()
	}

	switch direction {
	case value.NumberToWords:
		n, err := numword.ParseNumber(input)
		if err != nil {
			return entity.Conversion{}, numberError(err)
		}

		words, err := numword.ToWords(n)
		if err != nil {
			return entity.Conversion{}, numberError(err)
		}

		conversion.Number = n
		conversion.Converted = words
	case value.WordsToNumber:
		n, err := s.wordsToNumber(input)
		if err != nil {
			return entity.Conversion{}, err
		}

		conversion.Number = n
		conversion.Converted = s.printer.Sprintf("%d", n)
	}

	conversion.Amount = decimal.NewFromInt(conversion.Number).Abs()

	if conversion.Amount.IsPositive() && s.rates != nil {
		conversion.Rate = s.lookupRate(ctx, conversion.Amount)
	}

	return conversion, nil
}

func (s *Service) wordsToNumber(input string) (int64, error) {
	if saysZero(input) {
		return 0, nil
	}

	n, err := numword.ToNumber(input)
	if err != nil {
		return 0, numberError(err)
	}

	if n == 0 {
		return 0, failure.NewInvalidArgumentError(
			fmt.Sprintf("%q converts to zero", input),
			failure.WithCode(errcodes.UnconvertibleWords),
			failure.WithDescription(msgNotConvertible),
		)
	}

	return n, nil
}

func (s *Service) lookupRate(ctx context.Context, amount decimal.Decimal) *entity.RateResult {
	rate, err := s.rates.LookupRate(ctx, amount)
	if err != nil {
		logger(ctx).Warn("rate lookup failed", logx.Error(err))

		return entity.FailedRate(entity.BaseCurrency, entity.QuoteCurrency, amount,
			"Currency conversion not available right now: "+err.Error())
	}

	if rate == nil {
		return entity.FailedRate(entity.BaseCurrency, entity.QuoteCurrency, amount,
			"Currency conversion not available right now")
	}

	return rate
}

// History returns the most recent conversions, newest first. Without a
// history repository the list is always empty.
func (s *Service) History(ctx context.Context, limit int) ([]entity.Conversion, error) {
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, failure.NewInvalidArgumentError(
			fmt.Sprintf("limit %d out of [1, %d]", limit, MaxHistoryLimit),
			failure.WithCode(errcodes.InvalidLimit),
			failure.WithDescription(fmt.Sprintf("limit must be between 1 and %d", MaxHistoryLimit)),
		)
	}

	if s.history == nil {
		return []entity.Conversion{}, nil
	}

	conversions, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("history.List: %w", err)
	}

	return conversions, nil
}

func numberError(err error) error {
	var wordErr *numword.UnrecognizedWordError

	switch {
	case errors.As(err, &wordErr):
		return failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.UnrecognizedWord),
			failure.WithDescription(msgNotUnderstood+" Error: "+wordErr.Error()),
		)
	case errors.Is(err, numword.ErrOutOfRange):
		return failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.NumberOutOfRange),
			failure.WithDescription(msgNumberTooBig),
		)
	case errors.Is(err, numword.ErrInvalidInput):
		return failure.NewInvalidArgumentError(
			err.Error(),
			failure.WithCode(errcodes.InvalidNumber),
			failure.WithDescription(msgNotANumber),
		)
	default:
		return fmt.Errorf("numword: %w", err)
	}
}
