package rates

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/clients/exchangerates"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/logger"
)

const amountPlaces = 2

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrUnknownCurrency = errors.New("no rate found")
	ErrTransport       = errors.New("rate service unreachable")
	ErrBusy            = errors.New("conversion already in progress")
)

type ratesProvider interface {
	GetLatestRates(ctx context.Context, accessKey string) (currency.Table, error)
}

type rateCache interface {
	Save(ctx context.Context, table currency.Table) error
	Load(ctx context.Context) (currency.Table, error)
}

type config interface {
	HomeCurrency() string
}

// Converter turns foreign amounts into the home currency. It admits a single
// request at a time, the way the save button is disabled while one is pending.
type Converter struct {
	provider ratesProvider
	cache    rateCache
	home     string

	inFlight atomic.Bool
	status   atomic.Int32
}

func NewConverter(config config, provider ratesProvider, cache rateCache) *Converter {
	return &Converter{
		provider: provider,
		cache:    cache,
		home:     currency.Normalize(config.HomeCurrency()),
	}
}

func (c *Converter) HomeCurrency() string {
	return c.home
}

// Status reports the state of the latest request.
func (c *Converter) Status() Status {
	return Status(c.status.Load())
}

// Convert parses raw, which must be a positive decimal, and expresses it in
// the home currency. Failures are reported in the Result, never as a panic.
func (c *Converter) Convert(ctx context.Context, raw, code, accessKey string) (res Result) {
	logger.Info("Convert - start", zap.String("currency", code))
	defer func() {
		observeConversion(res)
		logger.Info("Convert - end", zap.Stringer("status", res.Status))
	}()

	amount, err := ParseAmount(raw)
	if err != nil {
		// an in-flight request owns the status
		if !c.inFlight.Load() {
			c.status.Store(int32(Failed))
		}
		return failed(err)
	}

	code = currency.Normalize(code)
	if code == "" || code == c.home {
		c.status.Store(int32(Succeeded))
		return succeeded(amount, false)
	}

	if !c.inFlight.CompareAndSwap(false, true) {
		return failed(ErrBusy)
	}
	defer c.inFlight.Store(false)

	c.status.Store(int32(Requesting))
	res = c.convertRemote(ctx, amount, code, accessKey)
	c.status.Store(int32(res.Status))
	return res
}

func (c *Converter) convertRemote(ctx context.Context, amount decimal.Decimal, code, accessKey string) Result {
	span, ctx := opentracing.StartSpanFromContext(ctx, "convert")
	defer span.Finish()
	span.SetTag("currency", code)

	table, err := c.fetchRebased(ctx, accessKey)
	if err != nil {
		ext.Error.Set(span, true)
		if !errors.Is(err, ErrTransport) {
			return failed(err)
		}
		return c.convertCached(ctx, amount, code, err)
	}

	rate, ok := table[code]
	if !ok {
		ext.Error.Set(span, true)
		return failed(unknownCurrency(code))
	}
	return succeeded(amount.Mul(decimal.NewFromFloat(rate)), false)
}

func (c *Converter) fetchRebased(ctx context.Context, accessKey string) (currency.Table, error) {
	table, err := c.provider.GetLatestRates(ctx, accessKey)
	if err != nil {
		var apiErr *exchangerates.APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		logger.Error("rate fetch failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	rebased, err := table.Rebase(c.home)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCurrency, err)
	}

	if err = c.cache.Save(ctx, rebased); err != nil {
		// the conversion itself succeeded, only the fallback is stale
		logger.Error("failed to cache rates", zap.Error(err))
	}
	return rebased, nil
}

func (c *Converter) convertCached(ctx context.Context, amount decimal.Decimal, code string, cause error) Result {
	table, err := c.cache.Load(ctx)
	if err != nil {
		logger.Warn("no cached rates to fall back to", zap.Error(err))
		return failed(cause)
	}
	rate, ok := table[code]
	if !ok {
		return failed(cause)
	}
	logger.Info("converted with cached rates", zap.String("currency", code))
	return succeeded(amount.Mul(decimal.NewFromFloat(rate)), true)
}

// ParseAmount accepts a positive decimal with surrounding blanks.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errors.Wrap(ErrInvalidAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, errors.Wrap(ErrInvalidAmount, raw)
	}
	return amount, nil
}

func unknownCurrency(code string) error {
	return fmt.Errorf("%w for %s", ErrUnknownCurrency, code)
}
