package rates

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/expense-tracker/internal/clients/exchangerates"
)

type Status int32

const (
	Idle Status = iota
	Requesting
	Succeeded
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Requesting:
		return "requesting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result is the terminal state of one conversion. Amount holds the home
// currency value with two decimals when Status is Succeeded.
type Result struct {
	Status    Status
	Amount    string
	Value     decimal.Decimal
	FromCache bool
	Err       error
}

func succeeded(v decimal.Decimal, fromCache bool) Result {
	v = v.Round(amountPlaces)
	return Result{
		Status:    Succeeded,
		Amount:    v.StringFixed(amountPlaces),
		Value:     v,
		FromCache: fromCache,
	}
}

func failed(err error) Result {
	return Result{Status: Failed, Err: err}
}

// Float is the converted value as stored on an expense.
func (r Result) Float() float64 {
	f, _ := r.Value.Float64()
	return f
}

// Reason is the text shown next to the save control on failure.
func (r Result) Reason() string {
	if r.Status != Failed || r.Err == nil {
		return ""
	}
	var apiErr *exchangerates.APIError
	switch {
	case errors.Is(r.Err, ErrInvalidAmount):
		return "Invalid amount"
	case errors.Is(r.Err, ErrBusy):
		return "A conversion is already in progress"
	case errors.As(r.Err, &apiErr):
		if apiErr.Info != "" {
			return "API error: " + apiErr.Info
		}
		return "API error: " + apiErr.Type
	case errors.Is(r.Err, ErrUnknownCurrency):
		return "No rate found" + strings.TrimPrefix(r.Err.Error(), ErrUnknownCurrency.Error())
	default:
		return "Currency conversion failed. Please check your network or API key."
	}
}
