package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/cache"
	"max.ks1230/expense-tracker/internal/clients/exchangerates"
	"max.ks1230/expense-tracker/internal/entity/currency"
	"max.ks1230/expense-tracker/internal/model/rates/mock"
)

type testConfig string

func (c testConfig) HomeCurrency() string { return string(c) }

func eurTable() currency.Table {
	return currency.Table{"EUR": 1, "USD": 1.1, "INR": 90}
}

func Test_OnHomeCurrency_ShouldShortCircuit(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	conv := NewConverter(testConfig("INR"), provider, rc)
	res := conv.Convert(context.Background(), "50", "inr", "key")

	assert.Equal(t, Succeeded, res.Status)
	assert.Equal(t, "50.00", res.Amount)
	assert.Equal(t, 50.0, res.Float())
	assert.Equal(t, uint64(0), provider.GetLatestRatesBeforeCounter())
}

func Test_OnInvalidAmount_ShouldFailWithoutRequest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)
	conv := NewConverter(testConfig("INR"), provider, rc)

	for _, raw := range []string{"abc", "", "0", "-5", "1,5"} {
		res := conv.Convert(context.Background(), raw, "USD", "key")
		assert.Equal(t, Failed, res.Status, raw)
		assert.ErrorIs(t, res.Err, ErrInvalidAmount, raw)
		assert.Equal(t, "Invalid amount", res.Reason())
	}
	assert.Equal(t, uint64(0), provider.GetLatestRatesBeforeCounter())
	assert.Equal(t, Failed, conv.Status())
}

func Test_OnForeignCurrency_ShouldRebaseAndCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	provider.GetLatestRatesMock.Return(eurTable(), nil)
	rc.SaveMock.Return(nil)

	conv := NewConverter(testConfig("INR"), provider, rc)
	res := conv.Convert(context.Background(), " 10 ", "usd", "key")

	require.Equal(t, Succeeded, res.Status)
	assert.Equal(t, "818.18", res.Amount)
	assert.False(t, res.FromCache)
	assert.Equal(t, Succeeded, conv.Status())

	calls := rc.SaveMock.Calls()
	require.Len(t, calls, 1)
	saved := calls[0].Table()
	assert.Equal(t, 90.0, saved["EUR"])
	assert.Equal(t, 1.0, saved["INR"])
	assert.InDelta(t, 81.8181, saved["USD"], 0.0001)

	assert.Equal(t, "key", provider.GetLatestRatesMock.Calls()[0].AccessKey())

	res = conv.Convert(context.Background(), "ten", "usd", "key")
	assert.Equal(t, Failed, res.Status)
	assert.Equal(t, Failed, conv.Status())
}

func Test_OnCacheSaveFailure_ShouldStillSucceed(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	provider.GetLatestRatesMock.Return(eurTable(), nil)
	rc.SaveMock.Return(errors.New("disk full"))

	res := NewConverter(testConfig("INR"), provider, rc).Convert(context.Background(), "1", "EUR", "")
	assert.Equal(t, Succeeded, res.Status)
	assert.Equal(t, "90.00", res.Amount)
}

func Test_OnAPIError_ShouldFailWithoutFallback(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	provider.GetLatestRatesMock.Return(nil, &exchangerates.APIError{Code: 101, Type: "invalid_access_key", Info: "bad key"})

	conv := NewConverter(testConfig("INR"), provider, rc)
	res := conv.Convert(context.Background(), "10", "USD", "nope")

	assert.Equal(t, Failed, res.Status)
	assert.Equal(t, "API error: bad key", res.Reason())
	assert.Equal(t, uint64(0), rc.LoadBeforeCounter())
	assert.Equal(t, Failed, conv.Status())
}

func Test_OnUnknownCurrency_ShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	provider.GetLatestRatesMock.Return(eurTable(), nil)
	rc.SaveMock.Return(nil)

	res := NewConverter(testConfig("INR"), provider, rc).Convert(context.Background(), "10", "XYZ", "key")
	assert.ErrorIs(t, res.Err, ErrUnknownCurrency)
	assert.Equal(t, "No rate found for XYZ", res.Reason())
}

func Test_OnTransportFailure_ShouldFallBackToCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	provider.GetLatestRatesMock.Return(nil, errors.New("dial tcp: timeout"))
	rc.LoadMock.Return(currency.Table{"USD": 83}, nil)

	res := NewConverter(testConfig("INR"), provider, rc).Convert(context.Background(), "2.5", "USD", "key")
	assert.Equal(t, Succeeded, res.Status)
	assert.True(t, res.FromCache)
	assert.Equal(t, "207.50", res.Amount)
}

func Test_OnTransportFailureWithoutCache_ShouldFail(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	provider.GetLatestRatesMock.Return(nil, errors.New("connection refused"))
	rc.LoadMock.Return(nil, cache.ErrMiss)

	res := NewConverter(testConfig("INR"), provider, rc).Convert(context.Background(), "2.5", "USD", "key")
	assert.Equal(t, Failed, res.Status)
	assert.ErrorIs(t, res.Err, ErrTransport)
	assert.Equal(t, "Currency conversion failed. Please check your network or API key.", res.Reason())
}

func Test_OnConcurrentRequest_ShouldRejectAsBusy(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	provider := mock.NewRatesProviderMock(m)
	rc := mock.NewRateCacheMock(m)

	started := make(chan struct{})
	release := make(chan struct{})
	provider.GetLatestRatesMock.Set(func(ctx context.Context, accessKey string) (currency.Table, error) {
		close(started)
		<-release
		return eurTable(), nil
	})
	rc.SaveMock.Return(nil)

	conv := NewConverter(testConfig("INR"), provider, rc)
	done := make(chan Result)
	go func() {
		done <- conv.Convert(context.Background(), "1", "USD", "key")
	}()

	<-started
	assert.Equal(t, Requesting, conv.Status())
	busy := conv.Convert(context.Background(), "1", "EUR", "key")
	assert.ErrorIs(t, busy.Err, ErrBusy)
	invalid := conv.Convert(context.Background(), "-1", "EUR", "key")
	assert.ErrorIs(t, invalid.Err, ErrInvalidAmount)
	assert.Equal(t, Requesting, conv.Status())

	close(release)
	first := <-done
	assert.Equal(t, Succeeded, first.Status)
	assert.Equal(t, "81.82", first.Amount)
}
