package fx

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	svc := NewService(Defaults())

	r, ok := svc.Get("USD")
	require.True(t, ok)
	assert.Equal(t, "United States Dollar", r.Name)
	assert.Equal(t, "46.2500", r.DisplayRate())

	_, ok = svc.Get("JPY")
	assert.False(t, ok)
}

func TestUpsert(t *testing.T) {
	svc := NewService(Defaults())

	p := Params{
		CurrencyID: "CUR004",
		Code:       "ZAR",
		Date:       time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		Name:       "South African Rand",
		Symbol:     "R",
		RateToHome: decimal.RequireFromString("2.5080"),
		Monthly:    true,
	}
	r, err := svc.Upsert(p)
	require.NoError(t, err)
	assert.Equal(t, "2.5080", r.DisplayRate())
	assert.Len(t, svc.All(), 4)

	// Second upsert for the same code replaces, keeping the id.
	p.RateToHome = decimal.RequireFromString("2.5510")
	updated, err := svc.Upsert(p)
	require.NoError(t, err)
	assert.Equal(t, r.ID, updated.ID)
	assert.Len(t, svc.All(), 4)

	got, _ := svc.Get("ZAR")
	assert.Equal(t, "2.5510", got.DisplayRate())
}

func TestUpsertValidation(t *testing.T) {
	svc := NewService(Defaults())

	p := Params{CurrencyID: "CUR005", Code: "X", Name: "Bad", Symbol: "?", RateToHome: decimal.NewFromInt(1)}
	_, err := svc.Upsert(p)
	assert.Error(t, err, "code must be 3 characters")

	p.Code = "XXX"
	p.RateToHome = decimal.Zero
	_, err = svc.Upsert(p)
	assert.Error(t, err, "rate must be positive")
}

func TestDelete(t *testing.T) {
	svc := NewService(Defaults())

	assert.True(t, svc.Delete("GBP"))
	assert.False(t, svc.Delete("GBP"))
	assert.Len(t, svc.All(), 2)
}
