package customers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionLookup(t *testing.T) {
	svc := NewService(Defaults())

	opt, ok := svc.Option("CUST001")
	require.True(t, ok)
	assert.Equal(t, "ABC Company Ltd", opt.Name)
	assert.Equal(t, "V12345678", opt.VATNo)
	assert.Equal(t, "1100", opt.AccountCode)

	_, ok = svc.Option("CUST999")
	assert.False(t, ok)

	_, ok = svc.Option("")
	assert.False(t, ok)
}

func validParams() Params {
	return Params{
		Code:        "CUST003",
		Name:        "Harbour Freight Co",
		Category:    "Trade",
		Currency:    "MUR",
		Balance:     decimal.NewFromInt(900),
		AccountCode: "1120",
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(Defaults())

	c, err := svc.Create(validParams())
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Len(t, svc.All(), 3)

	got, ok := svc.Get("CUST003")
	assert.True(t, ok)
	assert.Equal(t, "Harbour Freight Co", got.Name)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(Defaults())

	p := validParams()
	p.Name = ""
	_, err := svc.Create(p)
	assert.Error(t, err)

	p = validParams()
	p.Currency = "MAURITIAN"
	_, err = svc.Create(p)
	assert.Error(t, err)
}

func TestCreateDuplicate(t *testing.T) {
	svc := NewService(Defaults())

	p := validParams()
	p.Code = "CUST001"
	_, err := svc.Create(p)
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	svc := NewService(Defaults())

	p := Params{
		Code:        "CUST001",
		Name:        "ABC Company (Mauritius) Ltd",
		Currency:    "MUR",
		AccountCode: "1100",
	}
	c, err := svc.Update("CUST001", p)
	require.NoError(t, err)
	assert.Equal(t, "ABC Company (Mauritius) Ltd", c.Name)

	got, _ := svc.Get("CUST001")
	assert.Equal(t, "ABC Company (Mauritius) Ltd", got.Name)

	p.Code = "CUST009"
	_, err = svc.Update("CUST001", p)
	assert.Error(t, err, "code is immutable")

	_, err = svc.Update("CUST999", p)
	assert.Error(t, err)
}

func TestDelete(t *testing.T) {
	svc := NewService(Defaults())

	assert.True(t, svc.Delete("CUST002"))
	assert.False(t, svc.Delete("CUST002"))
	assert.Len(t, svc.All(), 1)
	_, ok := svc.Option("CUST002")
	assert.False(t, ok)
}
