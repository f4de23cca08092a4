package companies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExists(t *testing.T) {
	svc := NewService(Defaults())

	c, ok := svc.Get("abc_motors")
	assert.True(t, ok)
	assert.Equal(t, "ABC Motors Ltd", c.Name)

	_, ok = svc.Get("unknown_co")
	assert.False(t, ok)

	assert.True(t, svc.Exists("crystal_it"))
	assert.False(t, svc.Exists("unknown_co"))
	assert.Len(t, svc.All(), 3)
}

func validProfile() ProfileParams {
	return ProfileParams{
		FileNumber:        "C-2025-014",
		Name:              "Sunrise Traders Ltd",
		RegisteredAddress: "12 Port Louis Road",
		BRN:               "C07014821",
		VATNumber:         "V20014821",
		Telephone:         "230 555 0114",
		BusinessNature:    "Wholesale",
		YearEnded:         "31 December",
		MultiCurrency:     true,
		Directors:         "R. Appadoo",
	}
}

func TestRegisterAddsSelectableCompany(t *testing.T) {
	svc := NewService(Defaults())

	profile, err := svc.Register(validProfile())
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)

	c, ok := svc.Get("C-2025-014")
	assert.True(t, ok)
	assert.Equal(t, "Sunrise Traders Ltd", c.Name)

	got, ok := svc.Profile("C-2025-014")
	assert.True(t, ok)
	assert.Equal(t, "Wholesale", got.BusinessNature)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(Defaults())

	p := validProfile()
	p.Name = ""
	_, err := svc.Register(p)
	assert.Error(t, err)
}

func TestRegisterDuplicateFileNumber(t *testing.T) {
	svc := NewService(Defaults())

	_, err := svc.Register(validProfile())
	require.NoError(t, err)

	_, err = svc.Register(validProfile())
	assert.Error(t, err)
}
