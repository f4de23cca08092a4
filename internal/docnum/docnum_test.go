package docnum

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateFormat(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

	got := Generate(PrefixInvoice, now)
	assert.Regexp(t, regexp.MustCompile(`^INV\d{6}[0-9A-Z]{4}$`), got)

	got = Generate(PrefixCreditNote, now)
	assert.Regexp(t, regexp.MustCompile(`^CRN\d{6}[0-9A-Z]{4}$`), got)
}

func TestGenerateUsesClockTail(t *testing.T) {
	now := time.UnixMilli(1700000123456)

	got := Generate(PrefixInvoice, now)
	assert.Equal(t, "INV123456", got[:9])
}
