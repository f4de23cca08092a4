// Package docnum generates document-line numbers.
package docnum

import (
	"math/rand"
	"strconv"
	"time"
)

// Prefixes for generated document numbers.
const (
	PrefixInvoice    = "INV"
	PrefixCreditNote = "CRN"
)

const suffixLen = 4

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Generate returns a number like "INV482913X7Q2": prefix, the last six
// digits of the unix-millisecond clock, then four random base-36
// characters.
func Generate(prefix string, now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return prefix + ts + randomSuffix(suffixLen)
}

func randomSuffix(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
