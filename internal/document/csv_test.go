package document

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/booksdesk-dev/booksdesk/internal/model"
)

func sampleLines() []model.LineItem {
	line := NewLine(model.KindInvoice, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	line = ApplyCustomer(line, "CUST001", parties())
	line, _ = UpdateField(line, FieldDescription, "April services")
	line = ApplyExclusive(line, dec("1000"), rates())
	line = ApplyVATCode(line, "1.1", rates())
	return []model.LineItem{line}
}

func TestLinesRoundTrip(t *testing.T) {
	lines := sampleLines()

	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, lines))

	got, err := ReadLines(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)

	assert.Equal(t, lines[0].Number, got[0].Number)
	assert.Equal(t, "CUST001", got[0].CustomerCode)
	assert.Equal(t, "ABC Company Ltd", got[0].CustomerName)
	assert.Equal(t, "April services", got[0].Description)
	assert.True(t, got[0].Exclusive.Equal(dec("1000")))
	assert.True(t, got[0].VAT.Equal(dec("150")))
	assert.True(t, got[0].Total.Equal(dec("1150")))
	assert.NotEqual(t, lines[0].ID, got[0].ID, "row ids are regenerated on import")
}

func TestReadLinesEmpty(t *testing.T) {
	got, err := ReadLines(bytes.NewBufferString("date,number,customer_code,customer_name,vat_no,account_code,description,vat_code,exclusive,vat,total\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadLinesBadAmount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, sampleLines()))
	corrupted := bytes.Replace(buf.Bytes(), []byte("1000.00"), []byte("one-thousand"), 1)

	_, err := ReadLines(bytes.NewReader(corrupted))
	assert.Error(t, err)
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoice-lines.csv")

	require.NoError(t, Export(path, sampleLines()))

	got, err := Import(path)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
