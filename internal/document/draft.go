package document

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/booksdesk-dev/booksdesk/internal/docnum"
	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Draft is an in-progress invoice or credit note.
type Draft struct {
	Kind  model.DocumentKind
	Lines []model.LineItem
}

// NewDraft creates a draft with a single empty line.
func NewDraft(kind model.DocumentKind) *Draft {
	return &Draft{Kind: kind, Lines: []model.LineItem{NewLine(kind, time.Now())}}
}

// NewLine creates an empty line with a generated document number and
// zeroed amounts.
func NewLine(kind model.DocumentKind, now time.Time) model.LineItem {
	return model.LineItem{
		ID:        uuid.NewString(),
		Date:      now,
		Number:    docnum.Generate(numberPrefix(kind), now),
		Exclusive: decimal.Zero,
		VAT:       decimal.Zero,
		Total:     decimal.Zero,
	}
}

func numberPrefix(kind model.DocumentKind) string {
	if kind == model.KindCreditNote {
		return docnum.PrefixCreditNote
	}
	return docnum.PrefixInvoice
}

// AddLine appends a fresh empty line.
func (d *Draft) AddLine() {
	d.Lines = append(d.Lines, NewLine(d.Kind, time.Now()))
}

// RemoveLine deletes the line at index i. The draft always keeps at
// least one line, so removing the last remaining line reports false.
func (d *Draft) RemoveLine(i int) bool {
	if len(d.Lines) <= 1 || i < 0 || i >= len(d.Lines) {
		return false
	}
	d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
	return true
}

// Clear resets the draft to a single empty line.
func (d *Draft) Clear() {
	d.Lines = []model.LineItem{NewLine(d.Kind, time.Now())}
}

// Totals aggregates the draft's lines.
func (d *Draft) Totals() Totals {
	return Aggregate(d.Lines)
}

// Commit validates every line and, on success, freezes the draft into
// a Document and resets the draft to a single empty line.
func (d *Draft) Commit(now time.Time) (model.Document, error) {
	if err := ValidateLines(d.Lines); err != nil {
		return model.Document{}, err
	}

	doc := model.Document{
		ID:        uuid.NewString(),
		Kind:      d.Kind,
		Number:    docnum.Generate(numberPrefix(d.Kind), now),
		Lines:     d.Lines,
		CreatedAt: now,
		UpdatedAt: now,
	}
	d.Clear()
	return doc, nil
}
