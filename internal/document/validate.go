package document

import (
	"errors"

	"github.com/booksdesk-dev/booksdesk/internal/model"
)

// Messages surfaced by the commit gates. Both are collective: the
// failing row is not identified.
const (
	MsgLineIncomplete  = "Please fill in all required fields for this line item"
	MsgLinesIncomplete = "Please fill in all required fields for all line items"
)

// ValidateLine gates generating a document from a single line: the
// customer reference and description must be set and the exclusive
// amount positive.
func ValidateLine(line model.LineItem) error {
	if !lineComplete(line) {
		return errors.New(MsgLineIncomplete)
	}
	return nil
}

// ValidateLines gates a bulk update across all lines.
func ValidateLines(lines []model.LineItem) error {
	for _, l := range lines {
		if !lineComplete(l) {
			return errors.New(MsgLinesIncomplete)
		}
	}
	return nil
}

func lineComplete(l model.LineItem) bool {
	return l.CustomerCode != "" && l.Description != "" && l.Exclusive.IsPositive()
}
