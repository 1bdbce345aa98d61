package service

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domainerr"
)

// Column limits of the ledger schema.
const (
	maxDescriptionLength  = 200
	maxCategoryNameLength = 100
	maxColorLength        = 7
)

// maxAmount is the first value NUMERIC(10,2) cannot hold.
var maxAmount = decimal.New(1, 8)

func checkLength(value string, limit int, field string) error {
	if utf8.RuneCountInString(value) > limit {
		return domainerr.Validation(fmt.Sprintf("%s no puede superar los %d caracteres", field, limit))
	}
	return nil
}

func checkDescription(description string) error {
	return checkLength(description, maxDescriptionLength, "La descripción")
}

func checkCategoryName(name string) error {
	return checkLength(name, maxCategoryNameLength, "El nombre")
}

func checkColor(color string) error {
	return checkLength(color, maxColorLength, "El color")
}

// checkAmount expects amount already rounded to two places.
func checkAmount(amount decimal.Decimal) error {
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return domainerr.Validation(msgAmountOutOfRange)
	}
	return nil
}
