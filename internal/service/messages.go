package service

import (
	"time"

	"github.com/carson-networks/finance-server/internal/domainerr"
)

// Caller-facing messages. The public API is in Spanish.
const (
	msgDescriptionRequired = "La descripción es requerida"
	msgAmountRequired      = "El monto es requerido"
	msgAmountOutOfRange    = "El monto debe ser menor que 100000000 en valor absoluto"
	msgCategoryRequired    = "La categoría es requerida"
	msgNameRequired        = "El nombre es requerido"
	msgKindInvalid         = `El tipo debe ser "ingreso" o "gasto"`
	msgMonthInvalid        = "El mes debe estar entre 1 y 12"
	msgYearInvalid         = "El año debe ser positivo"
	msgDateInvalid         = "Formato de fecha inválido, use AAAA-MM-DD"
)

const dateLayout = "2006-01-02"

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domainerr.Format(msgDateInvalid, err)
	}
	return date, nil
}
