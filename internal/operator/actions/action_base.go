package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// IAction is one unit of work. Perform runs inside a single transaction
// which is rolled back if it returns an error.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

const (
	msgCategoryMissing       = "La categoría no existe"
	msgCategoryNotFound      = "Categoría no encontrada"
	msgTransactionNotFound   = "Transacción no encontrada"
	msgCategoryDuplicate     = "Ya existe una categoría con ese nombre y tipo"
	msgCategoryHasReferences = "No se puede eliminar una categoría que tiene transacciones asociadas"
	msgValueOutOfRange       = "Uno de los valores excede el tamaño permitido"
)

// classify turns constraint violations into the matching domain error and
// wraps anything else as a store failure. Values the columns cannot hold
// are always the caller's fault.
func classify(err error, onUnique, onForeignKey func() error) error {
	switch {
	case err == nil:
		return nil
	case onUnique != nil && errors.Is(err, sqlconfig.ErrUniqueViolation):
		return onUnique()
	case onForeignKey != nil && errors.Is(err, sqlconfig.ErrForeignKeyViolation):
		return onForeignKey()
	case errors.Is(err, sqlconfig.ErrValueOutOfRange):
		return domainerr.Validation(msgValueOutOfRange)
	}
	return domainerr.Store(err)
}

func categoryMissing() error {
	return domainerr.Reference(msgCategoryMissing)
}

func categoryDuplicate() error {
	return domainerr.Conflict(msgCategoryDuplicate)
}

func categoryHasReferences() error {
	return domainerr.Conflict(msgCategoryHasReferences)
}
