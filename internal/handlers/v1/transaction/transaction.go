package transaction

import (
	"time"

	"github.com/carson-networks/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID            int64   `json:"id" doc:"Transaction id"`
	Description   string  `json:"descripcion" doc:"Description"`
	Amount        float64 `json:"monto" doc:"Amount with two decimals"`
	Date          string  `json:"fecha" doc:"Transaction date, YYYY-MM-DD"`
	Kind          string  `json:"tipo" enum:"ingreso,gasto" doc:"Transaction kind"`
	CreatedAt     string  `json:"fecha_creacion" doc:"RFC3339 creation time"`
	UserID        int64   `json:"usuario_id" doc:"Owning user id"`
	CategoryID    int64   `json:"categoria_id" doc:"Category id"`
	CategoryName  string  `json:"categoria_nombre" doc:"Category name"`
	CategoryColor string  `json:"categoria_color" doc:"Category color"`
}

// MessageResponse confirms an operation that returns no entity.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:            tx.ID,
		Description:   tx.Description,
		Amount:        tx.Amount.InexactFloat64(),
		Date:          tx.Date.Format(dateLayout),
		Kind:          string(tx.Kind),
		CreatedAt:     tx.CreatedAt.Format(time.RFC3339),
		UserID:        tx.UserID,
		CategoryID:    tx.CategoryID,
		CategoryName:  tx.CategoryName,
		CategoryColor: tx.CategoryColor,
	}
}

func transactionsFromService(transactions []service.Transaction) []Transaction {
	converted := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		converted[i] = transactionFromService(tx)
	}
	return converted
}
