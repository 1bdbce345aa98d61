package service

import (
	"context"
	"slices"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@finanzas.com"
)

var demoCategories = []sqlconfig.CategoryCreate{
	{Name: "Alimentación", Kind: sqlconfig.KindExpense, Color: "#FF6B35"},
	{Name: "Transporte", Kind: sqlconfig.KindExpense, Color: "#FF8C42"},
	{Name: "Entretenimiento", Kind: sqlconfig.KindExpense, Color: "#FFD23F"},
	{Name: "Servicios", Kind: sqlconfig.KindExpense, Color: "#FF4757"},
	{Name: "Salud", Kind: sqlconfig.KindExpense, Color: "#FF6348"},
	{Name: "Salario", Kind: sqlconfig.KindIncome, Color: "#2ECC71"},
	{Name: "Freelance", Kind: sqlconfig.KindIncome, Color: "#27AE60"},
	{Name: "Inversiones", Kind: sqlconfig.KindIncome, Color: "#16A085"},
}

// SeedService prepares the demo account used by the bundled frontend.
type SeedService struct {
	operator actionProcessor
}

func NewSeedService(processor actionProcessor) *SeedService {
	return &SeedService{operator: processor}
}

// EnsureDemoData creates the demo user and its starter categories if they
// are missing, and returns the demo user along with how many categories
// were created.
func (s *SeedService) EnsureDemoData(ctx context.Context) (*User, int, error) {
	action := &actions.SeedDemoData{
		Username:   demoUsername,
		Email:      demoEmail,
		Categories: slices.Clone(demoCategories),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, 0, domainerr.Store(err)
	}
	user := userFromStorage(action.User)
	return &user, action.CreatedCategories, nil
}
