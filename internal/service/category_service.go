package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/events"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	operator  actionProcessor
	publisher events.Publisher
}

func NewCategoryService(store *storage.Storage, processor actionProcessor, publisher events.Publisher) *CategoryService {
	return &CategoryService{
		storage:   store,
		operator:  processor,
		publisher: publisher,
	}
}

// List returns the categories of userID ordered by name. kind filters only
// when it is "ingreso" or "gasto".
func (s *CategoryService) List(ctx context.Context, userID int64, kind string) ([]Category, error) {
	filter := &sqlconfig.CategoryFilter{UserID: userID}
	if Kind(kind).Valid() {
		storageKind := kindToStorage(Kind(kind))
		filter.Kind = &storageKind
	}

	rows, err := s.storage.Categories.List(ctx, filter)
	if err != nil {
		return nil, domainerr.Store(err)
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

func (s *CategoryService) Create(ctx context.Context, userID int64, input CategoryInput) (*Category, error) {
	if input.Name == "" {
		return nil, domainerr.Validation(msgNameRequired)
	}
	if err := checkCategoryName(input.Name); err != nil {
		return nil, err
	}
	kind := Kind(input.Kind)
	if !kind.Valid() {
		return nil, domainerr.Validation(msgKindInvalid)
	}
	color := input.Color
	if color == "" {
		color = DefaultCategoryColor
	}
	if err := checkColor(color); err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{
		UserID: userID,
		Name:   input.Name,
		Kind:   kindToStorage(kind),
		Color:  color,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, domainerr.Store(err)
	}

	created := categoryFromStorage(action.Created)
	publish(ctx, s.publisher, events.CategoryCreated, userID, created.ID)
	return &created, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id int64, patch CategoryPatch) (*Category, error) {
	update := sqlconfig.CategoryUpdate{
		Name:  patch.Name,
		Color: patch.Color,
	}
	if patch.Name != nil {
		if err := checkCategoryName(*patch.Name); err != nil {
			return nil, err
		}
	}
	if patch.Color != nil {
		if err := checkColor(*patch.Color); err != nil {
			return nil, err
		}
	}
	if patch.Kind != nil && Kind(*patch.Kind).Valid() {
		kind := kindToStorage(Kind(*patch.Kind))
		update.Kind = &kind
	}

	action := &actions.UpdateCategory{UserID: userID, ID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, domainerr.Store(err)
	}

	updated := categoryFromStorage(action.Updated)
	publish(ctx, s.publisher, events.CategoryUpdated, userID, id)
	return &updated, nil
}

// Delete removes category id of userID unless a transaction still references it.
func (s *CategoryService) Delete(ctx context.Context, userID, id int64) error {
	if err := s.operator.Process(ctx, &actions.DeleteCategory{UserID: userID, ID: id}); err != nil {
		return domainerr.Store(err)
	}
	publish(ctx, s.publisher, events.CategoryDeleted, userID, id)
	return nil
}
