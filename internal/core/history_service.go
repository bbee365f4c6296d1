package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/db"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

// historyLimit caps how many conversion history entries a single request
// returns.
const historyLimit = 50

// historyService implements HistoryService over the Firestore repository.
type historyService struct {
	historyRepo db.HistoryRepository
}

// NewHistoryService creates a new HistoryService instance.
func NewHistoryService(historyRepo db.HistoryRepository) HistoryService {
	return &historyService{historyRepo: historyRepo}
}

func (s *historyService) ForAccount(ctx context.Context, accountID string) ([]models.ConversionHistoryEntry, error) {
	if s.historyRepo == nil {
		return nil, errors.New("HistoryRepository not initialized in HistoryService")
	}
	if accountID == "" {
		return nil, ErrInvalidInput
	}
	entries, err := s.historyRepo.ListByAccount(ctx, accountID, historyLimit)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrNotFound):
			return nil, ErrAccountNotFound
		case errors.Is(err, db.ErrUnavailable):
			return nil, ErrStoreUnavailable
		}
		return nil, fmt.Errorf("failed to fetch history for account '%s': %w", accountID, err)
	}
	return entries, nil
}
