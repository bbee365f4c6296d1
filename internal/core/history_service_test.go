package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/db"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

// fakeHistoryRepo records the limit it was called with and serves canned
// entries.
type fakeHistoryRepo struct {
	entries   []models.ConversionHistoryEntry
	err       error
	gotLimit  int
	gotUserID string
}

func (f *fakeHistoryRepo) ListByAccount(_ context.Context, accountID string, limit int) ([]models.ConversionHistoryEntry, error) {
	f.gotUserID = accountID
	f.gotLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func historyEntries(n int) []models.ConversionHistoryEntry {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	out := make([]models.ConversionHistoryEntry, n)
	for i := range out {
		out[i] = models.ConversionHistoryEntry{
			ID:             string(rune('a' + i%26)),
			Amount:         100,
			BaseCurrency:   "USD",
			TargetCurrency: "EUR",
			Rate:           0.92,
			Timestamp:      base.Add(-time.Duration(i) * time.Minute),
		}
	}
	return out
}

func TestHistoryService_ForAccount(t *testing.T) {
	repo := &fakeHistoryRepo{entries: historyEntries(3)}
	svc := NewHistoryService(repo)

	got, err := svc.ForAccount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, "u1", repo.gotUserID)
	assert.Equal(t, historyLimit, repo.gotLimit)

	// Newest first.
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i].Timestamp.Before(got[i-1].Timestamp),
			"entries must be ordered by descending timestamp")
	}
}

func TestHistoryService_ForAccount_CapsAtLimit(t *testing.T) {
	repo := &fakeHistoryRepo{entries: historyEntries(80)}
	svc := NewHistoryService(repo)

	got, err := svc.ForAccount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, got, historyLimit)
}

func TestHistoryService_ForAccount_EmptyAccountID(t *testing.T) {
	svc := NewHistoryService(&fakeHistoryRepo{})

	_, err := svc.ForAccount(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHistoryService_ForAccount_RepoError(t *testing.T) {
	repoErr := errors.New("decode failure")
	svc := NewHistoryService(&fakeHistoryRepo{err: repoErr})

	_, err := svc.ForAccount(context.Background(), "u1")
	assert.ErrorIs(t, err, repoErr)
}

func TestHistoryService_ForAccount_MapsStoreErrors(t *testing.T) {
	t.Run("missing document", func(t *testing.T) {
		svc := NewHistoryService(&fakeHistoryRepo{
			err: fmt.Errorf("failed to read history for account 'u1': %w", db.ErrNotFound),
		})

		_, err := svc.ForAccount(context.Background(), "u1")
		assert.ErrorIs(t, err, ErrAccountNotFound)
	})

	t.Run("unreachable store", func(t *testing.T) {
		svc := NewHistoryService(&fakeHistoryRepo{
			err: fmt.Errorf("failed to read history for account 'u1': %w", db.ErrUnavailable),
		})

		_, err := svc.ForAccount(context.Background(), "u1")
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}
