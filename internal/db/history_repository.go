package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

const (
	usersCollection   = "users"
	historyCollection = "history"
)

// firestoreHistoryRepository implements HistoryRepository using Firestore.
// Conversion history lives in a subcollection under each user document:
// users/{accountId}/history.
type firestoreHistoryRepository struct {
	client *firestore.Client
}

// NewFirestoreHistoryRepository creates a new conversion history repository.
func NewFirestoreHistoryRepository(client *firestore.Client) HistoryRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for HistoryRepository.")
	}
	return &firestoreHistoryRepository{client: client}
}

// ListByAccount returns at most limit history entries for the account,
// newest first. A non-positive limit returns an empty slice.
func (r *firestoreHistoryRepository) ListByAccount(ctx context.Context, accountID string, limit int) ([]models.ConversionHistoryEntry, error) {
	if accountID == "" {
		return nil, errors.New("accountID cannot be empty for ListByAccount")
	}
	entries := make([]models.ConversionHistoryEntry, 0)
	if limit <= 0 {
		return entries, nil
	}

	iter := r.client.Collection(usersCollection).
		Doc(accountID).
		Collection(historyCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			if dbErr := classifyRPCError(err); dbErr != nil {
				return nil, fmt.Errorf("failed to read history for account '%s': %w", accountID, dbErr)
			}
			return nil, fmt.Errorf("failed to iterate history for account '%s': %w", accountID, err)
		}
		var entry models.ConversionHistoryEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode history document '%s': %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entry.AccountID = accountID
		entries = append(entries, entry)
	}
	return entries, nil
}
