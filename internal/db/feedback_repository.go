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

const feedbackCollection = "feedback"

// firestoreFeedbackRepository implements FeedbackRepository using Firestore.
type firestoreFeedbackRepository struct {
	client *firestore.Client
}

// NewFirestoreFeedbackRepository creates a new feedback repository.
func NewFirestoreFeedbackRepository(client *firestore.Client) FeedbackRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for FeedbackRepository.")
	}
	return &firestoreFeedbackRepository{client: client}
}

// List returns every feedback entry, newest first.
func (r *firestoreFeedbackRepository) List(ctx context.Context) ([]models.FeedbackEntry, error) {
	iter := r.client.Collection(feedbackCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]models.FeedbackEntry, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			if dbErr := classifyRPCError(err); dbErr != nil {
				return nil, fmt.Errorf("failed to read feedback collection: %w", dbErr)
			}
			return nil, fmt.Errorf("failed to iterate feedback collection: %w", err)
		}
		var entry models.FeedbackEntry
		if err := doc.DataTo(&entry); err != nil {
			return nil, fmt.Errorf("failed to decode feedback document '%s': %w", doc.Ref.ID, err)
		}
		entry.ID = doc.Ref.ID
		entries = append(entries, entry)
	}
	return entries, nil
}
