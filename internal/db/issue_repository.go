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

const issuesCollection = "issues"

// firestoreIssueRepository implements IssueRepository using Firestore.
type firestoreIssueRepository struct {
	client *firestore.Client
}

// NewFirestoreIssueRepository creates a new issue report repository.
func NewFirestoreIssueRepository(client *firestore.Client) IssueRepository {
	if client == nil {
		log.Fatal("Firestore client is not initialized for IssueRepository.")
	}
	return &firestoreIssueRepository{client: client}
}

// List returns every issue report, newest first.
func (r *firestoreIssueRepository) List(ctx context.Context) ([]models.IssueReport, error) {
	iter := r.client.Collection(issuesCollection).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	reports := make([]models.IssueReport, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			if dbErr := classifyRPCError(err); dbErr != nil {
				return nil, fmt.Errorf("failed to read issues collection: %w", dbErr)
			}
			return nil, fmt.Errorf("failed to iterate issues collection: %w", err)
		}
		var report models.IssueReport
		if err := doc.DataTo(&report); err != nil {
			return nil, fmt.Errorf("failed to decode issue document '%s': %w", doc.Ref.ID, err)
		}
		report.ID = doc.Ref.ID
		reports = append(reports, report)
	}
	return reports, nil
}
