package db

import (
	"context"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

// FeedbackRepository reads the feedback collection.
type FeedbackRepository interface {
	// List returns all feedback entries ordered by timestamp descending.
	List(ctx context.Context) ([]models.FeedbackEntry, error)
}

// IssueRepository reads the issue report collection.
type IssueRepository interface {
	// List returns all issue reports ordered by timestamp descending.
	List(ctx context.Context) ([]models.IssueReport, error)
}

// HistoryRepository reads the per-account conversion history subcollection.
type HistoryRepository interface {
	// ListByAccount returns at most limit entries for the account,
	// ordered by timestamp descending.
	ListByAccount(ctx context.Context, accountID string, limit int) ([]models.ConversionHistoryEntry, error)
}
