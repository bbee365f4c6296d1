package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/db"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

// dataService implements DataService over the Firestore repositories.
type dataService struct {
	feedbackRepo db.FeedbackRepository
	issueRepo    db.IssueRepository
}

// NewDataService creates a new DataService instance.
func NewDataService(feedbackRepo db.FeedbackRepository, issueRepo db.IssueRepository) DataService {
	return &dataService{feedbackRepo: feedbackRepo, issueRepo: issueRepo}
}

func (s *dataService) Feedback(ctx context.Context) ([]models.FeedbackEntry, error) {
	if s.feedbackRepo == nil {
		return nil, errors.New("FeedbackRepository not initialized in DataService")
	}
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return nil, ErrStoreUnavailable
		}
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	return entries, nil
}

func (s *dataService) Issues(ctx context.Context) ([]models.IssueReport, error) {
	if s.issueRepo == nil {
		return nil, errors.New("IssueRepository not initialized in DataService")
	}
	reports, err := s.issueRepo.List(ctx)
	if err != nil {
		if errors.Is(err, db.ErrUnavailable) {
			return nil, ErrStoreUnavailable
		}
		return nil, fmt.Errorf("failed to fetch issues: %w", err)
	}
	return reports, nil
}
