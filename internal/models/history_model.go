package models

import "time"

// ConversionHistoryEntry is one currency conversion performed by an account.
// Stored append-only under users/{accountId}/history.
type ConversionHistoryEntry struct {
	ID              string    `json:"id" firestore:"-"`
	AccountID       string    `json:"accountId" firestore:"-"`
	Amount          float64   `json:"amount" firestore:"amount"`
	BaseCurrency    string    `json:"baseCurrency" firestore:"baseCurrency"`
	ConvertedAmount float64   `json:"convertedAmount" firestore:"convertedAmount"`
	TargetCurrency  string    `json:"targetCurrency" firestore:"targetCurrency"`
	Rate            float64   `json:"rate" firestore:"rate"`
	Timestamp       time.Time `json:"timestamp" firestore:"timestamp"`
}
