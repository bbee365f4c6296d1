package models

import "time"

// FeedbackEntry is a rating left by an end user of the converter app.
// Entries are written by the consumer client and are read-only here.
type FeedbackEntry struct {
	ID           string    `json:"id" firestore:"-"`
	AccountEmail string    `json:"accountEmail" firestore:"accountEmail"`
	Rating       int       `json:"rating" firestore:"rating"`
	Message      string    `json:"message" firestore:"message"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}
