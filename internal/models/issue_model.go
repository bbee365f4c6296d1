package models

import "time"

// Issue report statuses. Status transitions happen in the consumer app,
// the admin API only reads them.
const (
	IssueStatusOpen     = "open"
	IssueStatusResolved = "resolved"
)

// IssueReport is a problem reported by an end user.
type IssueReport struct {
	ID           string    `json:"id" firestore:"-"`
	AccountEmail string    `json:"accountEmail" firestore:"accountEmail"`
	Subject      string    `json:"subject" firestore:"subject"`
	Description  string    `json:"description" firestore:"description"`
	Status       string    `json:"status" firestore:"status"`
	Timestamp    time.Time `json:"timestamp" firestore:"timestamp"`
}
