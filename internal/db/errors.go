package db

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is a common error for when a document is not found in Firestore.
var ErrNotFound = errors.New("document not found")

// ErrUnavailable means Firestore could not be reached or did not answer in
// time.
var ErrUnavailable = errors.New("firestore unavailable")

// classifyRPCError maps grpc status codes surfaced by the Firestore client
// onto the package sentinels, so callers can tell a missing document or an
// unreachable backend apart from a generic failure. It returns nil for codes
// that carry no special meaning here.
func classifyRPCError(err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}
	return nil
}
