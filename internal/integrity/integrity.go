// Package integrity hides records whose author no longer resolves.
//
// Author references are soft: deleting a staff member leaves the reviews and
// comments they wrote in place. Listings join each record to its author and
// drop the ones whose join came back empty, logging every discard so the
// dangling rows can be cleaned up later.
package integrity

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Authored is a record joined to its authoring user.
type Authored interface {
	RecordID() uuid.UUID
	AuthorRef() uuid.UUID
	AuthorResolved() bool
}

// FilterValid returns the records whose author resolved, in their original order.
// kind names the record type in the log line of each discard.
func FilterValid[T Authored](records []T, log logrus.FieldLogger, kind string) []T {
	valid := make([]T, 0, len(records))
	for _, r := range records {
		if r.AuthorResolved() {
			valid = append(valid, r)
			continue
		}
		if log != nil {
			log.WithFields(logrus.Fields{
				"kind":       kind,
				"record_id":  r.RecordID(),
				"author_ref": r.AuthorRef(),
			}).Warn("Discarding record with unresolved author")
		}
	}
	return valid
}
