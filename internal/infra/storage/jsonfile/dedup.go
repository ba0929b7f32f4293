package jsonfile

import (
	"context"
	"maps"

	"github.com/gabapcia/solwatch/internal/activitywatch"
)

func (s *store) Has(_ context.Context, signature string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.processed[signature]
	return ok, nil
}

// MarkProcessed keeps the first record written for a signature. Records past
// the retention window are pruned on every write.
func (s *store) MarkProcessed(_ context.Context, signature string, record activitywatch.ProcessedRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.processed[signature]; ok {
		return nil
	}

	record.Signature = signature

	next := maps.Clone(s.processed)
	next[signature] = record

	if s.retention > 0 {
		cutoff := s.now().Add(-s.retention)
		maps.DeleteFunc(next, func(sig string, r activitywatch.ProcessedRecord) bool {
			return sig != signature && r.ProcessedAt.Before(cutoff)
		})
	}

	if err := s.save(processedFile, next); err != nil {
		return err
	}

	s.processed = next
	return nil
}
