package result

import "result_ingestor/internal/domain"

// CanApplyUpdate reports whether a stored mapping is still open. Any result
// data already present, even on a record not flagged completed, protects it.
func CanApplyUpdate(m domain.ResultEventMapping) bool {
	return !m.Completed && isEmpty(m.Score) && isEmpty(m.Outcome)
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}
