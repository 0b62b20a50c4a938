package result

import (
	"fmt"
	"strconv"
	"strings"

	"result_ingestor/internal/domain"
)

// ClassifyOutcome returns the outcome code for a final score.
func ClassifyOutcome(homeGoals, awayGoals string) (string, error) {
	home, err := strconv.Atoi(strings.TrimSpace(homeGoals))
	if err != nil {
		return "", fmt.Errorf("home goals %q: %w", homeGoals, domain.ErrInvalidScore)
	}
	away, err := strconv.Atoi(strings.TrimSpace(awayGoals))
	if err != nil {
		return "", fmt.Errorf("away goals %q: %w", awayGoals, domain.ErrInvalidScore)
	}

	switch {
	case home > away:
		return domain.OutcomeHomeWin, nil
	case home == away:
		return domain.OutcomeDraw, nil
	default:
		return domain.OutcomeAwayWin, nil
	}
}
