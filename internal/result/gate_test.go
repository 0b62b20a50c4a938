package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"result_ingestor/internal/domain"
	"result_ingestor/internal/testutil"
)

func TestCanApplyUpdate_TruthTable(t *testing.T) {
	for _, completed := range []bool{false, true} {
		for _, score := range []*string{nil, testutil.Ptr("2-1")} {
			for _, outcome := range []*string{nil, testutil.Ptr(domain.OutcomeAwayWin)} {
				m := domain.ResultEventMapping{
					EventID:    1000001,
					APIEventID: "a085aa8beb661722ad957e5d8c15f798",
					CompType:   "soccer_epl",
					Completed:  completed,
					Score:      score,
					Outcome:    outcome,
				}

				want := !completed && score == nil && outcome == nil
				assert.Equal(t, want, CanApplyUpdate(m), "completed=%v score=%v outcome=%v", completed, score != nil, outcome != nil)
			}
		}
	}
}

func TestCanApplyUpdate_IgnoresLastUpdated(t *testing.T) {
	m := domain.ResultEventMapping{
		APIEventID:    "a085aa8beb661722ad957e5d8c15f798",
		LastUpdatedDt: testutil.Ptr(time.Now()),
	}
	assert.True(t, CanApplyUpdate(m))
}

func TestCanApplyUpdate_EmptyStringsAreOpen(t *testing.T) {
	m := domain.ResultEventMapping{
		Score:   testutil.Ptr(""),
		Outcome: testutil.Ptr(""),
	}
	assert.True(t, CanApplyUpdate(m))
}
