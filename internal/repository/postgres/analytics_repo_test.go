package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"majlis/internal/domain"
)

func rankingFixture() []domain.MemberActivity {
	return []domain.MemberActivity{
		{Name: "Ali", Percentage: 50, Attended: 5, Total: 10},
		{Name: "Hasan", Percentage: 80, Attended: 8, Total: 10},
		{Name: "Zainab", Percentage: 80, Attended: 4, Total: 5},
		{Name: "Fatema", Percentage: 20, Attended: 1, Total: 5},
	}
}

func names(activity []domain.MemberActivity) []string {
	out := make([]string, len(activity))
	for i, a := range activity {
		out[i] = a.Name
	}
	return out
}

func TestSortActivity_Descending(t *testing.T) {
	activity := rankingFixture()
	sortActivity(activity, true)

	// Equal percentages break ties on attended count.
	assert.Equal(t, []string{"Hasan", "Zainab", "Ali", "Fatema"}, names(activity))
}

func TestSortActivity_Ascending(t *testing.T) {
	activity := rankingFixture()
	sortActivity(activity, false)

	assert.Equal(t, []string{"Fatema", "Ali", "Zainab", "Hasan"}, names(activity))
}

func TestClip(t *testing.T) {
	activity := rankingFixture()

	assert.Len(t, clip(activity, 2), 2)
	assert.Len(t, clip(activity, 10), 4)
	assert.Len(t, clip(activity, 0), 4)
}
