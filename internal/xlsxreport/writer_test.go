package xlsxreport

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"majlis/internal/domain"
)

func TestWriteRegister(t *testing.T) {
	m1 := domain.Member{ID: uuid.New(), Name: "Ali", Surname: "Asghar", HouseColor: domain.HouseRed}
	m2 := domain.Member{ID: uuid.New(), Name: "Taha", Surname: "Husain", HouseColor: domain.HouseBlue}
	o1 := domain.Occasion{ID: uuid.New(), Title: "Majlis 1", Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)}
	o2 := domain.Occasion{ID: uuid.New(), Title: "Majlis 2", Date: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)}

	reg := Register{
		Members:   []domain.Member{m1, m2},
		Occasions: []domain.Occasion{o1, o2},
		Marks: map[uuid.UUID]map[uuid.UUID]bool{
			m1.ID: {o1.ID: true, o2.ID: true},
			m2.ID: {o2.ID: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, reg))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Member", "House", "Majlis 1 (2026-01-05)", "Majlis 2 (2026-01-12)", "Attendance %"}, rows[0])
	assert.Equal(t, []string{"Ali Asghar", "red", "P", "P", "100"}, rows[1])
	assert.Equal(t, []string{"Taha Husain", "blue", "A", "P", "50"}, rows[2])
}

func TestWriteRegister_NoOccasions(t *testing.T) {
	reg := Register{
		Members: []domain.Member{
			{ID: uuid.New(), Name: "Ali", Surname: "Asghar", HouseColor: domain.HouseRed},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRegister(&buf, reg))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "0", rows[1][2])
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "attendance_register", SanitizeFilename("attendance register"))
	assert.Equal(t, "majlis_2026", SanitizeFilename("majlis / 2026!"))
	assert.Equal(t, "a-b_c", SanitizeFilename("a-b c"))
}

func TestBuildFilename(t *testing.T) {
	name := BuildFilename("attendance register")
	assert.Regexp(t, `^attendance_register_\d{4}-\d{2}-\d{2}\.xlsx$`, name)
}
