package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCSV(t *testing.T) {
	raw, err := RenderCSV(Table{
		Headers: []string{"Entry", "Course"},
		Rows: [][]string{
			{"TE1", "CS701 Advanced Algorithms"},
			{"TE2", "CS702 Emerging Technologies (Theory)"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Entry,Course\nTE1,CS701 Advanced Algorithms\nTE2,CS702 Emerging Technologies (Theory)\n", string(raw))
}

func TestRenderCSVPadsShortRows(t *testing.T) {
	raw, err := RenderCSV(Table{
		Headers: []string{"A", "B", "C"},
		Rows:    [][]string{{"1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "A,B,C\n1,,\n", string(raw))
}

func TestRenderCSVRequiresHeaders(t *testing.T) {
	_, err := RenderCSV(Table{})
	require.Error(t, err)
}

func TestRenderPDF(t *testing.T) {
	raw, err := RenderPDF(Table{
		Headers: []string{"Entry", "Course"},
		Rows:    [][]string{{"TE1", "CS701 Advanced Algorithms"}},
	}, "Weekly Timetable")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	_, err = RenderPDF(Table{}, "")
	require.Error(t, err)
}
