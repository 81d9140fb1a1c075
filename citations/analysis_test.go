package citations

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummary(t *testing.T) {
	require := require.New(t)

	s := Summary()
	require.Equal(10, s.Papers)
	require.Equal(11, s.Citations)
	require.Equal(3, s.Foundational)
	require.Equal(2, s.MostCited)
	require.Equal(7, s.SpanYears)
}

func TestCitedCounts(t *testing.T) {
	require := require.New(t)

	counts := CitedCounts()
	require.Equal([]int{2, 2, 1, 1, 1, 1, 1, 1, 1, 0}, counts)
}

func TestMostCited(t *testing.T) {
	require := require.New(t)

	// The two most cited papers both have two citations; ties break
	// toward the older paper.
	top := MostCited(3)
	require.Equal([]int{MicrobiomeStudy2017, CropProtection2019, SustainableAg2020}, top)

	// Asking for more than the number of cited papers returns only
	// cited papers.
	require.Len(MostCited(100), 9)
}

func TestFoundational(t *testing.T) {
	require := require.New(t)

	require.Equal(
		[]int{MicrobiomeStudy2017, CarrotExperiment2021, BionanoFertilizers2024},
		Foundational(),
	)
}

func TestUncited(t *testing.T) {
	require := require.New(t)

	require.Equal([]int{ClimateReview2024}, Uncited())
}
