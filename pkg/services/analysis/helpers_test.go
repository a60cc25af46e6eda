package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-lab/pkg/models/domain"
	"github.com/de-tools/report-lab/pkg/services/dataset"
)

func sampleDataset(t *testing.T, seed int64, n int) domain.Dataset {
	t.Helper()

	gen, err := dataset.NewGenerator(dataset.DefaultParams())
	require.NoError(t, err)

	ds, err := gen.Generate(seed, n)
	require.NoError(t, err)
	return ds
}
