package classifier

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validArtifact() Artifact {
	return Artifact{
		Features:      []string{"Credit_History", "ApplicantIncome"},
		Means:         []float64{0.8, 5000},
		Scales:        []float64{0.4, 3000},
		Coefficients:  []float64{2.5, 0.3},
		Intercept:     0.1,
		PositiveLabel: 1,
	}
}

func writeArtifact(t *testing.T, art Artifact) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.gob")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, gob.NewEncoder(f).Encode(art))
	require.NoError(t, f.Close())
	return path
}

func TestLoad(t *testing.T) {
	path := writeArtifact(t, validArtifact())

	clf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Credit_History", "ApplicantIncome"}, clf.Features())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.gob"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "open model artifact")
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob stream"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "decode model artifact")
}

func TestNewRejectsBadArtifacts(t *testing.T) {
	noFeatures := validArtifact()
	noFeatures.Features = nil
	noFeatures.Coefficients = nil
	noFeatures.Means = nil
	noFeatures.Scales = nil
	_, err := New(noFeatures)
	assert.Error(t, err)

	badCoeffs := validArtifact()
	badCoeffs.Coefficients = []float64{1}
	_, err = New(badCoeffs)
	assert.Error(t, err)

	badScaling := validArtifact()
	badScaling.Means = []float64{0.8}
	_, err = New(badScaling)
	assert.Error(t, err)

	zeroScale := validArtifact()
	zeroScale.Scales = []float64{0.4, 0}
	_, err = New(zeroScale)
	assert.Error(t, err)
}

func TestPredictProbaRange(t *testing.T) {
	clf, err := New(validArtifact())
	require.NoError(t, err)

	for _, vec := range [][]float64{
		{1, 5000},
		{0, 100},
		{1, 100000},
		{0, 0},
	} {
		p, err := clf.PredictProba(vec)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestPredictThreshold(t *testing.T) {
	// Single unscaled feature with unit weight: label flips at 0.
	clf, err := New(Artifact{
		Features:      []string{"x"},
		Coefficients:  []float64{1},
		PositiveLabel: 1,
	})
	require.NoError(t, err)

	label, err := clf.Predict([]float64{4})
	require.NoError(t, err)
	assert.Equal(t, 1, label)

	label, err = clf.Predict([]float64{-4})
	require.NoError(t, err)
	assert.Equal(t, 0, label)

	// p == 0.5 exactly counts as the positive class.
	label, err = clf.Predict([]float64{0})
	require.NoError(t, err)
	assert.Equal(t, 1, label)
}

func TestPredictVectorLengthMismatch(t *testing.T) {
	clf, err := New(validArtifact())
	require.NoError(t, err)

	_, err = clf.PredictProba([]float64{1})
	assert.Error(t, err)

	_, err = clf.Predict([]float64{1, 2, 3})
	assert.Error(t, err)
}

func TestStandardizationApplied(t *testing.T) {
	scaled, err := New(Artifact{
		Features:      []string{"x"},
		Means:         []float64{10},
		Scales:        []float64{2},
		Coefficients:  []float64{1},
		PositiveLabel: 1,
	})
	require.NoError(t, err)

	// x == mean scores exactly the intercept (0 here): p == 0.5.
	p, err := scaled.PredictProba([]float64{10})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p, 1e-12)

	pHigh, err := scaled.PredictProba([]float64{14})
	require.NoError(t, err)
	assert.Greater(t, pHigh, p)
}
