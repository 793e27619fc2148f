package classifier

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"
)

// Artifact is the on-disk form of a trained binary classifier. It is
// produced by an offline training job and gob-encoded into a single file;
// this service only ever reads it.
type Artifact struct {
	// Features is the exact ordered list of encoded feature names the
	// model was trained on. Input vectors must follow this order.
	Features []string
	// Means and Scales standardize each feature before scoring. Either
	// both are empty (no standardization) or both match len(Features).
	Means  []float64
	Scales []float64
	// Coefficients and Intercept parameterize the logistic scorer.
	Coefficients []float64
	Intercept    float64
	// PositiveLabel is the class label reported when the class-1
	// probability crosses the decision threshold. Conventionally 1.
	PositiveLabel int
}

// Classifier scores fixed-order feature vectors against a loaded Artifact.
// It is immutable after construction and safe for concurrent use.
type Classifier struct {
	art Artifact
}

// Load reads and decodes a gob-encoded Artifact from path. A missing or
// undecodable file is returned as an error so the caller can refuse to
// start; there is no retry or reload.
func Load(path string) (*Classifier, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()

	var art Artifact
	if err := gob.NewDecoder(f).Decode(&art); err != nil {
		return nil, fmt.Errorf("decode model artifact %s: %w", path, err)
	}

	return New(art)
}

// New validates an Artifact and wraps it in a Classifier. Dimension
// mismatches count as a corrupt artifact.
func New(art Artifact) (*Classifier, error) {
	if len(art.Features) == 0 {
		return nil, fmt.Errorf("model artifact declares no features")
	}
	if len(art.Coefficients) != len(art.Features) {
		return nil, fmt.Errorf("model artifact has %d coefficients for %d features",
			len(art.Coefficients), len(art.Features))
	}
	if len(art.Means) != len(art.Scales) {
		return nil, fmt.Errorf("model artifact has %d means for %d scales",
			len(art.Means), len(art.Scales))
	}
	if len(art.Means) != 0 && len(art.Means) != len(art.Features) {
		return nil, fmt.Errorf("model artifact has %d means for %d features",
			len(art.Means), len(art.Features))
	}
	for i, s := range art.Scales {
		if s == 0 {
			return nil, fmt.Errorf("model artifact has zero scale for feature %q", art.Features[i])
		}
	}
	return &Classifier{art: art}, nil
}

// Features returns the feature order the model expects.
func (c *Classifier) Features() []string {
	return c.art.Features
}

// PredictProba returns the class-1 probability for one feature vector.
func (c *Classifier) PredictProba(vector []float64) (float64, error) {
	if len(vector) != len(c.art.Features) {
		return 0, fmt.Errorf("feature vector has %d values, model expects %d",
			len(vector), len(c.art.Features))
	}

	z := c.art.Intercept
	for i, v := range vector {
		if len(c.art.Means) != 0 {
			v = (v - c.art.Means[i]) / c.art.Scales[i]
		}
		z += c.art.Coefficients[i] * v
	}

	return 1 / (1 + math.Exp(-z)), nil
}

// Predict returns the class label for one feature vector: the positive
// label when the class-1 probability reaches 0.5, otherwise 0.
func (c *Classifier) Predict(vector []float64) (int, error) {
	p, err := c.PredictProba(vector)
	if err != nil {
		return 0, err
	}
	if p >= 0.5 {
		return c.art.PositiveLabel, nil
	}
	return 0, nil
}
