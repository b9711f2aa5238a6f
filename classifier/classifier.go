package classifier

import (
	"context"
	"errors"
)

// Unknown is the fallback category when no model is configured or the
// image cannot be classified.
const Unknown = "Unknown"

// DefaultLabels is the category set the bundled model was trained on,
// in output-index order.
var DefaultLabels = []string{"Pothole", "Garbage", "Streetlight", "Waterlogging", "Other"}

// ErrUndecodable is returned when a stored blob is not a readable image.
var ErrUndecodable = errors.New("classifier: image cannot be decoded")

// Classifier assigns a category label to a stored image.
type Classifier interface {
	Classify(ctx context.Context, blobKey string) (string, error)
}

// Model runs inference over a flattened, normalized grayscale image and
// returns a score per label. The engine behind it is injected; the
// service never inspects it.
type Model interface {
	Predict(input []float32) ([]float32, error)
}

// Null is the classifier used when no model is configured. It labels
// everything Unknown without touching the image. Degraded mode, not an
// error.
type Null struct{}

func (Null) Classify(context.Context, string) (string, error) {
	return Unknown, nil
}
