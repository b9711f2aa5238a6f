package classifier

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/fixmycity/api-go/storage"
)

// inputSize is the square resolution the model expects; the flattened
// input vector has inputSize*inputSize elements.
const inputSize = 240

// ImageClassifier loads an image from the blob store, preprocesses it
// and runs the injected model over it.
type ImageClassifier struct {
	Store  storage.BlobStore
	Model  Model
	Labels []string
}

func NewImageClassifier(store storage.BlobStore, model Model, labels []string) *ImageClassifier {
	if len(labels) == 0 {
		labels = DefaultLabels
	}
	return &ImageClassifier{Store: store, Model: model, Labels: labels}
}

func (ic *ImageClassifier) Classify(ctx context.Context, blobKey string) (string, error) {
	data, err := ic.Store.Retrieve(ctx, blobKey)
	if err != nil {
		return "", fmt.Errorf("classifier: load %s: %w", blobKey, err)
	}

	input, err := Preprocess(data)
	if err != nil {
		return "", err
	}

	scores, err := ic.Model.Predict(input)
	if err != nil {
		return "", fmt.Errorf("classifier: predict: %w", err)
	}
	if len(scores) == 0 {
		return "", fmt.Errorf("classifier: model returned no scores")
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	if best >= len(ic.Labels) {
		return "", fmt.Errorf("classifier: score index %d outside label set", best)
	}
	return ic.Labels[best], nil
}

// Preprocess decodes an image, scales it to inputSize x inputSize,
// converts to single-channel intensity and normalizes to [0,1].
func Preprocess(data []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ErrUndecodable
	}

	gray := image.NewGray(image.Rect(0, 0, inputSize, inputSize))
	xdraw.ApproxBiLinear.Scale(gray, gray.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	input := make([]float32, inputSize*inputSize)
	for i, px := range gray.Pix {
		input[i] = float32(px) / 255.0
	}
	return input, nil
}
