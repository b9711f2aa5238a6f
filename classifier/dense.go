package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// DenseModel is a single fully connected layer over the flattened
// image: scores = W*x + b, one row of weights per label. Enough for the
// small category set this service ships with; anything heavier should
// come in behind the Model interface instead.
type DenseModel struct {
	Weights [][]float32 `json:"weights"`
	Bias    []float32   `json:"bias"`
}

// LoadDenseModel reads model weights from a JSON file.
func LoadDenseModel(path string) (*DenseModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read model %s: %w", path, err)
	}

	var m DenseModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("classifier: parse model %s: %w", path, err)
	}
	if len(m.Weights) == 0 || len(m.Weights) != len(m.Bias) {
		return nil, fmt.Errorf("classifier: model %s has %d weight rows and %d biases", path, len(m.Weights), len(m.Bias))
	}
	return &m, nil
}

func (m *DenseModel) Predict(input []float32) ([]float32, error) {
	scores := make([]float32, len(m.Weights))
	for i, row := range m.Weights {
		if len(row) != len(input) {
			return nil, fmt.Errorf("classifier: weight row %d has %d values, input has %d", i, len(row), len(input))
		}
		s := m.Bias[i]
		for j, w := range row {
			s += w * input[j]
		}
		scores[i] = s
	}
	return scores, nil
}
