package recipe_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-recipe/pkg/recipe/frame"
	"github.com/askiada/go-recipe/pkg/recipe/model"
)

func newFrame(t *testing.T, order []string, cols map[string][]any) *frame.Frame {
	t.Helper()

	frm, err := frame.FromColumns(order, cols)
	require.NoError(t, err)

	return frm
}

func column(t *testing.T, data model.Dataset, name string) []any {
	t.Helper()

	col, ok := data.Column(name)
	require.True(t, ok, "column %q", name)

	return col
}

// recorder captures the datasets a fake step was trained on. It is shared
// between a fake step and its trained copies.
type recorder struct {
	trainedOn []model.Dataset
}

// fakeStep is a configurable step collaborator.
type fakeStep struct {
	name      string
	role      string
	trained   bool
	trainErr  error
	applyErr  error
	transform func(data model.Dataset) (model.Dataset, error)
	rec       *recorder
}

func (s *fakeStep) Train(data model.Dataset) (model.Step, error) {
	if s.rec != nil {
		s.rec.trainedOn = append(s.rec.trainedOn, data)
	}
	if s.trainErr != nil {
		return nil, s.trainErr
	}

	clone := *s
	clone.trained = true

	return &clone, nil
}

func (s *fakeStep) Apply(data model.Dataset) (model.Dataset, error) {
	if s.applyErr != nil {
		return nil, s.applyErr
	}
	if s.transform == nil {
		return data, nil
	}

	return s.transform(data)
}

func (s *fakeStep) Trained() bool {
	return s.trained
}

func (s *fakeStep) Role() string {
	return s.role
}

func (s *fakeStep) Describe() string {
	return s.name
}

var _ model.Step = (*fakeStep)(nil)

// addColumn returns a transform deriving one extra column.
func addColumn(name string, values []any) func(data model.Dataset) (model.Dataset, error) {
	return func(data model.Dataset) (model.Dataset, error) {
		return frame.FromDataset(data).WithColumn(name, values), nil
	}
}

// captureHandler is a slog handler recording every message it receives.
type captureHandler struct {
	mu       sync.Mutex
	messages []string
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, record.Message)

	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}

func (h *captureHandler) all() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	messages := make([]string, len(h.messages))
	copy(messages, h.messages)

	return messages
}
