package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofiler/internal/models"
)

type fakeEngine struct {
	text  string
	err   error
	calls int
}

func (f *fakeEngine) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestParseAnswersFromText(t *testing.T) {
	svc, err := NewOCRService(&fakeEngine{}, 0)
	require.NoError(t, err)

	tests := []struct {
		name string
		text string
		want models.Answers
	}{
		{
			name: "one field per line",
			text: "Age: 42\nSmoker: yes\nExercise: rarely\nDiet: High sugar",
			want: models.Answers{"age": 42, "smoker": true, "exercise": "rarely", "diet": "high sugar"},
		},
		{
			name: "comma separated with aliases",
			text: "age = 61 years, Smoking: no; Physical activity: daily walks, Alcohol intake: weekly",
			want: models.Answers{"age": 61, "smoker": false, "exercise": "daily walks", "alcohol": "weekly"},
		},
		{
			name: "unreadable values are dropped",
			text: "Age: unknown\nSmoker: maybe\nDiet:\nName: Jane",
			want: models.Answers{},
		},
		{
			name: "first occurrence wins",
			text: "Age: 30\nAge: 50",
			want: models.Answers{"age": 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseAnswersFromText(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractTextUsesCache(t *testing.T) {
	engine := &fakeEngine{text: "Age: 42"}
	svc, err := NewOCRService(engine, time.Minute)
	require.NoError(t, err)
	defer svc.Close()

	for i := 0; i < 3; i++ {
		text, err := svc.ExtractText(context.Background(), []byte("same image"), "image/png")
		require.NoError(t, err)
		assert.Equal(t, "Age: 42", text)
	}
	assert.Equal(t, 1, engine.calls)

	_, err = svc.ExtractText(context.Background(), []byte("other image"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, 2, engine.calls)
}

func TestExtractTextWrapsEngineError(t *testing.T) {
	engine := &fakeEngine{err: errors.New("engine down")}
	svc, err := NewOCRService(engine, time.Minute)
	require.NoError(t, err)
	defer svc.Close()

	_, err = svc.ExtractText(context.Background(), []byte("img"), "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.err)
}
