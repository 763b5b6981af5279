package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Harshitk-cp/logos/internal/domain"
	"github.com/Harshitk-cp/logos/internal/knowledge"
	"github.com/Harshitk-cp/logos/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const adHominem = "Eres un idiota, por eso tu argumento sobre economía está mal"

func TestAnalysisService_AnalyzePersists(t *testing.T) {
	engine := newTestEngine(t)
	cases, profiles := newMockCaseStore(), newMockProfileStore()
	m := metrics.New()
	s := NewAnalysisService(engine, m, zap.NewNop())
	s.SetCaseStore(cases)
	s.SetProfileStore(profiles)

	report, err := s.Analyze(context.Background(), adHominem, &domain.QueryContext{UserID: "ana"})
	require.NoError(t, err)
	require.NotNil(t, report)
	assert.NotEmpty(t, report.Fallacies())

	assert.Equal(t, 1, cases.len())
	p, err := profiles.GetByUserID(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ConsultCount)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("ok")))
}

func TestAnalysisService_InvalidInputIsNotAnError(t *testing.T) {
	cases := newMockCaseStore()
	s := NewAnalysisService(newTestEngine(t), nil, zap.NewNop())
	s.SetCaseStore(cases)

	for _, text := range []string{"", "   \n\t", "ab"} {
		report, err := s.Analyze(context.Background(), text, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, report.InputError, "text %q", text)
	}
	assert.Zero(t, cases.len())
}

func TestAnalysisService_ContextErrors(t *testing.T) {
	m := metrics.New()
	s := NewAnalysisService(newTestEngine(t), m, zap.NewNop())

	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	_, err := s.Analyze(expired, adHominem, nil)
	assert.ErrorIs(t, err, ErrQueryTimeout)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AnalysesTotal.WithLabelValues("timeout")))

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Analyze(cancelled, adHominem, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, s.Statistics().TotalProcessed)
}

func TestAnalysisService_StoreFailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cases := &failingCaseStore{}
	cases.On("Create", mock.Anything, mock.AnythingOfType("*domain.CaseRecord")).Return(errStoreDown)

	s := NewAnalysisService(newTestEngine(t), nil, zap.New(core))
	s.SetCaseStore(cases)

	report, err := s.Analyze(context.Background(), adHominem, nil)
	require.NoError(t, err)
	require.NotNil(t, report)
	cases.AssertExpectations(t)

	entries := logs.FilterMessage("failed to persist case record").All()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, s.Statistics().TotalProcessed)
}

func TestAnalysisService_ProcessBatch(t *testing.T) {
	s := NewAnalysisService(newTestEngine(t), nil, zap.NewNop())
	s.SetConcurrency(3)

	items := make([]BatchItem, 12)
	for i := range items {
		items[i] = BatchItem{Text: fmt.Sprintf("Todos los perros del barrio %d ladran, por lo tanto ladran mucho.", i)}
	}
	items[5] = BatchItem{Text: ""}

	results, err := s.ProcessBatch(context.Background(), items)
	require.NoError(t, err)
	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		require.NotNil(t, r.Report)
		assert.Equal(t, items[i].Text, r.Report.Query)
	}
	assert.Equal(t, domain.InputEmpty, results[5].Report.InputError)
	assert.Equal(t, len(items)-1, s.Statistics().TotalProcessed)
}

func TestAnalysisService_ProcessBatchErrors(t *testing.T) {
	s := NewAnalysisService(newTestEngine(t), nil, zap.NewNop())

	_, err := s.ProcessBatch(context.Background(), nil)
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = s.ProcessBatch(context.Background(), make([]BatchItem, MaxBatchSize+1))
	assert.ErrorIs(t, err, ErrBatchTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.ProcessBatch(ctx, []BatchItem{{Text: adHominem}, {Text: adHominem}})
	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
}

func TestAnalysisService_SimilarCases(t *testing.T) {
	t.Run("in memory", func(t *testing.T) {
		s := NewAnalysisService(newTestEngine(t), nil, zap.NewNop())
		_, err := s.Analyze(context.Background(), adHominem, nil)
		require.NoError(t, err)

		got, err := s.SimilarCases(context.Background(), "La economía del país necesita reformas profundas", 3)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].Referenced)
	})

	t.Run("store", func(t *testing.T) {
		cases := &failingCaseStore{}
		want := []domain.CaseWithScore{{Distance: 0.1}}
		cases.On("FindSimilar", mock.Anything, mock.MatchedBy(func(v []float32) bool { return len(v) == 9 }), 2).Return(want, nil).Once()
		cases.On("FindSimilar", mock.Anything, mock.Anything, 5).Return(nil, errStoreDown).Once()

		s := NewAnalysisService(newTestEngine(t), nil, zap.NewNop())
		s.SetCaseStore(cases)

		got, err := s.SimilarCases(context.Background(), adHominem, 2)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		_, err = s.SimilarCases(context.Background(), adHominem, 0)
		assert.ErrorIs(t, err, errStoreDown)

		got, err = s.SimilarCases(context.Background(), "", 2)
		require.NoError(t, err)
		assert.Nil(t, got)
		cases.AssertExpectations(t)
	})
}

func TestAnalysisService_StatisticsUpdatesGauges(t *testing.T) {
	m := metrics.New()
	s := NewAnalysisService(newTestEngine(t), m, zap.NewNop())
	_, err := s.Analyze(context.Background(), adHominem, nil)
	require.NoError(t, err)

	stats := s.Statistics()
	assert.Equal(t, 1, stats.HistoryLength)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HistoryLength))
}

func TestAnalysisService_Diagnose(t *testing.T) {
	s := NewAnalysisService(newTestEngine(t), nil, zap.NewNop())
	d := s.Diagnose(adHominem)
	assert.Contains(t, d.FallacyIDs, knowledge.IDAdHominem)
	assert.Zero(t, s.Statistics().TotalProcessed)
}
