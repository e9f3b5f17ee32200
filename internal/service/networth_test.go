package service

import (
	"context"
	"errors"
	"testing"

	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
	"github.com/leon37/NetoLedger/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeSuccess(t *testing.T) {
	provider := &fakeProvider{text: `{"resume":"Tu patrimonio creció un 5%."}`}
	assets := &fakeAssets{records: []model.AssetRecord{
		{"userId": "u1", "name": "Fondo indexado", "balance": 12000.0},
	}}
	svc := NewNetworthService(provider, newPrompts(t), assets, 0)

	got, outcome, err := svc.Summarize(context.Background(), "u1", "¿Cómo voy?", "es")
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, outcome.State)
	assert.Equal(t, model.SummaryResult{Resume: "Tu patrimonio creció un 5%.", IAStatus: model.IAStatusSuccess}, got)
	assert.Equal(t, []string{"u1"}, assets.uids)
	require.Equal(t, 1, provider.calls())
	assert.Contains(t, provider.prompts[0], `"name":"Fondo indexado"`)
	assert.Contains(t, provider.prompts[0], "¿Cómo voy?")
	assert.Equal(t, []string{"resume"}, provider.schemas[0].Required)
}

func TestSummarizeEmptyAssetsStillCallsModel(t *testing.T) {
	provider := &fakeProvider{text: `{"resume":"No hay activos registrados."}`}
	svc := NewNetworthService(provider, newPrompts(t), &fakeAssets{}, 0)

	_, outcome, err := svc.Summarize(context.Background(), "u1", "", "")
	require.NoError(t, err)

	assert.Equal(t, StateSuccess, outcome.State)
	require.Equal(t, 1, provider.calls())
	assert.Contains(t, provider.prompts[0], "\n[]\n")
}

func TestSummarizeOffline(t *testing.T) {
	assets := &fakeAssets{}
	svc := NewNetworthService(nil, newPrompts(t), assets, 0)

	got, outcome, err := svc.Summarize(context.Background(), "u1", "q", "es")
	require.NoError(t, err)

	assert.Equal(t, model.SummaryResult{Resume: "ERROR", IAStatus: model.IAStatusOffline}, got)
	assert.Equal(t, StateOffline, outcome.State)
}

func TestSummarizeModelFailures(t *testing.T) {
	tests := []struct {
		name       string
		provider   *fakeProvider
		wantStatus model.IAStatus
	}{
		{
			name:       "provider error",
			provider:   &fakeProvider{err: &llm.ProviderError{Provider: "deepseek", Err: errors.New("401")}},
			wantStatus: model.IAStatusFailed,
		},
		{
			name:       "wrong shape",
			provider:   &fakeProvider{text: `{"summary":"hola"}`},
			wantStatus: model.IAStatusFailedUnknown,
		},
		{
			name:       "deadline",
			provider:   &fakeProvider{err: context.DeadlineExceeded},
			wantStatus: model.IAStatusFailedUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewNetworthService(tt.provider, newPrompts(t), &fakeAssets{}, 0)

			got, outcome, err := svc.Summarize(context.Background(), "u1", "", "es")
			require.NoError(t, err)

			assert.Equal(t, model.FallbackSummary(tt.wantStatus), got)
			assert.True(t, outcome.Failed())
		})
	}
}

func TestSummarizeStoreFailure(t *testing.T) {
	provider := &fakeProvider{text: `{"resume":"x"}`}
	assets := &fakeAssets{err: repository.ErrUpstreamData}
	svc := NewNetworthService(provider, newPrompts(t), assets, 0)

	_, _, err := svc.Summarize(context.Background(), "u1", "", "es")

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrUpstreamData)
	assert.Equal(t, 0, provider.calls())
}
