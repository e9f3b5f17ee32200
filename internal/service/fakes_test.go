package service

import (
	"context"
	"sync"

	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
)

// fakeProvider answers every call with the same text or error.
type fakeProvider struct {
	mu      sync.Mutex
	text    string
	err     error
	prompts []string
	schemas []*llm.ResponseSchema
}

func (f *fakeProvider) GenerateJSON(_ context.Context, prompt string, schema *llm.ResponseSchema) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	f.schemas = append(f.schemas, schema)
	return f.text, f.err
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

type fakeAssets struct {
	records []model.AssetRecord
	err     error
	uids    []string
}

func (f *fakeAssets) FindByUser(_ context.Context, uid string) ([]model.AssetRecord, error) {
	f.uids = append(f.uids, uid)
	return f.records, f.err
}

// blockingProvider waits for the call context to end, the way the SDKs do
// when the model never answers.
type blockingProvider struct {
	hadDeadline bool
}

func (b *blockingProvider) GenerateJSON(ctx context.Context, _ string, _ *llm.ResponseSchema) (string, error) {
	_, b.hadDeadline = ctx.Deadline()
	<-ctx.Done()
	return "", &llm.ProviderError{Provider: "fake", Err: ctx.Err()}
}
