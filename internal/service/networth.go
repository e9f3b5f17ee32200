package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
	"github.com/leon37/NetoLedger/internal/prompt"
	"github.com/leon37/NetoLedger/internal/repository"
)

var networthSchema = llm.MustResponseSchema("networth_resume",
	[]string{"resume"},
	[]string{"resume"},
)

// NetworthService summarizes a user's assets in answer to a question.
type NetworthService struct {
	gen     generator
	prompts *prompt.Builder
	assets  repository.AssetRepo
}

func NewNetworthService(provider llm.Provider, prompts *prompt.Builder, assets repository.AssetRepo, timeout time.Duration) *NetworthService {
	return &NetworthService{
		gen:     generator{provider: provider, timeout: timeout},
		prompts: prompts,
		assets:  assets,
	}
}

// Summarize fetches the user's assets and asks the model about them.
// The returned error is only set when the asset store fails; every model
// problem is folded into the fallback result and its Outcome.
func (s *NetworthService) Summarize(ctx context.Context, uid, question, locale string) (model.SummaryResult, Outcome, error) {
	// 1. Load the user's assets
	records, err := s.assets.FindByUser(ctx, uid)
	if err != nil {
		return model.SummaryResult{}, Outcome{}, fmt.Errorf("load assets of %s: %w", uid, err)
	}

	// 2. Serialize them for the prompt; no assets is "[]", not an error
	data, err := repository.SerializeRecords(records)
	if err != nil {
		return model.SummaryResult{}, Outcome{}, err
	}

	if s.gen.offline() {
		slog.Error("No generation API key configured, returning fallback resume")
		return model.FallbackSummary(model.IAStatusOffline), offline(), nil
	}

	// 3. Ask the model
	p := s.prompts.Networth(data, question, locale)
	fields, err := s.gen.generate(ctx, p, networthSchema)
	if err != nil {
		o := failed(err)
		slog.Error("Net-worth summary failed", "uid", uid, "kind", o.Kind, "error", err)
		return model.FallbackSummary(o.Status()), o, nil
	}

	result := model.SummaryResult{
		Resume:   fields["resume"].(string),
		IAStatus: model.IAStatusSuccess,
	}
	delete(fields, "resume")
	delete(fields, "ia_status")
	if len(fields) > 0 {
		result.Extra = fields
	}

	slog.Debug("Net-worth summary generated", "uid", uid, "assets", len(records))
	return result, success(), nil
}
