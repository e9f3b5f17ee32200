package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/leon37/NetoLedger/internal/infrastructure/llm"
	"github.com/leon37/NetoLedger/internal/model"
	"github.com/leon37/NetoLedger/internal/prompt"
)

var categorySchema = llm.MustResponseSchema("transaction_category",
	[]string{"idcategoria", "categoria", "subcategoria"},
	[]string{"idcategoria", "categoria", "subcategoria"},
)

// ClassifyService assigns a category to a transaction description.
type ClassifyService struct {
	gen     generator
	prompts *prompt.Builder
}

// NewClassifyService builds the service. provider may be nil: every call then answers
// OFFLINE without touching the network.
func NewClassifyService(provider llm.Provider, prompts *prompt.Builder, timeout time.Duration) *ClassifyService {
	return &ClassifyService{
		gen:     generator{provider: provider, timeout: timeout},
		prompts: prompts,
	}
}

// Classify never fails from the caller's point of view: any problem yields
// the fallback category, and the Outcome says what happened.
func (s *ClassifyService) Classify(ctx context.Context, description, locale string) (model.ClassificationResult, Outcome) {
	if s.gen.offline() {
		slog.Error("No generation API key configured, returning fallback category")
		return model.FallbackClassification(model.IAStatusOffline), offline()
	}

	// 1. Render the prompt
	p := s.prompts.Category(description, locale)

	// 2. Call the model and check the answer against the schema
	fields, err := s.gen.generate(ctx, p, categorySchema)
	if err != nil {
		o := failed(err)
		slog.Error("Transaction classification failed", "kind", o.Kind, "error", err)
		return model.FallbackClassification(o.Status()), o
	}

	// 3. Pass the provider fields through untouched
	result := model.ClassificationResult{
		IDCategoria:  fields["idcategoria"].(string),
		Categoria:    fields["categoria"].(string),
		Subcategoria: fields["subcategoria"].(string),
		IAStatus:     model.IAStatusSuccess,
	}
	delete(fields, "idcategoria")
	delete(fields, "categoria")
	delete(fields, "subcategoria")
	delete(fields, "ia_status")
	if len(fields) > 0 {
		result.Extra = fields
	}

	slog.Debug("Transaction classified", "description", description, "idcategoria", result.IDCategoria)
	return result, success()
}
