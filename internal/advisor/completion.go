package advisor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/nikhil/placement-hub/internal/llm"
	"github.com/nikhil/placement-hub/internal/schemas"
)

// completionSpec describes one structured LLM call: the prompt pair, the
// model tier, the schema the payload must satisfy, and the fallback used
// when the model cannot deliver.
type completionSpec struct {
	systemPrompt string
	userPrompt   string
	tier         llm.ModelTier
	schema       string
	fallback     json.RawMessage
}

// completion is the outcome of a structured LLM call. Degraded means the
// result is the spec's fallback; Cause carries the failure that forced it.
type completion struct {
	Result   json.RawMessage
	Degraded bool
	Cause    error
}

// complete runs one structured completion. A gateway failure, unparseable
// payload, or schema violation yields the fallback with a warning log.
// Callers never see a hard error from the model path itself.
func (s *Service) complete(ctx context.Context, spec completionSpec) completion {
	raw, err := s.client.GenerateJSON(ctx, spec.systemPrompt, spec.userPrompt, spec.tier)
	if err != nil {
		s.logger.Warn("llm completion failed, using fallback",
			"tier", spec.tier,
			"rate_limited", errors.Is(err, llm.ErrRateLimited),
			"error", err)
		return completion{Result: spec.fallback, Degraded: true, Cause: err}
	}

	if err := schemas.ValidateString(spec.schema, raw); err != nil {
		s.logger.Warn("llm payload failed schema validation, using fallback",
			"tier", spec.tier,
			"error", err)
		return completion{Result: spec.fallback, Degraded: true, Cause: err}
	}

	return completion{Result: json.RawMessage(raw)}
}
