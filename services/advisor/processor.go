package advisor

import (
	"context"

	"go.uber.org/zap"

	"seatadvisor/models"
)

// Processor is the NLU capability: one conversational turn in, a structured
// result out. Implementations must treat history as read-only.
type Processor interface {
	ProcessMessage(ctx context.Context, message string, history []models.Turn, current models.PreferenceRecord) (*models.ChatResult, error)
}

// KeywordProcessor is the deterministic, always-available implementation
// built on the regex extractor and templated phrasing. It never returns an
// error: a turn it cannot make sense of still yields a clarification reply.
type KeywordProcessor struct {
	extractor *Extractor
	responder *Responder
}

// NewKeywordProcessor wires the extractor to a responder.
func NewKeywordProcessor(chooser PhraseChooser) *KeywordProcessor {
	return &KeywordProcessor{
		extractor: NewExtractor(),
		responder: NewResponder(chooser),
	}
}

// ProcessMessage extracts this turn's preference delta and phrases an
// acknowledgement. Readiness is judged against the merged record, not just
// the delta.
func (p *KeywordProcessor) ProcessMessage(_ context.Context, message string, _ []models.Turn, current models.PreferenceRecord) (*models.ChatResult, error) {
	res := p.extractor.Extract(message)

	merged := current
	merged.Merge(res.Preferences)

	return &models.ChatResult{
		BotMessage:             p.responder.Acknowledge(res, merged),
		Preferences:            res.Preferences,
		ReadyForRecommendation: HasSufficientPreferences(merged),
		Confidence:             res.Confidence,
	}, nil
}

// HybridProcessor tries the external collaborator first and falls back to the
// keyword processor on any failure: timeout, transport error, or a response
// that fails structural validation. A user turn never fails because the
// collaborator misbehaved.
type HybridProcessor struct {
	primary  Processor // optional; nil means keyword-only
	fallback *KeywordProcessor
	logger   *zap.Logger
}

// NewHybridProcessor builds the chain. primary may be nil.
func NewHybridProcessor(primary Processor, fallback *KeywordProcessor, logger *zap.Logger) *HybridProcessor {
	return &HybridProcessor{primary: primary, fallback: fallback, logger: logger}
}

// ProcessMessage runs the chain. The result is never nil and the error is
// always nil from the caller's point of view; the last resort is a neutral
// apology with zero confidence.
func (p *HybridProcessor) ProcessMessage(ctx context.Context, message string, history []models.Turn, current models.PreferenceRecord) (result *models.ChatResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("nlu chain panicked, serving apology", zap.Any("panic", r))
			result, err = apologyResult(), nil
		}
	}()

	if p.primary != nil {
		res, perr := p.primary.ProcessMessage(ctx, message, boundHistory(history), current)
		if perr == nil && res != nil {
			return res, nil
		}
		p.logger.Warn("external NLU failed, falling back to keyword extraction", zap.Error(perr))
	}

	if p.fallback == nil {
		return apologyResult(), nil
	}
	return p.fallback.ProcessMessage(ctx, message, history, current)
}

// boundHistory caps the context handed to the external collaborator at the
// same window the store retains.
func boundHistory(history []models.Turn) []models.Turn {
	if len(history) <= models.MaxHistoryTurns {
		return history
	}
	return history[len(history)-models.MaxHistoryTurns:]
}

func apologyResult() *models.ChatResult {
	return &models.ChatResult{
		BotMessage:             apologyMessage,
		Preferences:            models.PreferenceRecord{},
		ReadyForRecommendation: false,
		Confidence:             0.0,
	}
}
