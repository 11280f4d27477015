package anchors

import (
	"context"
	"log/slog"

	"trailcut/internal/film"
	"trailcut/internal/services/llm"
)

const (
	// defaultChunkSize balances context (enough events to see an arc) against
	// the model's generation window.
	defaultChunkSize = 75
	// spanToleranceS is how far outside its chunk a reply timestamp may fall
	// before the whole chunk reply is discarded as a hallucination.
	spanToleranceS = 10.0
)

// TextGenerator is the narrow capability the extractor needs from a language
// model. It is held per extractor, never as global state, and may be absent
// entirely.
type TextGenerator interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Extractor derives structural anchors from a dialogue transcript.
type Extractor struct {
	generator TextGenerator
	aggregate Aggregator
	chunkSize int
	logger    *slog.Logger
}

// ExtractorOption customizes an Extractor.
type ExtractorOption func(*Extractor)

// WithAggregator overrides the default median aggregation.
func WithAggregator(agg Aggregator) ExtractorOption {
	return func(e *Extractor) {
		if agg != nil {
			e.aggregate = agg
		}
	}
}

// WithChunkSize overrides the events-per-chunk partition size.
func WithChunkSize(size int) ExtractorOption {
	return func(e *Extractor) {
		if size > 0 {
			e.chunkSize = size
		}
	}
}

// NewExtractor builds an extractor. generator may be nil, in which case
// Extract always returns heuristic anchors.
func NewExtractor(generator TextGenerator, logger *slog.Logger, opts ...ExtractorOption) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Extractor{
		generator: generator,
		aggregate: Median,
		chunkSize: defaultChunkSize,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type chunkReply struct {
	BeginT      float64 `json:"begin_t"`
	EscalationT float64 `json:"escalation_t"`
	ClimaxT     float64 `json:"climax_t"`
}

// Extract analyzes the dialogue transcript and returns structural anchors.
// It never fails: an absent capability, unparsable replies, or rejected
// chunks all degrade to the fixed-fraction heuristic.
func (e *Extractor) Extract(ctx context.Context, events []film.DialogueEvent, durationS float64) Anchors {
	if e.generator == nil || len(events) == 0 {
		e.logger.Debug("structural analysis skipped, using heuristic anchors",
			"events", len(events), "generator", e.generator != nil)
		return Heuristic(durationS)
	}

	var survived []chunkReply
	chunks := chunkEvents(events, e.chunkSize)
	for i, chunk := range chunks {
		reply, ok := e.analyzeChunk(ctx, chunk)
		if !ok {
			e.logger.Warn("transcript chunk discarded", "chunk", i, "chunks", len(chunks))
			continue
		}
		survived = append(survived, reply)
	}

	if len(survived) == 0 {
		e.logger.Warn("all transcript chunks failed, using heuristic anchors")
		return Heuristic(durationS)
	}

	begins := make([]float64, len(survived))
	escalations := make([]float64, len(survived))
	climaxes := make([]float64, len(survived))
	for i, r := range survived {
		begins[i] = r.BeginT
		escalations[i] = r.EscalationT
		climaxes[i] = r.ClimaxT
	}
	result := Anchors{
		BeginT:      round2(e.aggregate(begins)),
		EscalationT: round2(e.aggregate(escalations)),
		ClimaxT:     round2(e.aggregate(climaxes)),
		Source:      SourceModel,
	}
	e.logger.Info("structural anchors extracted",
		"begin_t", result.BeginT, "escalation_t", result.EscalationT, "climax_t", result.ClimaxT,
		"chunks_used", len(survived), "chunks_total", len(chunks))
	return result
}

func (e *Extractor) analyzeChunk(ctx context.Context, chunk []film.DialogueEvent) (chunkReply, bool) {
	var reply chunkReply
	content, err := e.generator.CompleteJSON(ctx, structuralPrompt, formatChunk(chunk))
	if err != nil {
		e.logger.Debug("chunk completion failed", "error", err)
		return reply, false
	}
	if err := llm.DecodeJSON(content, &reply); err != nil {
		e.logger.Debug("chunk reply unparsable", "error", err)
		return reply, false
	}
	if !replyWithinSpan(reply, chunk) {
		e.logger.Debug("chunk reply outside its own span, discarded",
			"begin_t", reply.BeginT, "escalation_t", reply.EscalationT, "climax_t", reply.ClimaxT)
		return reply, false
	}
	return reply, true
}

// replyWithinSpan guards against hallucinated timestamps: every value must
// fall inside the chunk's own span, give or take the tolerance.
func replyWithinSpan(reply chunkReply, chunk []film.DialogueEvent) bool {
	low := chunk[0].StartS - spanToleranceS
	high := chunk[len(chunk)-1].EndS + spanToleranceS
	for _, v := range []float64{reply.BeginT, reply.EscalationT, reply.ClimaxT} {
		if v < low || v > high {
			return false
		}
	}
	return true
}

func chunkEvents(events []film.DialogueEvent, size int) [][]film.DialogueEvent {
	var chunks [][]film.DialogueEvent
	for start := 0; start < len(events); start += size {
		end := start + size
		if end > len(events) {
			end = len(events)
		}
		chunks = append(chunks, events[start:end])
	}
	return chunks
}
