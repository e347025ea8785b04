package conversion

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"convert-api/internal/utils/apierrors"
	"convert-api/utils/convid"
)

// Outcome is a completed conversion ready for the response builder.
type Outcome struct {
	ConversionID   string
	OutputFormat   Format
	Output         []byte
	Metadata       Metadata
	AppliedOptions []string
	Duration       time.Duration
}

// Service runs the conversion pipeline for one request: registry lookup,
// input validation, option merge, processor invocation, metadata computation.
type Service struct {
	registry *Registry
	log      zerolog.Logger
}

func NewService(registry *Registry, log zerolog.Logger) *Service {
	return &Service{
		registry: registry,
		log:      log.With().Str("component", "conversion-service").Logger(),
	}
}

// Registry exposes the lookup table for enumeration endpoints.
func (s *Service) Registry() *Registry { return s.registry }

// Convert dispatches one conversion. Processor panics or errors never leak
// raw: every failure comes back as a typed apierrors.Error.
func (s *Service) Convert(ctx context.Context, key Key, input []byte, rawOptions []string) (*Outcome, *apierrors.Error) {
	entry, ok := s.registry.Lookup(key)
	if !ok {
		return nil, apierrors.BadRequest(apierrors.CodeUnsupportedConversion,
			fmt.Sprintf("conversion %q is not supported", key))
	}

	if err := ValidateFormat(input, entry.Input); err != nil {
		return nil, apierrors.BadRequest(apierrors.CodeInvalidFileFormat, err.Error())
	}

	opts, unknown := ParseOptions(rawOptions)
	if len(unknown) > 0 {
		s.log.Warn().Strs("flags", unknown).Str("conversion", key.String()).
			Msg("ignoring unknown processing options")
	}
	params := entry.Defaults.WithOptions(opts)

	id := convid.New()
	start := time.Now()
	s.log.Info().
		Str("conversion_id", id).
		Str("conversion", key.String()).
		Int("input_bytes", len(input)).
		Strs("options", rawOptions).
		Msg("conversion started")

	result, err := s.invoke(ctx, entry, input, params)
	if err != nil {
		s.log.Error().Err(err).Str("conversion_id", id).Msg("processor failed")
		return nil, apierrors.Internal(apierrors.CodeInternalError,
			fmt.Sprintf("conversion failed: %v", err), err)
	}
	if result == nil || len(result.Output) == 0 {
		s.log.Error().Str("conversion_id", id).Msg("processor returned empty output")
		return nil, apierrors.Internal(apierrors.CodeProcessingError,
			"conversion produced no output", nil)
	}

	duration := time.Since(start)
	applied := make([]string, 0, len(opts))
	for _, o := range opts {
		applied = append(applied, string(o))
	}

	original := result.Original
	original.Format = entry.Input
	original.Size = int64(len(input))
	final := result.Final
	final.Format = entry.Output
	final.Size = int64(len(result.Output))

	ratio := 0.0
	if original.Size > 0 {
		ratio = float64(final.Size) / float64(original.Size)
	}

	outcome := &Outcome{
		ConversionID:   id,
		OutputFormat:   entry.Output,
		Output:         result.Output,
		AppliedOptions: applied,
		Duration:       duration,
		Metadata: Metadata{
			Original: original,
			Final:    final,
			Processing: ProcessingInfo{
				AppliedOptions:   applied,
				SizeChange:       final.Size - original.Size,
				CompressionRatio: ratio,
				DurationMs:       duration.Milliseconds(),
			},
		},
	}

	s.log.Info().
		Str("conversion_id", id).
		Str("conversion", key.String()).
		Int64("output_bytes", final.Size).
		Dur("duration", duration).
		Msg("conversion completed")

	return outcome, nil
}

// invoke shields the dispatcher from panicking codec libraries.
func (s *Service) invoke(ctx context.Context, entry *Entry, input []byte, params Params) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("processor panic: %v", r)
		}
	}()
	return entry.Processor.Convert(ctx, input, params)
}
