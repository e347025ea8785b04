package responses

import (
	"encoding/base64"
	"fmt"
	"time"

	"convert-api/internal/domain/conversion"
)

// ConvertResponse is the success envelope for a completed conversion. The
// output travels inline as a base64 data URI; nothing is persisted
// server-side.
type ConvertResponse struct {
	Success          bool                `json:"success"`
	ConversionID     string              `json:"conversionId"`
	Image            string              `json:"image"`
	Metadata         conversion.Metadata `json:"metadata"`
	OriginalSize     int64               `json:"originalSize"`
	ProcessedSize    int64               `json:"processedSize"`
	ProcessingTime   int64               `json:"processingTime"`
	AppliedOptions   []string            `json:"appliedOptions"`
	CompressionRatio float64             `json:"compressionRatio"`
}

// BuildConvertResponse wraps a conversion outcome into the success envelope.
func BuildConvertResponse(outcome *conversion.Outcome) *ConvertResponse {
	dataURI := fmt.Sprintf("data:%s;base64,%s",
		outcome.OutputFormat.MIME(),
		base64.StdEncoding.EncodeToString(outcome.Output))

	applied := outcome.AppliedOptions
	if applied == nil {
		applied = []string{}
	}

	return &ConvertResponse{
		Success:          true,
		ConversionID:     outcome.ConversionID,
		Image:            dataURI,
		Metadata:         outcome.Metadata,
		OriginalSize:     outcome.Metadata.Original.Size,
		ProcessedSize:    outcome.Metadata.Final.Size,
		ProcessingTime:   outcome.Duration.Milliseconds(),
		AppliedOptions:   applied,
		CompressionRatio: outcome.Metadata.Processing.CompressionRatio,
	}
}

// HealthResponse is the liveness envelope.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
	Version   string `json:"version"`
}

// BuildHealthResponse reports the service as healthy.
func BuildHealthResponse(service, version string) *HealthResponse {
	return &HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Service:   service,
		Version:   version,
	}
}

// FormatsResponse enumerates the registered conversions.
type FormatsResponse struct {
	Conversions []string `json:"conversions"`
	Inputs      []string `json:"inputs"`
	Outputs     []string `json:"outputs"`
}

// BuildFormatsResponse lists registry contents for discovery clients.
func BuildFormatsResponse(registry *conversion.Registry) *FormatsResponse {
	keys := registry.Keys()
	conversions := make([]string, 0, len(keys))
	inputSeen := map[conversion.Format]bool{}
	outputSeen := map[conversion.Format]bool{}
	var inputs, outputs []string
	for _, key := range keys {
		conversions = append(conversions, key.String())
		in, out, err := conversion.ParseKey(key)
		if err != nil {
			continue
		}
		if !inputSeen[in] {
			inputSeen[in] = true
			inputs = append(inputs, in.String())
		}
		if !outputSeen[out] {
			outputSeen[out] = true
			outputs = append(outputs, out.String())
		}
	}
	return &FormatsResponse{Conversions: conversions, Inputs: inputs, Outputs: outputs}
}

// RateLimitStatusResponse reports the caller's current quota usage.
type RateLimitStatusResponse struct {
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
	ResetTime string `json:"resetTime"`
	ClientIP  string `json:"clientIp"`
}
