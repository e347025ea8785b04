package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"convert-api/internal/config"
	"convert-api/internal/domain/conversion"
	"convert-api/internal/infrastructure/metrics"
	"convert-api/internal/infrastructure/ratelimit"
	"convert-api/internal/interfaces/httpserver/middlewares"
	"convert-api/internal/interfaces/httpserver/requests"
	"convert-api/internal/interfaces/httpserver/responses"
)

// ConvertHandler exposes the conversion endpoints.
type ConvertHandler struct {
	cfg     *config.Config
	service *conversion.Service
	limiter *ratelimit.Limiter
	log     zerolog.Logger
}

func NewConvertHandler(cfg *config.Config, service *conversion.Service, limiter *ratelimit.Limiter, log zerolog.Logger) *ConvertHandler {
	return &ConvertHandler{
		cfg:     cfg,
		service: service,
		limiter: limiter,
		log:     log.With().Str("component", "convert-handler").Logger(),
	}
}

// Convert runs one synchronous conversion: parse the multipart upload, look
// up the pair named by the path segment, dispatch the processor and wrap
// the outcome into the envelope. Rate limiting already happened in the
// middleware chain.
func (h *ConvertHandler) Convert(c *gin.Context) {
	key := conversion.Key(strings.ToLower(strings.TrimSpace(c.Param("conversion"))))
	start := time.Now()

	req, apiErr := requests.ParseConvertRequest(c.Request, h.log)
	if apiErr != nil {
		h.log.Warn().Err(apiErr).Str("conversion", key.String()).Msg("request rejected")
		metrics.RecordConversion(key.String(), "rejected", time.Since(start).Seconds(), 0, 0)
		responses.HandleError(c, apiErr)
		return
	}

	outcome, apiErr := h.service.Convert(c.Request.Context(), key, req.FileBuffer, req.ProcessingOptions)
	if apiErr != nil {
		status := "failed"
		if apiErr.Status < http.StatusInternalServerError {
			status = "rejected"
		}
		metrics.RecordConversion(key.String(), status, time.Since(start).Seconds(), len(req.FileBuffer), 0)
		responses.HandleError(c, apiErr)
		return
	}

	metrics.RecordConversion(key.String(), "success", outcome.Duration.Seconds(),
		len(req.FileBuffer), len(outcome.Output))
	c.Header("X-Conversion-Id", outcome.ConversionID)
	c.JSON(http.StatusOK, responses.BuildConvertResponse(outcome))
}

// Formats enumerates the registered conversion pairs.
func (h *ConvertHandler) Formats(c *gin.Context) {
	c.JSON(http.StatusOK, responses.BuildFormatsResponse(h.service.Registry()))
}

// RateLimitStatus reports the caller's quota usage without consuming any.
func (h *ConvertHandler) RateLimitStatus(c *gin.Context) {
	ip := middlewares.ClientIP(c.Request)
	decision := h.limiter.Status(ip)
	c.JSON(http.StatusOK, responses.RateLimitStatusResponse{
		Limit:     decision.Limit,
		Remaining: decision.Remaining,
		ResetTime: decision.ResetTime.UTC().Format(time.RFC3339),
		ClientIP:  ip,
	})
}

// Health is the liveness probe in the public envelope shape.
func (h *ConvertHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, responses.BuildHealthResponse(h.cfg.ServiceName, config.Version))
}
