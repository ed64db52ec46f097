package service

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"

	"breakout_api/internal/models"
	"breakout_api/internal/modules/config"
	healthsvc "breakout_api/internal/modules/health/service"
	"breakout_api/internal/strategy"
	"breakout_api/pkg/logger"
)

type Handler struct {
	state   *healthsvc.State
	maxBody int64
}

func NewHandler(cfg *config.Config, state *healthsvc.State) *Handler {
	useJSONFieldNames()
	return &Handler{
		state:   state,
		maxBody: cfg.Service.MaxBodyBytes,
	}
}

// Root: GET /, описание API.
func (h *Handler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, models.RootResponse{
		Message: models.APIName,
		Version: models.APIVersion,
		Endpoints: models.Endpoints{
			Root:           "/",
			GenerateSignal: "/generate-signal",
		},
	})
}

// GenerateSignal: POST /generate-signal.
func (h *Handler) GenerateSignal(c *gin.Context) {
	span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "generate-signal")
	defer span.Finish()
	c.Request = c.Request.WithContext(ctx)

	req, err := decodeRequest(c, h.maxBody)
	if err != nil {
		ext.Error.Set(span, true)
		span.LogKV("detail", err.Error())
		logger.Info("generate-signal rejected: %v", err)
		writeJSON(c, http.StatusBadRequest, models.ErrorResponse{Detail: err.Error()})
		return
	}

	span.SetTag("symbol", req.Symbol)
	span.SetTag("candles", len(req.PriceData))
	h.state.ObserveRequest()

	sig, ok := strategy.DetectBreakout(req.PriceData)
	if !ok {
		span.SetTag("signal", "none")
		logger.Info("no breakout for %s (%d candles)", req.Symbol, len(req.PriceData))
		writeJSON(c, http.StatusOK, models.MessageResponse{Message: models.NoSignalMessage})
		return
	}

	h.state.ObserveSignal(time.Now())
	span.SetTag("signal", string(sig.Type))
	logger.Info("breakout %s for %s: sl=%.6f tp=%.2f", sig.Type, req.Symbol, sig.SL, sig.TP)
	writeJSON(c, http.StatusOK, models.NewSignalResponse(sig))
}

func writeJSON(c *gin.Context, status int, v any) {
	body, err := sonic.Marshal(v)
	if err != nil {
		logger.Error("encode response: %v", err)
		c.Data(http.StatusInternalServerError, "application/json", []byte(`{"detail":"Internal Server Error"}`))
		return
	}
	c.Data(status, "application/json", body)
}
