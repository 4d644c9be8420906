package stub

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goliatone/go-priceform/internal/middleware"
	"github.com/goliatone/go-priceform/pkg/predict"
)

const maxBodyBytes = 1 << 20

// ErrorBody is the failure response shape.
type ErrorBody struct {
	Error string `json:"error"`
}

// Handler serves the prediction endpoint.
type Handler struct {
	model  Model
	labels []string
	logger *slog.Logger
}

// NewHandler builds a handler over model. A nil model uses DefaultModel.
func NewHandler(model Model, logger *slog.Logger) *Handler {
	if model == nil {
		model = DefaultModel()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Handler{model: model, labels: FeatureLabels, logger: logger}
}

// Predict answers POST /predict: 400 for the first missing key, 500 for any
// other failure, otherwise the rounded price and importances in feature
// order.
func (h *Handler) Predict(c *gin.Context) {
	data, err := decodeObject(c.Request.Body)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}
	if err := firstMissing(data); err != nil {
		h.fail(c, http.StatusBadRequest, err)
		return
	}

	features, err := Encode(data)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, err)
		return
	}

	result := predict.Result{
		PredictedPrice:    round(h.model.Predict(features), 2),
		FeatureImportance: explain(h.labels, h.model.Importances()),
	}
	h.logger.Debug("prediction served", "request_id", middleware.RequestID(c), "price", result.PredictedPrice)
	c.JSON(http.StatusOK, result)
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "predict"})
}

func (h *Handler) fail(c *gin.Context, status int, err error) {
	h.logger.Info("prediction rejected", "request_id", middleware.RequestID(c), "status", status, "error", err)
	c.JSON(status, ErrorBody{Error: err.Error()})
}

func decodeObject(body io.Reader) (map[string]any, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, errors.New("request body must be a JSON object")
	}
	if data == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return data, nil
}
