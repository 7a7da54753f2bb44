package handlers

import (
	"net/http"

	"temperature_prediction/internal/models"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK         = "ok"
	statusDispatched = "dispatched"
	statusReset      = "reset"

	errDispatch        = "failed to dispatch prediction"
	errGetState        = "failed to load state"
	errReset           = "failed to reset state"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// stateResponse pairs the raw state with what the screen should render.
type stateResponse struct {
	Status string                 `json:"status,omitempty"`
	State  models.PredictionState `json:"state"`
	View   models.View            `json:"view"`
}

func newStateResponse(status string, st models.PredictionState) stateResponse {
	return stateResponse{Status: status, State: st, View: st.View()}
}

type predictionRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// DispatchPredictionRequest is an exported model for Swagger docs of the dispatch payload.
type DispatchPredictionRequest struct {
	// Selected date, tomorrow or later
	Date string `json:"date" example:"2025-03-10"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Request a temperature prediction
// @Description  Makes the date the current request and returns immediately in LOADING.
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Param        body  body   DispatchPredictionRequest  true  "Selected date"
// @Success      202   {object}  stateResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/predictions [post]
func (h *Handler) dispatchPrediction(c *gin.Context) {
	var req predictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	date, err := h.dates.Parse(req.Date)
	if err != nil {
		if h.log != nil {
			h.log.Infow("prediction_date_rejected", "date", req.Date, "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.services.Prediction.Dispatch(c.Request.Context(), date)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDispatch, "prediction_dispatch_failed", err, "date", req.Date)
		return
	}
	c.JSON(http.StatusAccepted, newStateResponse(statusDispatched, st))
}

// @Summary      Get prediction state
// @Tags         predictions
// @Produce      json
// @Success      200  {object}  stateResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/predictions/state [get]
func (h *Handler) getState(c *gin.Context) {
	st, err := h.services.Monitoring.GetState(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetState, "prediction_get_state_failed", err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse("", st))
}

// @Summary      Reset prediction state
// @Tags         predictions
// @Produce      json
// @Success      200  {object}  stateResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/predictions/state [delete]
func (h *Handler) resetState(c *gin.Context) {
	st, err := h.services.Prediction.Reset(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errReset, "prediction_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, newStateResponse(statusReset, st))
}
