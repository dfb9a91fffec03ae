package handler

import (
	"net/http"
	"time"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	mw "github.com/sparkboard-dev/sparkboard/internal/middleware"
	"github.com/sparkboard-dev/sparkboard/internal/service"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

type createSparkRequest struct {
	KindTag     string `validate:"required" json:"kindTag"`
	Url         string `json:"url"`
	Title       string `json:"title"`
	TextContent string `json:"textContent"`

	// Omitted coordinates mean "spawn near the canvas center"; the viewport
	// dimensions feed the placement generator in that case.
	X              *float64 `json:"x"`
	Y              *float64 `json:"y"`
	Width          float64  `json:"width"`
	Height         float64  `json:"height"`
	ViewportWidth  float64  `json:"viewportWidth"`
	ViewportHeight float64  `json:"viewportHeight"`
}

type positionRequest struct {
	X *float64 `validate:"required" json:"x"`
	Y *float64 `validate:"required" json:"y"`
}

type sizeRequest struct {
	Width  *float64 `validate:"required,gt=0" json:"width"`
	Height *float64 `validate:"required,gt=0" json:"height"`
}

type sparkResponse struct {
	Id          domain.SparkId `json:"id"`
	BoardId     domain.BoardId `json:"boardId"`
	KindTag     domain.KindTag `json:"kindTag"`
	Url         string         `json:"url,omitempty"`
	Title       string         `json:"title,omitempty"`
	TextContent string         `json:"textContent,omitempty"`
	X           float64        `json:"x"`
	Y           float64        `json:"y"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func toSparkResponse(spark *domain.Spark) sparkResponse {
	return sparkResponse{
		Id:          spark.Id,
		BoardId:     spark.BoardId,
		KindTag:     spark.KindTag,
		Url:         spark.Url,
		Title:       spark.Title,
		TextContent: spark.TextContent,
		X:           spark.X,
		Y:           spark.Y,
		Width:       spark.Width,
		Height:      spark.Height,
		CreatedAt:   spark.CreatedAt,
	}
}

func (h *Handler) CreateSpark(w http.ResponseWriter, r *http.Request) {
	boardId, err := idParam(r, "board_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body createSparkRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	spark, err := h.spark.Create(mw.GetUserFromContext(r), service.SparkCreationData{
		BoardId:        boardId,
		KindTag:        domain.KindTag(body.KindTag),
		Url:            body.Url,
		Title:          body.Title,
		TextContent:    body.TextContent,
		X:              body.X,
		Y:              body.Y,
		Width:          body.Width,
		Height:         body.Height,
		ViewportWidth:  body.ViewportWidth,
		ViewportHeight: body.ViewportHeight,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, toSparkResponse(spark))
}

func (h *Handler) ListSparks(w http.ResponseWriter, r *http.Request) {
	boardId, err := idParam(r, "board_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sparks, err := h.spark.ListByBoard(mw.GetUserFromContext(r), boardId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]sparkResponse, len(sparks))
	for i := range sparks {
		response[i] = toSparkResponse(&sparks[i])
	}
	writeJSON(w, map[string]interface{}{"sparks": response})
}

func (h *Handler) MoveSpark(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "spark_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body positionRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.spark.Move(mw.GetUserFromContext(r), id, *body.X, *body.Y); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) ResizeSpark(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "spark_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var body sizeRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.spark.Resize(mw.GetUserFromContext(r), id, *body.Width, *body.Height); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) DeleteSpark(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "spark_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.spark.Delete(mw.GetUserFromContext(r), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
