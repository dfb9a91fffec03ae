package handler

import (
	"net/http"
	"time"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	mw "github.com/sparkboard-dev/sparkboard/internal/middleware"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

type createBoardRequest struct {
	Name string `validate:"required" json:"name"`
}

type boardResponse struct {
	Id        domain.BoardId `json:"id"`
	Name      string         `json:"name"`
	CreatedAt time.Time      `json:"createdAt"`
}

func toBoardResponse(board *domain.Board) boardResponse {
	return boardResponse{Id: board.Id, Name: board.Name, CreatedAt: board.CreatedAt}
}

func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var body createBoardRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	board, err := h.board.Create(mw.GetUserFromContext(r), body.Name)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSONStatus(w, http.StatusCreated, toBoardResponse(board))
}

func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "board_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	board, err := h.board.Get(mw.GetUserFromContext(r), id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, toBoardResponse(board))
}

func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.board.List(mw.GetUserFromContext(r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]boardResponse, len(boards))
	for i := range boards {
		response[i] = toBoardResponse(&boards[i])
	}
	writeJSON(w, map[string]interface{}{"boards": response})
}

func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "board_id")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.board.Delete(mw.GetUserFromContext(r), id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
