package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
)

type MockBoardService struct {
	MockCreate func(actor *domain.User, name domain.BoardName) (*domain.Board, error)
	MockGet    func(actor *domain.User, id domain.BoardId) (*domain.Board, error)
	MockList   func(actor *domain.User) ([]domain.Board, error)
	MockDelete func(actor *domain.User, id domain.BoardId) error
}

func (m *MockBoardService) Create(actor *domain.User, name domain.BoardName) (*domain.Board, error) {
	if m.MockCreate != nil {
		return m.MockCreate(actor, name)
	}
	return &domain.Board{}, nil
}

func (m *MockBoardService) Get(actor *domain.User, id domain.BoardId) (*domain.Board, error) {
	if m.MockGet != nil {
		return m.MockGet(actor, id)
	}
	return &domain.Board{}, nil
}

func (m *MockBoardService) List(actor *domain.User) ([]domain.Board, error) {
	if m.MockList != nil {
		return m.MockList(actor)
	}
	return nil, nil
}

func (m *MockBoardService) Delete(actor *domain.User, id domain.BoardId) error {
	if m.MockDelete != nil {
		return m.MockDelete(actor, id)
	}
	return nil
}

func TestCreateBoardHandler(t *testing.T) {
	h := &Handler{}

	route := "/v1/boards"
	router := chi.NewRouter()
	router.Post(route, h.CreateBoard)
	requestBody := []byte(`{"name": "Weekend Ideas"}`)

	t.Run("successful request", func(t *testing.T) {
		h.board = &MockBoardService{
			MockCreate: func(actor *domain.User, name domain.BoardName) (*domain.Board, error) {
				assert.Equal(t, "Weekend Ideas", name)
				return &domain.Board{Id: 7, OwnerId: actor.Id, Name: name}, nil
			},
		}
		req := withUser(httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(requestBody)), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		var response boardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, int64(7), response.Id)
		assert.Equal(t, "Weekend Ideas", response.Name)
	})

	t.Run("invalid request body", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer([]byte(`{invalid json::}`))), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing name", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer([]byte(`{}`))), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("service error", func(t *testing.T) {
		h.board = &MockBoardService{
			MockCreate: func(actor *domain.User, name domain.BoardName) (*domain.Board, error) {
				return nil, errors.New("mock create error")
			},
		}
		req := withUser(httptest.NewRequest(http.MethodPost, route, bytes.NewBuffer(requestBody)), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestGetBoardHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Get("/v1/boards/{board_id}", h.GetBoard)

	t.Run("successful", func(t *testing.T) {
		h.board = &MockBoardService{
			MockGet: func(actor *domain.User, id domain.BoardId) (*domain.Board, error) {
				return &domain.Board{Id: id, OwnerId: actor.Id, Name: "Mine"}, nil
			},
		}
		req := withUser(httptest.NewRequest(http.MethodGet, "/v1/boards/42", nil), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var response boardResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, int64(42), response.Id)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/v1/boards/abc", nil), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListBoardsHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Get("/v1/boards", h.ListBoards)

	h.board = &MockBoardService{
		MockList: func(actor *domain.User) ([]domain.Board, error) {
			return []domain.Board{{Id: 1, Name: "One"}, {Id: 2, Name: "Two"}}, nil
		},
	}
	req := withUser(httptest.NewRequest(http.MethodGet, "/v1/boards", nil), testUser)
	rr := httptest.NewRecorder()

	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response struct {
		Boards []boardResponse `json:"boards"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	require.Len(t, response.Boards, 2)
	assert.Equal(t, "One", response.Boards[0].Name)
}

func TestDeleteBoardHandler(t *testing.T) {
	h := &Handler{}

	router := chi.NewRouter()
	router.Delete("/v1/boards/{board_id}", h.DeleteBoard)

	t.Run("successful", func(t *testing.T) {
		h.board = &MockBoardService{
			MockDelete: func(actor *domain.User, id domain.BoardId) error {
				assert.Equal(t, int64(42), id)
				return nil
			},
		}
		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/boards/42", nil), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("service error keeps status code", func(t *testing.T) {
		h.board = &MockBoardService{
			MockDelete: func(actor *domain.User, id domain.BoardId) error {
				return errors.New("mock delete error")
			},
		}
		req := withUser(httptest.NewRequest(http.MethodDelete, "/v1/boards/42", nil), testUser)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
