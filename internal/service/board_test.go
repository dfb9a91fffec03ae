package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
	"github.com/sparkboard-dev/sparkboard/internal/utils"
)

// MockBoardStorage mocks the BoardStorage interface.
type MockBoardStorage struct {
	createBoardFunc func(board domain.Board) (domain.BoardId, error)
	getBoardFunc    func(id domain.BoardId) (*domain.Board, error)
	listBoardsFunc  func(ownerId domain.UserId) ([]domain.Board, error)
	deleteBoardFunc func(id domain.BoardId) error

	deleteCalls []domain.BoardId
}

func (m *MockBoardStorage) CreateBoard(board domain.Board) (domain.BoardId, error) {
	if m.createBoardFunc != nil {
		return m.createBoardFunc(board)
	}
	return 1, nil
}

func (m *MockBoardStorage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	if m.getBoardFunc != nil {
		return m.getBoardFunc(id)
	}
	return nil, internal_errors.NotFound
}

func (m *MockBoardStorage) ListBoards(ownerId domain.UserId) ([]domain.Board, error) {
	if m.listBoardsFunc != nil {
		return m.listBoardsFunc(ownerId)
	}
	return nil, nil
}

func (m *MockBoardStorage) DeleteBoard(id domain.BoardId) error {
	m.deleteCalls = append(m.deleteCalls, id)
	if m.deleteBoardFunc != nil {
		return m.deleteBoardFunc(id)
	}
	return nil
}

func TestBoardCreate(t *testing.T) {
	actor := &domain.User{Id: 42}

	testCases := []struct {
		name        string
		boardName   string
		mockError   error
		expectError bool
	}{
		{name: "successful creation", boardName: "Inspiration"},
		{name: "empty name", boardName: "", expectError: true},
		{name: "storage error", boardName: "Inspiration", mockError: errors.New("storage error"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			storage := &MockBoardStorage{
				createBoardFunc: func(board domain.Board) (domain.BoardId, error) {
					return 1, tc.mockError
				},
			}

			board, err := NewBoard(storage, &utils.BoardNameValidator{}).Create(actor, tc.boardName)
			if tc.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, actor.Id, board.OwnerId)
				assert.Equal(t, tc.boardName, board.Name)
			}
		})
	}

	t.Run("nil actor", func(t *testing.T) {
		_, err := NewBoard(&MockBoardStorage{}, &utils.BoardNameValidator{}).Create(nil, "x")
		assert.ErrorIs(t, err, internal_errors.NotAuthenticated)
	})
}

func TestBoardDelete(t *testing.T) {
	actor := &domain.User{Id: 42}

	t.Run("owner can delete", func(t *testing.T) {
		storage := &MockBoardStorage{
			getBoardFunc: func(id domain.BoardId) (*domain.Board, error) {
				return &domain.Board{Id: id, OwnerId: 42}, nil
			},
		}
		require.NoError(t, NewBoard(storage, &utils.BoardNameValidator{}).Delete(actor, 1))
		assert.Len(t, storage.deleteCalls, 1)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		storage := &MockBoardStorage{
			getBoardFunc: func(id domain.BoardId) (*domain.Board, error) {
				return &domain.Board{Id: id, OwnerId: 99}, nil
			},
		}
		err := NewBoard(storage, &utils.BoardNameValidator{}).Delete(actor, 1)
		require.Error(t, err)
		assert.Empty(t, storage.deleteCalls)
	})
}
