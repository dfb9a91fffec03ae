package pg

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

func (s *Storage) CreateBoard(board domain.Board) (domain.BoardId, error) {
	var id domain.BoardId
	err := s.db.QueryRow(`
	INSERT INTO boards(owner_id, name)
	VALUES($1, $2)
	RETURNING id`,
		board.OwnerId, board.Name).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetBoard(id domain.BoardId) (*domain.Board, error) {
	var board domain.Board
	err := s.db.QueryRow(`
	SELECT id, owner_id, name, created_at
	FROM boards
	WHERE id = $1`, id).Scan(&board.Id, &board.OwnerId, &board.Name, &board.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}
		}
		return nil, err
	}
	return &board, nil
}

func (s *Storage) ListBoards(ownerId domain.UserId) ([]domain.Board, error) {
	rows, err := s.db.Query(`
	SELECT id, owner_id, name, created_at
	FROM boards
	WHERE owner_id = $1
	ORDER BY created_at DESC`, ownerId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boards []domain.Board
	for rows.Next() {
		var board domain.Board
		if err := rows.Scan(&board.Id, &board.OwnerId, &board.Name, &board.CreatedAt); err != nil {
			return nil, err
		}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

func (s *Storage) DeleteBoard(id domain.BoardId) error {
	result, err := s.db.Exec(`DELETE FROM boards WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Board not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
