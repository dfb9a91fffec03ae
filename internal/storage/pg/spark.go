package pg

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	internal_errors "github.com/sparkboard-dev/sparkboard/internal/errors"
)

func (s *Storage) CreateSpark(spark domain.Spark) (domain.SparkId, error) {
	var id domain.SparkId
	err := s.db.QueryRow(`
	INSERT INTO sparks(board_id, user_id, kind_tag, url, title, text_content, x, y, width, height)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id`,
		spark.BoardId, spark.UserId, string(spark.KindTag), spark.Url, spark.Title,
		spark.TextContent, spark.X, spark.Y, spark.Width, spark.Height).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Storage) GetSpark(id domain.SparkId) (*domain.Spark, error) {
	var spark domain.Spark
	err := s.db.QueryRow(`
	SELECT id, board_id, user_id, kind_tag, url, title, text_content, x, y, width, height, created_at
	FROM sparks
	WHERE id = $1`, id).Scan(
		&spark.Id, &spark.BoardId, &spark.UserId, &spark.KindTag, &spark.Url, &spark.Title,
		&spark.TextContent, &spark.X, &spark.Y, &spark.Width, &spark.Height, &spark.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &internal_errors.ErrorWithStatusCode{Message: "Spark not found", StatusCode: http.StatusNotFound}
		}
		return nil, err
	}
	return &spark, nil
}

func (s *Storage) ListSparks(boardId domain.BoardId) ([]domain.Spark, error) {
	rows, err := s.db.Query(`
	SELECT id, board_id, user_id, kind_tag, url, title, text_content, x, y, width, height, created_at
	FROM sparks
	WHERE board_id = $1
	ORDER BY created_at, id`, boardId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sparks []domain.Spark
	for rows.Next() {
		var spark domain.Spark
		if err := rows.Scan(
			&spark.Id, &spark.BoardId, &spark.UserId, &spark.KindTag, &spark.Url, &spark.Title,
			&spark.TextContent, &spark.X, &spark.Y, &spark.Width, &spark.Height, &spark.CreatedAt); err != nil {
			return nil, err
		}
		sparks = append(sparks, spark)
	}
	return sparks, rows.Err()
}

func (s *Storage) UpdateSparkPosition(id domain.SparkId, x, y float64) error {
	return s.updateSpark(`UPDATE sparks SET x = $2, y = $3 WHERE id = $1`, id, x, y)
}

func (s *Storage) UpdateSparkSize(id domain.SparkId, width, height float64) error {
	return s.updateSpark(`UPDATE sparks SET width = $2, height = $3 WHERE id = $1`, id, width, height)
}

func (s *Storage) updateSpark(query string, id domain.SparkId, a, b float64) error {
	result, err := s.db.Exec(query, id, a, b)
	if err != nil {
		return err
	}
	updated, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Spark not found", StatusCode: http.StatusNotFound}
	}
	return nil
}

func (s *Storage) DeleteSpark(id domain.SparkId) error {
	result, err := s.db.Exec(`DELETE FROM sparks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return &internal_errors.ErrorWithStatusCode{Message: "Spark not found", StatusCode: http.StatusNotFound}
	}
	return nil
}
