package service

import (
	"github.com/sparkboard-dev/sparkboard/internal/content"
	"github.com/sparkboard-dev/sparkboard/internal/domain"
	"github.com/sparkboard-dev/sparkboard/internal/errors"
)

// to mock service in tests
type SparkService interface {
	Create(actor *domain.User, data SparkCreationData) (*domain.Spark, error)
	Get(actor *domain.User, id domain.SparkId) (*domain.Spark, error)
	ListByBoard(actor *domain.User, boardId domain.BoardId) ([]domain.Spark, error)
	Move(actor *domain.User, id domain.SparkId, x, y float64) error
	Resize(actor *domain.User, id domain.SparkId, width, height float64) error
	Delete(actor *domain.User, id domain.SparkId) error
}

// SparkCreationData carries everything needed to place a new spark. X/Y are
// optional: when absent the spawn placement generator positions the item
// near the canvas center using the client's viewport dimensions.
type SparkCreationData struct {
	BoardId     domain.BoardId
	KindTag     domain.KindTag
	Url         string
	Title       string
	TextContent string

	X      *float64
	Y      *float64
	Width  float64
	Height float64

	ViewportWidth  float64
	ViewportHeight float64
}

type Spark struct {
	storage SparkStorage
}

type SparkStorage interface {
	CreateSpark(spark domain.Spark) (domain.SparkId, error)
	GetSpark(id domain.SparkId) (*domain.Spark, error)
	ListSparks(boardId domain.BoardId) ([]domain.Spark, error)
	UpdateSparkPosition(id domain.SparkId, x, y float64) error
	UpdateSparkSize(id domain.SparkId, width, height float64) error
	DeleteSpark(id domain.SparkId) error

	GetBoard(id domain.BoardId) (*domain.Board, error)
}

func NewSpark(storage SparkStorage) *Spark {
	return &Spark{storage}
}

func (s *Spark) Create(actor *domain.User, data SparkCreationData) (*domain.Spark, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}

	board, err := s.storage.GetBoard(data.BoardId)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, board.OwnerId); err != nil {
		return nil, err
	}

	// Reject kind tags the classifier doesn't know before writing anything.
	if _, err := content.Classify(data.KindTag, data.TextContent, data.Title); err != nil {
		return nil, &errors.ErrorWithStatusCode{Message: err.Error(), StatusCode: 422}
	}

	spark := domain.Spark{
		BoardId:     data.BoardId,
		UserId:      actor.Id,
		KindTag:     data.KindTag,
		Url:         data.Url,
		Title:       data.Title,
		TextContent: data.TextContent,
		Width:       data.Width,
		Height:      data.Height,
	}

	if data.X != nil && data.Y != nil {
		spark.X, spark.Y = *data.X, *data.Y
	} else {
		offset := content.SpawnOffset(data.KindTag)
		spark.X, spark.Y = content.Spawn(data.ViewportWidth, data.ViewportHeight, offset)
	}

	id, err := s.storage.CreateSpark(spark)
	if err != nil {
		return nil, err
	}
	spark.Id = id
	return &spark, nil
}

func (s *Spark) Get(actor *domain.User, id domain.SparkId) (*domain.Spark, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}
	spark, err := s.storage.GetSpark(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, spark.UserId); err != nil {
		return nil, err
	}
	return spark, nil
}

func (s *Spark) ListByBoard(actor *domain.User, boardId domain.BoardId) ([]domain.Spark, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}
	board, err := s.storage.GetBoard(boardId)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, board.OwnerId); err != nil {
		return nil, err
	}
	return s.storage.ListSparks(boardId)
}

func (s *Spark) Move(actor *domain.User, id domain.SparkId, x, y float64) error {
	if err := s.authorize(actor, id); err != nil {
		return err
	}
	return s.storage.UpdateSparkPosition(id, x, y)
}

func (s *Spark) Resize(actor *domain.User, id domain.SparkId, width, height float64) error {
	if err := s.authorize(actor, id); err != nil {
		return err
	}
	return s.storage.UpdateSparkSize(id, width, height)
}

func (s *Spark) Delete(actor *domain.User, id domain.SparkId) error {
	if err := s.authorize(actor, id); err != nil {
		return err
	}
	return s.storage.DeleteSpark(id)
}

func (s *Spark) authorize(actor *domain.User, id domain.SparkId) error {
	if actor == nil {
		return errors.NotAuthenticated
	}
	spark, err := s.storage.GetSpark(id)
	if err != nil {
		return err
	}
	return requireOwner(actor, spark.UserId)
}
