package service

import (
	"net/http"

	"github.com/sparkboard-dev/sparkboard/internal/domain"
	"github.com/sparkboard-dev/sparkboard/internal/errors"
)

// to mock service in tests
type BoardService interface {
	Create(actor *domain.User, name domain.BoardName) (*domain.Board, error)
	Get(actor *domain.User, id domain.BoardId) (*domain.Board, error)
	List(actor *domain.User) ([]domain.Board, error)
	Delete(actor *domain.User, id domain.BoardId) error
}

type Board struct {
	storage       BoardStorage
	nameValidator BoardValidator
}

type BoardStorage interface {
	CreateBoard(board domain.Board) (domain.BoardId, error)
	GetBoard(id domain.BoardId) (*domain.Board, error)
	ListBoards(ownerId domain.UserId) ([]domain.Board, error)
	DeleteBoard(id domain.BoardId) error
}

type BoardValidator interface {
	Name(name domain.BoardName) error
}

func NewBoard(storage BoardStorage, validator BoardValidator) *Board {
	return &Board{storage, validator}
}

func (b *Board) Create(actor *domain.User, name domain.BoardName) (*domain.Board, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}
	if err := b.nameValidator.Name(name); err != nil {
		return nil, err
	}

	board := domain.Board{OwnerId: actor.Id, Name: name}
	id, err := b.storage.CreateBoard(board)
	if err != nil {
		return nil, err
	}
	board.Id = id
	return &board, nil
}

func (b *Board) Get(actor *domain.User, id domain.BoardId) (*domain.Board, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}

	board, err := b.storage.GetBoard(id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(actor, board.OwnerId); err != nil {
		return nil, err
	}
	return board, nil
}

func (b *Board) List(actor *domain.User) ([]domain.Board, error) {
	if actor == nil {
		return nil, errors.NotAuthenticated
	}
	return b.storage.ListBoards(actor.Id)
}

func (b *Board) Delete(actor *domain.User, id domain.BoardId) error {
	if actor == nil {
		return errors.NotAuthenticated
	}

	board, err := b.storage.GetBoard(id)
	if err != nil {
		return err
	}
	if err := requireOwner(actor, board.OwnerId); err != nil {
		return err
	}
	return b.storage.DeleteBoard(id)
}

// requireOwner scopes an operation to the authenticated actor. Admins can
// act on any record.
func requireOwner(actor *domain.User, ownerId domain.UserId) error {
	if actor.Admin || actor.Id == ownerId {
		return nil
	}
	return &errors.ErrorWithStatusCode{Message: "Access denied", StatusCode: http.StatusForbidden}
}
