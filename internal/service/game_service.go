// Package service implements the game use cases: create, list, get, update,
// delete. The update merge policy lives here; everything with side effects is
// reached through the injected repository and image store.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/repository"
	"gameshelf/backend/internal/storage"
	"gameshelf/backend/internal/validation"
)

// StorageError wraps a failed datastore or filesystem operation. Handlers
// translate it to a server error.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ImageUpload carries an uploaded cover image into the service.
type ImageUpload struct {
	Name    string
	Content io.Reader
}

// CreateGameInput holds the fields of a create request. All scalar fields
// are mandatory; Completed and Image are optional.
type CreateGameInput struct {
	Title       string
	Description string
	Developer   string
	Publisher   string
	ReleaseDate string
	Completed   *string
	Image       *ImageUpload
}

// UpdateGameInput holds the fields of an update request. A nil pointer means
// the field was absent from the payload; the stored value is kept for it.
type UpdateGameInput struct {
	Title       *string
	Description *string
	Developer   *string
	Publisher   *string
	ReleaseDate *string
	Completed   *string
	Image       *ImageUpload
}

// GameService orchestrates validation, image storage and persistence.
type GameService struct {
	repo   repository.GameRepository
	images storage.ImageStore
}

// NewGameService wires the service to its collaborators.
func NewGameService(repo repository.GameRepository, images storage.ImageStore) *GameService {
	return &GameService{repo: repo, images: images}
}

// Create validates the input, inserts the record, then stores the cover
// image if one was uploaded. Completed defaults to false when absent.
func (s *GameService) Create(ctx context.Context, in CreateGameInput) (models.Game, error) {
	if err := validation.ValidateCreate(validation.CreateFields{
		Title:       in.Title,
		Description: in.Description,
		Developer:   in.Developer,
		Publisher:   in.Publisher,
		ReleaseDate: in.ReleaseDate,
	}); err != nil {
		return models.Game{}, err
	}

	game := models.Game{
		Title:       in.Title,
		Description: in.Description,
		Developer:   in.Developer,
		Publisher:   in.Publisher,
		ReleaseDate: in.ReleaseDate,
	}
	if in.Completed != nil {
		game.Completed = validation.ParseCompleted(*in.Completed)
	}

	if err := s.repo.Insert(ctx, &game); err != nil {
		return models.Game{}, &StorageError{Op: "insert game", Err: err}
	}

	if in.Image != nil {
		name, err := s.images.Store(in.Image.Content, in.Image.Name)
		if err != nil {
			return models.Game{}, &StorageError{Op: "store image", Err: err}
		}
		game.Filename = &name
		if err := s.repo.Update(ctx, &game); err != nil {
			return models.Game{}, &StorageError{Op: "persist image filename", Err: err}
		}
	}

	return game, nil
}

// List returns every game in the collection.
func (s *GameService) List(ctx context.Context) ([]models.Game, error) {
	games, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list games", Err: err}
	}
	return games, nil
}

// Get returns a single game by id.
func (s *GameService) Get(ctx context.Context, id uint) (models.Game, error) {
	game, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Game{}, err
	}
	if err != nil {
		return models.Game{}, &StorageError{Op: "find game", Err: err}
	}
	return game, nil
}

// Update merges a partial payload into the stored record. Supplied fields
// replace stored values, absent fields are retained, and a new upload
// replaces the old image file before the database is touched.
func (s *GameService) Update(ctx context.Context, id uint, in UpdateGameInput) (models.Game, error) {
	game, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return models.Game{}, err
	}
	if err != nil {
		return models.Game{}, &StorageError{Op: "find game", Err: err}
	}

	if err := validation.ValidateUpdate(validation.UpdateFields{
		Title:       in.Title,
		Description: in.Description,
		Developer:   in.Developer,
		Publisher:   in.Publisher,
		ReleaseDate: in.ReleaseDate,
	}, in.Image != nil); err != nil {
		return models.Game{}, err
	}

	if in.Title != nil {
		game.Title = *in.Title
	}
	if in.Description != nil {
		game.Description = *in.Description
	}
	if in.Developer != nil {
		game.Developer = *in.Developer
	}
	if in.Publisher != nil {
		game.Publisher = *in.Publisher
	}
	if in.ReleaseDate != nil {
		game.ReleaseDate = *in.ReleaseDate
	}
	if in.Completed != nil {
		game.Completed = validation.ParseCompleted(*in.Completed)
	}

	if in.Image != nil {
		// The old file goes first. If that fails the update is aborted
		// before the database write, so the stored filename still matches
		// a file that exists on disk.
		if game.Filename != nil {
			if err := s.images.Remove(*game.Filename); err != nil {
				return models.Game{}, &StorageError{Op: "remove old image", Err: err}
			}
		}
		name, err := s.images.Store(in.Image.Content, in.Image.Name)
		if err != nil {
			return models.Game{}, &StorageError{Op: "store image", Err: err}
		}
		game.Filename = &name
	}

	if err := s.repo.Update(ctx, &game); err != nil {
		return models.Game{}, &StorageError{Op: "update game", Err: err}
	}
	return game, nil
}

// Delete removes the record and its image file, if any. A missing image file
// is not an error.
func (s *GameService) Delete(ctx context.Context, id uint) error {
	game, err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if err != nil {
		return &StorageError{Op: "delete game", Err: err}
	}
	if game.Filename != nil {
		if err := s.images.Remove(*game.Filename); err != nil {
			return &StorageError{Op: "remove image", Err: err}
		}
	}
	return nil
}
