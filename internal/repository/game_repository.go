// Package repository gives the service CRUD access to persisted games
// without exposing gorm to it.
package repository

import (
	"context"
	"errors"

	"gameshelf/backend/internal/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no game exists for the requested id.
var ErrNotFound = errors.New("game not found")

// GameRepository is the persistence contract for game records.
type GameRepository interface {
	Insert(ctx context.Context, game *models.Game) error
	FindAll(ctx context.Context) ([]models.Game, error)
	FindByID(ctx context.Context, id uint) (models.Game, error)
	// Update overwrites the stored record with the given one.
	Update(ctx context.Context, game *models.Game) error
	// Delete removes the record and returns its prior state, so the caller
	// can clean up the associated image file.
	Delete(ctx context.Context, id uint) (models.Game, error)
}

type gormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository wraps a gorm handle in the GameRepository contract.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gormGameRepository{db: db}
}

func (r *gormGameRepository) Insert(ctx context.Context, game *models.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gormGameRepository) FindAll(ctx context.Context) ([]models.Game, error) {
	var games []models.Game
	if err := r.db.WithContext(ctx).Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gormGameRepository) FindByID(ctx context.Context, id uint) (models.Game, error) {
	var game models.Game
	err := r.db.WithContext(ctx).First(&game, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Game{}, ErrNotFound
	}
	if err != nil {
		return models.Game{}, err
	}
	return game, nil
}

func (r *gormGameRepository) Update(ctx context.Context, game *models.Game) error {
	// Save writes every column, including zero values; the merge policy has
	// already decided each field upstream.
	return r.db.WithContext(ctx).Save(game).Error
}

func (r *gormGameRepository) Delete(ctx context.Context, id uint) (models.Game, error) {
	game, err := r.FindByID(ctx, id)
	if err != nil {
		return models.Game{}, err
	}
	result := r.db.WithContext(ctx).Delete(&models.Game{}, id)
	if result.Error != nil {
		return models.Game{}, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Game{}, ErrNotFound
	}
	return game, nil
}
