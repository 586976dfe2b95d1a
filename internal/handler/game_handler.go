package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gameshelf/backend/internal/models"
	"gameshelf/backend/internal/repository"
	"gameshelf/backend/internal/service"
	"gameshelf/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// GameResponse defines the JSON shape of a game record.
type GameResponse struct {
	ID          uint      `json:"id" example:"1"`
	Title       string    `json:"title" example:"Portal 2"`
	Description string    `json:"description" example:"puzzle game"`
	Developer   string    `json:"developer" example:"Valve"`
	Publisher   string    `json:"publisher" example:"Valve"`
	ReleaseDate string    `json:"releaseDate" example:"04-18-2011"`
	Completed   bool      `json:"completed"`
	Filename    *string   `json:"filename"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Description: game.Description,
		Developer:   game.Developer,
		Publisher:   game.Publisher,
		ReleaseDate: game.ReleaseDate,
		Completed:   game.Completed,
		Filename:    game.Filename,
		CreatedAt:   game.CreatedAt,
	}
}

// endregion

// GameHandler translates HTTP requests into game service calls.
type GameHandler struct {
	service *service.GameService
}

// NewGameHandler returns a handler backed by the given service.
func NewGameHandler(svc *service.GameService) *GameHandler {
	return &GameHandler{service: svc}
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Creates a game record with an optional cover image.
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Param        title        formData string true  "Game title"
// @Param        description  formData string true  "Game description"
// @Param        developer    formData string true  "Developer name"
// @Param        publisher    formData string true  "Publisher name"
// @Param        releaseDate  formData string true  "Release date (mm-dd-yyyy)"
// @Param        completed    formData string false "Completed flag (true/false)"
// @Param        image        formData file   false "Cover image"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse "Missing or invalid field"
// @Router       /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	input := service.CreateGameInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Developer:   c.PostForm("developer"),
		Publisher:   c.PostForm("publisher"),
		ReleaseDate: c.PostForm("releaseDate"),
	}
	if v, ok := c.GetPostForm("completed"); ok {
		input.Completed = &v
	}

	upload, closeUpload, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}
	if closeUpload != nil {
		defer closeUpload()
	}
	input.Image = upload

	game, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game))
}

// GetGames godoc
// @Summary      List all games
// @Description  Retrieves every game in the collection.
// @Tags         games
// @Produce      json
// @Success      200 {array} GameResponse
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game
// @Description  Retrieves one game by its id.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse "Invalid ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	game, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Merges the supplied fields into the stored record. Absent fields keep their stored values; a new image replaces the old file.
// @Tags         games
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path     int    true  "Game ID"
// @Param        title        formData string false "Game title"
// @Param        description  formData string false "Game description"
// @Param        developer    formData string false "Developer name"
// @Param        publisher    formData string false "Publisher name"
// @Param        releaseDate  formData string false "Release date (mm-dd-yyyy)"
// @Param        completed    formData string false "Completed flag (true/false)"
// @Param        image        formData file   false "Cover image"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse "Invalid ID, no fields, or bad format"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	input := service.UpdateGameInput{
		Title:       formField(c, "title"),
		Description: formField(c, "description"),
		Developer:   formField(c, "developer"),
		Publisher:   formField(c, "publisher"),
		ReleaseDate: formField(c, "releaseDate"),
	}
	// completed is keyed on presence alone so an explicit "false" sticks
	if v, ok := c.GetPostForm("completed"); ok {
		input.Completed = &v
	}

	upload, closeUpload, err := formImage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image upload"})
		return
	}
	if closeUpload != nil {
		defer closeUpload()
	}
	input.Image = upload

	game, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, newGameResponse(game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and its cover image file, if any.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game deleted"}"
// @Failure      400 {object} ErrorResponse "Invalid ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}

func (h *GameHandler) renderError(c *gin.Context, err error) {
	var verr *validation.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// parseID rejects non-numeric ids before any lookup happens.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// formField returns a pointer only when the field was supplied with a
// non-empty value, so the merge policy can tell "absent" from "blank".
func formField(c *gin.Context, name string) *string {
	if v, ok := c.GetPostForm(name); ok && v != "" {
		return &v
	}
	return nil
}

// formImage extracts the optional image file from the multipart form. The
// second return value closes the underlying file and is nil when no file was
// sent.
func formImage(c *gin.Context) (*service.ImageUpload, func(), error) {
	header, err := c.FormFile("image")
	if err != nil {
		// missing file field, or not a multipart request at all
		return nil, nil, nil
	}
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	return &service.ImageUpload{Name: header.Filename, Content: f}, func() { f.Close() }, nil
}
