package film

import (
	"errors"
	"net/http"
	"strconv"

	"filmorate/internal/domain"
	"filmorate/internal/pkg/response"
	"filmorate/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP запросы к фильмам
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	films := rg.Group("/films")
	{
		films.GET("", h.GetAll)
		films.GET("/popular", h.GetPopular)
		films.GET("/:id", h.GetByID)
		films.POST("", h.Create)
		films.PUT("", h.Update)
		films.PUT("/:id/like/:userId", h.AddLike)
		films.DELETE("/:id/like/:userId", h.RemoveLike)
	}
}

// GetAll возвращает все фильмы с жанрами и числом лайков
//
// @Summary Список фильмов
// @Produce json
// @Success 200 {array} domain.Film
// @Router /films [get]
func (h *Handler) GetAll(c *gin.Context) {
	films, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// GetByID возвращает фильм по ID
//
// @Summary Фильм по ID
// @Produce json
// @Param id path int true "ID фильма"
// @Success 200 {object} domain.Film
// @Failure 404 {object} response.ErrorBody "Фильм не найден"
// @Router /films/{id} [get]
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	film, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, film)
}

// GetPopular возвращает count самых залайканных фильмов (по умолчанию 10)
//
// @Summary Популярные фильмы
// @Produce json
// @Param count query int false "Количество" default(10)
// @Success 200 {array} domain.Film
// @Router /films/popular [get]
func (h *Handler) GetPopular(c *gin.Context) {
	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "некорректное значение count")
		return
	}

	films, err := h.service.GetPopular(c.Request.Context(), count)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, films)
}

// Create создаёт фильм
//
// @Summary Создать фильм
// @Accept json
// @Produce json
// @Param film body domain.Film true "Фильм"
// @Success 200 {object} domain.Film
// @Failure 400 {object} response.ErrorBody "Ошибка валидации"
// @Failure 404 {object} response.ErrorBody "MPA или жанр не найден"
// @Router /films [post]
func (h *Handler) Create(c *gin.Context) {
	film, ok := h.bindFilm(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), film)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// Update обновляет фильм, ID берётся из тела запроса
func (h *Handler) Update(c *gin.Context) {
	film, ok := h.bindFilm(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), film)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddLike ставит лайк фильму от пользователя
func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.AddLike(c.Request.Context(), filmID, userID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RemoveLike снимает лайк
func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, ok := parseID(c, "id")
	if !ok {
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveLike(c.Request.Context(), filmID, userID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) bindFilm(c *gin.Context) (*domain.Film, bool) {
	var film domain.Film
	if err := c.ShouldBindJSON(&film); err != nil {
		response.Error(c, http.StatusBadRequest, "некорректное тело запроса: "+err.Error())
		return nil, false
	}
	if errs := validator.Validate(&film); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "ошибка валидации", errs)
		return nil, false
	}
	return &film, true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "некорректный параметр "+param)
		return 0, false
	}
	return id, true
}
