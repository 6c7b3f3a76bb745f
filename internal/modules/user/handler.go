package user

import (
	"errors"
	"net/http"
	"strconv"

	"filmorate/internal/domain"
	"filmorate/internal/pkg/response"
	"filmorate/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler обрабатывает HTTP запросы к пользователям и дружбе
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.GET("", h.GetAll)
		users.GET("/:id", h.GetByID)
		users.GET("/:id/friends", h.GetFriends)
		users.GET("/:id/friends/common/:otherId", h.GetCommonFriends)
		users.POST("", h.Create)
		users.PUT("", h.Update)
		users.PUT("/:id/friends/:friendId", h.AddFriend)
		users.PUT("/:id/friends/:friendId/confirm", h.ConfirmFriend)
		users.DELETE("/:id/friends/:friendId", h.RemoveFriend)
	}
}

func (h *Handler) GetAll(c *gin.Context) {
	users, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create регистрирует пользователя
//
// @Summary Создать пользователя
// @Accept json
// @Produce json
// @Param user body domain.User true "Пользователь"
// @Success 200 {object} domain.User
// @Failure 400 {object} response.ErrorBody "Ошибка валидации"
// @Router /users [post]
func (h *Handler) Create(c *gin.Context) {
	user, ok := h.bindUser(c)
	if !ok {
		return
	}

	created, err := h.service.Create(c.Request.Context(), user)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// Update обновляет пользователя, ID берётся из тела запроса
func (h *Handler) Update(c *gin.Context) {
	user, ok := h.bindUser(c)
	if !ok {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), user)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AddFriend отправляет запрос дружбы от id к friendId
func (h *Handler) AddFriend(c *gin.Context) {
	userID, friendID, ok := h.parseFriendPair(c)
	if !ok {
		return
	}

	if err := h.service.AddFriend(c.Request.Context(), userID, friendID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// ConfirmFriend подтверждает входящий запрос дружбы от friendId
func (h *Handler) ConfirmFriend(c *gin.Context) {
	userID, friendID, ok := h.parseFriendPair(c)
	if !ok {
		return
	}

	if err := h.service.ConfirmFriend(c.Request.Context(), userID, friendID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// RemoveFriend удаляет исходящее ребро дружбы
func (h *Handler) RemoveFriend(c *gin.Context) {
	userID, friendID, ok := h.parseFriendPair(c)
	if !ok {
		return
	}

	if err := h.service.RemoveFriend(c.Request.Context(), userID, friendID); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) GetFriends(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	friends, err := h.service.GetFriends(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func (h *Handler) GetCommonFriends(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	otherID, ok := parseID(c, "otherId")
	if !ok {
		return
	}

	friends, err := h.service.GetCommonFriends(c.Request.Context(), id, otherID)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, friends)
}

func (h *Handler) bindUser(c *gin.Context) (*domain.User, bool) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		response.Error(c, http.StatusBadRequest, "некорректное тело запроса: "+err.Error())
		return nil, false
	}
	if errs := validator.Validate(&user); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "ошибка валидации", errs)
		return nil, false
	}
	return &user, true
}

func (h *Handler) parseFriendPair(c *gin.Context) (int64, int64, bool) {
	userID, ok := parseID(c, "id")
	if !ok {
		return 0, 0, false
	}
	friendID, ok := parseID(c, "friendId")
	if !ok {
		return 0, 0, false
	}
	return userID, friendID, true
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
