package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritage-archive/content-service/internal/pkg/utils"
	"github.com/heritage-archive/content-service/internal/usecase"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// TimelineHandler - обработчик элементов таймлайна.
// Путь адресует элемент по _id, а не по порядковому id.
type TimelineHandler struct {
	timelineUC *usecase.TimelineUseCase
	logger     *zap.Logger
}

// NewTimelineHandler - создание нового TimelineHandler
func NewTimelineHandler(timelineUC *usecase.TimelineUseCase, logger *zap.Logger) *TimelineHandler {
	return &TimelineHandler{
		timelineUC: timelineUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список элементов таймлайна
// @Description Элементы отсортированы по возрастанию id
// @Tags Timeline
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TimelineItem}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/timeline [get]
func (h *TimelineHandler) List(c *fiber.Ctx) error {
	items, err := h.timelineUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, items, nil)
}

// Get godoc
// @Summary Элемент таймлайна по _id
// @Tags Timeline
// @Produce json
// @Param id path string true "_id элемента (hex)"
// @Success 200 {object} utils.SuccessResponse{data=domain.TimelineItem}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/timeline/{id} [get]
func (h *TimelineHandler) Get(c *fiber.Ctx) error {
	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	item, err := h.timelineUC.Get(c.Context(), key)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item, nil)
}

// Create godoc
// @Summary Создание элемента таймлайна
// @Tags Timeline
// @Accept json
// @Produce json
// @Param request body dto.TimelineItemRequest true "Элемент таймлайна"
// @Success 201 {object} utils.SuccessResponse{data=domain.TimelineItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/timeline [post]
func (h *TimelineHandler) Create(c *fiber.Ctx) error {
	var req dto.TimelineItemRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	item, err := h.timelineUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, item)
}

// Replace godoc
// @Summary Замена элемента таймлайна
// @Tags Timeline
// @Accept json
// @Produce json
// @Param id path string true "_id элемента (hex)"
// @Param request body dto.TimelineItemRequest true "Элемент таймлайна"
// @Success 200 {object} utils.SuccessResponse{data=domain.TimelineItem}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/timeline/{id} [put]
func (h *TimelineHandler) Replace(c *fiber.Ctx) error {
	var req dto.TimelineItemRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	item, err := h.timelineUC.Replace(c.Context(), key, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, item, nil)
}

// Delete godoc
// @Summary Удаление элемента таймлайна
// @Tags Timeline
// @Produce json
// @Param id path string true "_id элемента (hex)"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/timeline/{id} [delete]
func (h *TimelineHandler) Delete(c *fiber.Ctx) error {
	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.timelineUC.Delete(c.Context(), key); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Timeline item deleted")
}
