package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritage-archive/content-service/internal/pkg/utils"
	"github.com/heritage-archive/content-service/internal/usecase"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// MapPOIHandler - обработчик точек интерактивной карты
type MapPOIHandler struct {
	mapUC  *usecase.MapPOIUseCase
	logger *zap.Logger
}

// NewMapPOIHandler - создание нового MapPOIHandler
func NewMapPOIHandler(mapUC *usecase.MapPOIUseCase, logger *zap.Logger) *MapPOIHandler {
	return &MapPOIHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список точек карты
// @Description Возвращает все точки интерактивной карты в порядке хранения
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.MapPOI}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/map [get]
func (h *MapPOIHandler) List(c *fiber.Ctx) error {
	pois, err := h.mapUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, pois, nil)
}

// Get godoc
// @Summary Точка карты по id
// @Tags Map
// @Produce json
// @Param id path string true "Логический идентификатор точки"
// @Success 200 {object} utils.SuccessResponse{data=domain.MapPOI}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/map/{id} [get]
func (h *MapPOIHandler) Get(c *fiber.Ctx) error {
	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	poi, err := h.mapUC.Get(c.Context(), key)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, poi, nil)
}

// Create godoc
// @Summary Создание точки карты
// @Description Требует сессию администратора. Координаты - пара [долгота, широта].
// @Tags Map
// @Accept json
// @Produce json
// @Param request body dto.MapPOIRequest true "Точка карты"
// @Success 201 {object} utils.SuccessResponse{data=domain.MapPOI}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/map [post]
func (h *MapPOIHandler) Create(c *fiber.Ctx) error {
	var req dto.MapPOIRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	poi, err := h.mapUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, poi)
}

// Replace godoc
// @Summary Замена точки карты
// @Description Полностью перезаписывает документ; необязательные поля, не переданные в запросе, удаляются
// @Tags Map
// @Accept json
// @Produce json
// @Param id path string true "Логический идентификатор точки"
// @Param request body dto.MapPOIRequest true "Точка карты"
// @Success 200 {object} utils.SuccessResponse{data=domain.MapPOI}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/map/{id} [put]
func (h *MapPOIHandler) Replace(c *fiber.Ctx) error {
	var req dto.MapPOIRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	poi, err := h.mapUC.Replace(c.Context(), key, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, poi, nil)
}

// Delete godoc
// @Summary Удаление точки карты
// @Tags Map
// @Produce json
// @Param id path string true "Логический идентификатор точки"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/map/{id} [delete]
func (h *MapPOIHandler) Delete(c *fiber.Ctx) error {
	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.mapUC.Delete(c.Context(), key); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Map POI deleted")
}
