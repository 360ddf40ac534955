package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/heritage-archive/content-service/internal/pkg/utils"
	"github.com/heritage-archive/content-service/internal/usecase"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// CollectionHandler - обработчик коллекций
type CollectionHandler struct {
	collectionUC *usecase.CollectionUseCase
	logger       *zap.Logger
}

// NewCollectionHandler - создание нового CollectionHandler
func NewCollectionHandler(collectionUC *usecase.CollectionUseCase, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: collectionUC,
		logger:       logger,
	}
}

// List godoc
// @Summary Список коллекций
// @Tags Collections
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Collection}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/collections [get]
func (h *CollectionHandler) List(c *fiber.Ctx) error {
	collections, err := h.collectionUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collections, nil)
}

// Get godoc
// @Summary Коллекция по collection_id
// @Tags Collections
// @Produce json
// @Param id path string true "collection_id"
// @Success 200 {object} utils.SuccessResponse{data=domain.Collection}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/collections/{id} [get]
func (h *CollectionHandler) Get(c *fiber.Ctx) error {
	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	collection, err := h.collectionUC.Get(c.Context(), key)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collection, nil)
}

// Create godoc
// @Summary Создание коллекции
// @Description film_item_references - строки или целые числа, по умолчанию пустой список
// @Tags Collections
// @Accept json
// @Produce json
// @Param request body dto.CollectionRequest true "Коллекция"
// @Success 201 {object} utils.SuccessResponse{data=domain.Collection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/collections [post]
func (h *CollectionHandler) Create(c *fiber.Ctx) error {
	var req dto.CollectionRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	collection, err := h.collectionUC.Create(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, collection)
}

// Replace godoc
// @Summary Замена коллекции
// @Tags Collections
// @Accept json
// @Produce json
// @Param id path string true "collection_id"
// @Param request body dto.CollectionRequest true "Коллекция"
// @Success 200 {object} utils.SuccessResponse{data=domain.Collection}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/collections/{id} [put]
func (h *CollectionHandler) Replace(c *fiber.Ctx) error {
	var req dto.CollectionRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	collection, err := h.collectionUC.Replace(c.Context(), key, &req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, collection, nil)
}

// Delete godoc
// @Summary Удаление коллекции
// @Tags Collections
// @Produce json
// @Param id path string true "collection_id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/collections/{id} [delete]
func (h *CollectionHandler) Delete(c *fiber.Ctx) error {
	key, err := pathKey(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.collectionUC.Delete(c.Context(), key); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendMessage(c, "Collection deleted")
}
