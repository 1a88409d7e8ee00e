package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-booking/internal/audit"
	"github.com/BruksfildServices01/restaurant-booking/internal/cache"
	"github.com/BruksfildServices01/restaurant-booking/internal/httperr"
	"github.com/BruksfildServices01/restaurant-booking/internal/httpresp"
	"github.com/BruksfildServices01/restaurant-booking/internal/media"
	"github.com/BruksfildServices01/restaurant-booking/internal/middleware"
	"github.com/BruksfildServices01/restaurant-booking/internal/models"
	"github.com/BruksfildServices01/restaurant-booking/internal/storage"
)

const menuListCacheKey = "menus:list"

// ======================================================
// HANDLER
// ======================================================

type MenuHandler struct {
	db      *gorm.DB
	cache   cache.Store
	storage storage.MediaStorage
	audit   *audit.Dispatcher
}

func NewMenuHandler(
	db *gorm.DB,
	cache cache.Store,
	storage storage.MediaStorage,
	audit *audit.Dispatcher,
) *MenuHandler {
	return &MenuHandler{
		db:      db,
		cache:   cache,
		storage: storage,
		audit:   audit,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateMenuRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required"`
	Inventory   int     `json:"inventory"`
}

type UpdateMenuRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Inventory   *int     `json:"inventory,omitempty"`
}

// ======================================================
// LIST / GET (público)
// ======================================================

func (h *MenuHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	// o cache guarda só a listagem completa; busca filtrada vai direto ao banco
	var menus []models.Menu
	if query == "" && h.cache.Get(ctx, menuListCacheKey, &menus) {
		c.JSON(http.StatusOK, menus)
		return
	}

	q := h.db.WithContext(ctx)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	if err := q.Order("id ASC").Find(&menus).Error; err != nil {
		httperr.Internal(c, "failed_to_list_menus", "Erro ao listar o cardápio.")
		return
	}

	if query == "" {
		h.cache.Set(ctx, menuListCacheKey, menus)
	}

	c.JSON(http.StatusOK, menus)
}

func (h *MenuHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var menu models.Menu
	if err := h.db.First(&menu, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "menu_not_found", "Item do cardápio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_menu", "Erro ao buscar item do cardápio.")
		return
	}

	c.JSON(http.StatusOK, menu)
}

// ======================================================
// CREATE / UPDATE / DELETE (superusuário)
// ======================================================

func (h *MenuHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	menu := models.Menu{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Inventory:   req.Inventory,
	}

	if err := h.db.Create(&menu).Error; err != nil {
		httperr.Internal(c, "failed_to_create_menu", "Erro ao criar item do cardápio.")
		return
	}

	h.cache.Del(c.Request.Context(), menuListCacheKey)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "menu_created",
		Entity:   "menu",
		EntityID: &menu.ID,
	})

	httpresp.Created(c, menu)
}

func (h *MenuHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var menu models.Menu
	if err := h.db.First(&menu, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "menu_not_found", "Item do cardápio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_menu", "Erro ao buscar item do cardápio.")
		return
	}

	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Title != nil {
		menu.Title = *req.Title
	}
	if req.Description != nil {
		menu.Description = *req.Description
	}
	if req.Price != nil {
		menu.Price = *req.Price
	}
	if req.Inventory != nil {
		menu.Inventory = *req.Inventory
	}

	if err := h.db.Save(&menu).Error; err != nil {
		httperr.Internal(c, "failed_to_update_menu", "Erro ao atualizar item do cardápio.")
		return
	}

	h.cache.Del(c.Request.Context(), menuListCacheKey)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "menu_updated",
		Entity:   "menu",
		EntityID: &menu.ID,
	})

	c.JSON(http.StatusOK, menu)
}

func (h *MenuHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var menu models.Menu
	if err := h.db.First(&menu, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "menu_not_found", "Item do cardápio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_menu", "Erro ao buscar item do cardápio.")
		return
	}

	if err := h.db.Delete(&menu).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_menu", "Erro ao remover item do cardápio.")
		return
	}

	h.cache.Del(c.Request.Context(), menuListCacheKey)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "menu_deleted",
		Entity:   "menu",
		EntityID: &menu.ID,
	})

	c.Status(http.StatusNoContent)
}

// ======================================================
// IMAGE UPLOAD (superusuário)
// ======================================================

func (h *MenuHandler) UploadImage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var menu models.Menu
	if err := h.db.First(&menu, id).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "menu_not_found", "Item do cardápio não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_menu", "Erro ao buscar item do cardápio.")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}
	defer src.Close()

	converted, err := media.ToWebp(src)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagem inválida (apenas JPEG ou PNG).")
		return
	}

	key := fmt.Sprintf("menus/%s.webp", uuid.NewString())

	url, err := h.storage.Save(
		c.Request.Context(),
		key,
		"image/webp",
		bytes.NewReader(converted),
	)
	if err != nil {
		httperr.Internal(c, "failed_to_store_image", "Erro ao armazenar a imagem.")
		return
	}

	menu.ImageURL = url
	if err := h.db.Save(&menu).Error; err != nil {
		httperr.Internal(c, "failed_to_update_menu", "Erro ao atualizar item do cardápio.")
		return
	}

	h.cache.Del(c.Request.Context(), menuListCacheKey)

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "menu_image_uploaded",
		Entity:   "menu",
		EntityID: &menu.ID,
		Metadata: map[string]any{"key": key},
	})

	c.JSON(http.StatusOK, menu)
}
