package handler

import (
	"net/http"
	"strconv"

	"github.com/EvaneiWFreitas/sisManutencao/internal/query"
	"github.com/EvaneiWFreitas/sisManutencao/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc *service.OrderService
}

func NewOrderHandler(svc *service.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// Submit handles the public intake form.
func (h *OrderHandler) Submit(c *gin.Context) {
	var req service.SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.Submit(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Solicitação de serviço criada com sucesso!", gin.H{
		"protocolNumber": order.ProtocolNumber,
	})
}

// Track handles the public protocol tracker.
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.svc.Track(c.Request.Context(), c.Param("protocol"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "success", order)
}

// List handles the admin orders page. Without a page parameter the full
// filtered list comes back, as the original API returned it; with one, a
// clipped slice plus totals.
func (h *OrderHandler) List(c *gin.Context) {
	filters := query.Filters{
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		EquipmentType: c.Query("equipment_type"),
		DateBucket:    c.Query("date"),
	}
	orders, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if c.Query("page") == "" {
		respondOK(c, http.StatusOK, "success", orders)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(query.DefaultPageSize)))
	respondOK(c, http.StatusOK, "success", gin.H{
		"items":       query.Page(orders, page, size),
		"total":       len(orders),
		"page":        page,
		"size":        size,
		"total_pages": query.TotalPages(len(orders), size),
	})
}

// SetStatus handles the admin status change.
func (h *OrderHandler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.SetStatus(c.Request.Context(), c.Param("protocol"), req.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Status atualizado com sucesso!", order)
}

// Delete handles the admin order removal.
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("protocol")); err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Ordem excluída com sucesso!", nil)
}
