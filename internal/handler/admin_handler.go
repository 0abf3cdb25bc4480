package handler

import (
	"net/http"

	"github.com/EvaneiWFreitas/sisManutencao/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler serves the derived admin reads: dashboard, clients, reports.
type AdminHandler struct {
	svc *service.ReportService
}

func NewAdminHandler(svc *service.ReportService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	data, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "success", data)
}

func (h *AdminHandler) Clients(c *gin.Context) {
	clients, err := h.svc.Clients(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "success", clients)
}

func (h *AdminHandler) Reports(c *gin.Context) {
	data, err := h.svc.Report(c.Request.Context(), c.DefaultQuery("type", service.ReportGeneral))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "success", data)
}
