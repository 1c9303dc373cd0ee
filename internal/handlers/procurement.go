package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greenstem/retail-core/internal/domain"
	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/requestdata"
	"github.com/greenstem/retail-core/internal/services"
)

type ProcurementHandler struct {
	log        *logger.Logger
	reconciler services.ReconcilerService
}

func NewProcurementHandler(log *logger.Logger, reconciler services.ReconcilerService) *ProcurementHandler {
	return &ProcurementHandler{
		log:        log.With("handler", "ProcurementHandler"),
		reconciler: reconciler,
	}
}

func (h *ProcurementHandler) SetStatusOrdered(c *gin.Context) {
	h.setStatus(c, domain.ProcurementStatusOrdered)
}

func (h *ProcurementHandler) SetStatusArrived(c *gin.Context) {
	h.setStatus(c, domain.ProcurementStatusArrived)
}

func (h *ProcurementHandler) SetStatusProcessing(c *gin.Context) {
	h.setStatus(c, domain.ProcurementStatusProcessing)
}

func (h *ProcurementHandler) setStatus(c *gin.Context, status domain.ProcurementStatus) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UID == 0 {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, ok := procurementID(c)
	if !ok {
		return
	}
	proc, err := h.reconciler.SetStatus(c.Request.Context(), id, status, rd.UID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, proc)
}

func (h *ProcurementHandler) Close(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UID == 0 {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	id, ok := procurementID(c)
	if !ok {
		return
	}
	proc, err := h.reconciler.CloseProcurement(c.Request.Context(), id, rd.UID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, proc)
}

func procurementID(c *gin.Context) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return 0, false
	}
	return uint32(id), true
}
