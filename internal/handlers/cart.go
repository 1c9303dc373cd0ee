package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenstem/retail-core/internal/platform/logger"
	"github.com/greenstem/retail-core/internal/requestdata"
	"github.com/greenstem/retail-core/internal/services"
)

type CartHandler struct {
	log         *logger.Logger
	carts       services.CartService
	attachments services.AttachmentService
	checkout    services.CheckoutService
}

func NewCartHandler(
	log *logger.Logger,
	carts services.CartService,
	attachments services.AttachmentService,
	checkout services.CheckoutService,
) *CartHandler {
	return &CartHandler{
		log:         log.With("handler", "CartHandler"),
		carts:       carts,
		attachments: attachments,
		checkout:    checkout,
	}
}

func (h *CartHandler) New(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UID == 0 {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		StoreID uint32 `json:"store_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.carts.New(c.Request.Context(), req.StoreID, rd.UID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) Get(c *gin.Context) {
	cart, err := h.carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) AddSku(c *gin.Context) {
	var req struct {
		CartID string `json:"cart_id"`
		Sku    uint32 `json:"sku"`
		Piece  uint32 `json:"piece"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.carts.AddSku(c.Request.Context(), req.CartID, req.Sku, req.Piece)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) RemoveSku(c *gin.Context) {
	var req struct {
		CartID string `json:"cart_id"`
		Sku    uint32 `json:"sku"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.carts.RemoveSku(c.Request.Context(), req.CartID, req.Sku)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) SetSkuPiece(c *gin.Context) {
	var req struct {
		CartID string `json:"cart_id"`
		Sku    uint32 `json:"sku"`
		Piece  uint32 `json:"piece"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.carts.SetSkuPiece(c.Request.Context(), req.CartID, req.Sku, req.Piece)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) SetNeedInvoice(c *gin.Context) {
	var req struct {
		CartID      string `json:"cart_id"`
		NeedInvoice bool   `json:"need_invoice"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.carts.SetNeedInvoice(c.Request.Context(), req.CartID, req.NeedInvoice)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) AddUnit(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UID == 0 {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CartID string `json:"cart_id"`
		UnitID string `json:"unit_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.attachments.Attach(c.Request.Context(), req.CartID, req.UnitID, rd.UID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) RemoveUnit(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UID == 0 {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CartID string `json:"cart_id"`
		UnitID string `json:"unit_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	cart, err := h.attachments.Detach(c.Request.Context(), req.CartID, req.UnitID, rd.UID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, cart)
}

func (h *CartHandler) Close(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	if rd == nil || rd.UID == 0 {
		RespondError(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req struct {
		CartID string `json:"cart_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := h.checkout.Close(c.Request.Context(), req.CartID, rd.UID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"success": true})
}
