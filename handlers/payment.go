package handlers

import (
	"net/http"

	"autohub/middleware"
	"autohub/models"
	"autohub/services/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	Payments payment.PaymentService
}

func NewPaymentHandler(payments payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// paymentView adds the derived tax and total to a stored payment.
type paymentView struct {
	models.Payment
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

func viewOf(p models.Payment) paymentView {
	return paymentView{Payment: p, Tax: payment.Tax(p), Total: payment.Total(p)}
}

func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	list, err := h.Payments.ListPayments(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]paymentView, len(list))
	for i, p := range list {
		out[i] = viewOf(p)
	}
	c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) CheckoutHandler(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	res, err := h.Payments.Checkout(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := gin.H{}
	if res.Payment != nil {
		resp["payment"] = viewOf(*res.Payment)
	}
	if res.Razorpay != nil {
		resp["razorpay"] = res.Razorpay
	}
	c.JSON(http.StatusCreated, resp)
}

// CallbackHandler records the outcome reported by the client-side checkout widget.
func (h *PaymentHandler) CallbackHandler(c *gin.Context) {
	var outcome models.CheckoutOutcome
	if err := c.ShouldBindJSON(&outcome); err != nil {
		badRequest(c, err)
		return
	}
	p, err := h.Payments.RecordOutcome(c.Request.Context(), middleware.PrincipalFrom(c), outcome)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewOf(*p))
}

func (h *PaymentHandler) InvoiceHandler(c *gin.Context) {
	html, err := h.Payments.Invoice(c.Request.Context(), middleware.PrincipalFrom(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *PaymentHandler) RefundHandler(c *gin.Context) {
	p, err := h.Payments.Refund(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewOf(*p))
}
