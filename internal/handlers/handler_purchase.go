package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/dto"
	"github.com/woodybriggs/ledger/internal/middleware"
)

// purchaseHandler handles HTTP requests for the purchase side of the books.
type purchaseHandler struct {
	purchaseService portssvc.PurchaseRecordSvcFacade
}

func newPurchaseHandler(ps portssvc.PurchaseRecordSvcFacade) *purchaseHandler {
	return &purchaseHandler{purchaseService: ps}
}

// registerPurchaseRoutes registers routes for expenses, purchase invoices and their payments.
func registerPurchaseRoutes(rg *gin.RouterGroup, purchaseService portssvc.PurchaseRecordSvcFacade) {
	h := newPurchaseHandler(purchaseService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("/expenses", h.createInstantExpense)
		purchases.POST("/invoices", h.createPurchaseInvoice)
		purchases.POST("/invoices/:id/payments", h.payPurchaseInvoice)
		purchases.GET("/:id", h.getPurchaseRecord)
		purchases.GET("", h.listPurchaseRecords)
	}
}

// createInstantExpense godoc
// @Summary Record an instant expense
// @Description Posts a purchase settled immediately from a bank or cash account
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateInstantRecordRequest true "Expense details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Supplier or account not found"
// @Failure 500 {object} map[string]string "Failed to post expense"
// @Router /purchases/expenses [post]
func (h *purchaseHandler) createInstantExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInstantRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInstantExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("supplier_id", req.CounterpartyID))
	logger.Info("Received request to post instant expense", slog.Int("line_items", len(req.LineItems)))

	record, err := h.purchaseService.CreateInstantExpense(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// createPurchaseInvoice godoc
// @Summary Record a purchase invoice
// @Description Posts a supplier invoice against accounts payable
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Supplier or account not found"
// @Failure 500 {object} map[string]string "Failed to post invoice"
// @Router /purchases/invoices [post]
func (h *purchaseHandler) createPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchaseInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("supplier_id", req.CounterpartyID))
	logger.Info("Received request to post purchase invoice", slog.Int("line_items", len(req.LineItems)))

	record, err := h.purchaseService.CreatePurchaseInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// payPurchaseInvoice godoc
// @Summary Pay a purchase invoice
// @Description Posts a full or partial payment and realises any exchange difference
// @Tags purchases
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   payment body dto.PayInvoiceRequest true "Payment details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Invoice or account not found"
// @Failure 500 {object} map[string]string "Failed to post payment"
// @Router /purchases/invoices/{id}/payments [post]
func (h *purchaseHandler) payPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	var req dto.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayPurchaseInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome, err := h.purchaseService.PayPurchaseInvoice(c.Request.Context(), invoiceID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(outcome))
}

// getPurchaseRecord godoc
// @Summary Get a purchase record
// @Description Returns the record with its line items, journal entry and payments
// @Tags purchases
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Router /purchases/{id} [get]
func (h *purchaseHandler) getPurchaseRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	record, err := h.purchaseService.GetPurchaseRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// listPurchaseRecords godoc
// @Summary List purchase records
// @Tags purchases
// @Produce  json
// @Param   counterpartyID query string false "Only records for this supplier"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /purchases [get]
func (h *purchaseHandler) listPurchaseRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPurchaseRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	recs, nextToken, err := h.purchaseService.ListPurchaseRecords(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(recs, nextToken))
}
