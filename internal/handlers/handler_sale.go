package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/woodybriggs/ledger/internal/core/ports/services"
	"github.com/woodybriggs/ledger/internal/dto"
	"github.com/woodybriggs/ledger/internal/middleware"
)

// saleHandler handles HTTP requests for the sales side of the books.
type saleHandler struct {
	saleService portssvc.SaleRecordSvcFacade
}

func newSaleHandler(ps portssvc.SaleRecordSvcFacade) *saleHandler {
	return &saleHandler{saleService: ps}
}

// registerSaleRoutes registers routes for instant sales, sales invoices and their receipts.
func registerSaleRoutes(rg *gin.RouterGroup, saleService portssvc.SaleRecordSvcFacade) {
	h := newSaleHandler(saleService)

	sales := rg.Group("/sales")
	{
		sales.POST("/instant", h.createInstantSale)
		sales.POST("/invoices", h.createSalesInvoice)
		sales.POST("/invoices/:id/receipts", h.receiveSalesInvoicePayment)
		sales.GET("/:id", h.getSaleRecord)
		sales.GET("", h.listSaleRecords)
	}
}

// createInstantSale godoc
// @Summary Record an instant sale
// @Description Posts a sale settled immediately into a bank or cash account
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.CreateInstantRecordRequest true "Sale details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 500 {object} map[string]string "Failed to post sale"
// @Router /sales/instant [post]
func (h *saleHandler) createInstantSale(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInstantRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInstantSale", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("customer_id", req.CounterpartyID))
	logger.Info("Received request to post instant sale", slog.Int("line_items", len(req.LineItems)))

	record, err := h.saleService.CreateInstantSale(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post sale")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// createSalesInvoice godoc
// @Summary Record a sales invoice
// @Description Posts a customer invoice against accounts receivable
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Customer or account not found"
// @Failure 500 {object} map[string]string "Failed to post invoice"
// @Router /sales/invoices [post]
func (h *saleHandler) createSalesInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSalesInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("customer_id", req.CounterpartyID))
	logger.Info("Received request to post sales invoice", slog.Int("line_items", len(req.LineItems)))

	record, err := h.saleService.CreateSalesInvoice(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// receiveSalesInvoicePayment godoc
// @Summary Receive payment of a sales invoice
// @Description Posts a full or partial receipt and realises any exchange difference
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   id path string true "Invoice ID"
// @Param   receipt body dto.PayInvoiceRequest true "Receipt details"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid input or validation error"
// @Failure 404 {object} map[string]string "Invoice or account not found"
// @Failure 500 {object} map[string]string "Failed to post receipt"
// @Router /sales/invoices/{id}/receipts [post]
func (h *saleHandler) receiveSalesInvoicePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")
	logger = logger.With(slog.String("invoice_id", invoiceID))

	var req dto.PayInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReceiveSalesInvoicePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	outcome, err := h.saleService.ReceiveSalesInvoicePayment(c.Request.Context(), invoiceID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to post receipt")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(outcome))
}

// getSaleRecord godoc
// @Summary Get a sale record
// @Description Returns the record with its line items, journal entry and receipts
// @Tags sales
// @Produce  json
// @Param   id path string true "Record ID"
// @Success 200 {object} dto.RecordResponse
// @Failure 404 {object} map[string]string "Record not found"
// @Router /sales/{id} [get]
func (h *saleHandler) getSaleRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	record, err := h.saleService.GetSaleRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve record")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecordResponse(record))
}

// listSaleRecords godoc
// @Summary List sale records
// @Tags sales
// @Produce  json
// @Param   counterpartyID query string false "Only records for this customer"
// @Param   limit query int false "Limit number of results" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /sales [get]
func (h *saleHandler) listSaleRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListSaleRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	recs, nextToken, err := h.saleService.ListSaleRecords(c.Request.Context(), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(recs, nextToken))
}
