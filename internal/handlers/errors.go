package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/woodybriggs/ledger/internal/apperrors"
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/core/records"
)

// respondWithError maps a service error onto an HTTP status. Client errors
// echo the error text, server errors return fallbackMsg only.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var committed *records.PaymentCommittedError
	switch {
	case errors.As(err, &committed):
		// The payment exists; tell the client which one so it does not post it again.
		logger.Error("Payment posted but invoice not updated",
			slog.String("payment_id", committed.PaymentID),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Payment was posted but the invoice could not be updated",
			"paymentID": committed.PaymentID,
			"invoiceID": committed.InvoiceID,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrLedgerImbalance):
		logger.Error("Ledger does not balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}
