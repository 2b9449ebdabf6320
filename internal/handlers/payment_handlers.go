package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"edusport/internal/apperrors"
	"edusport/internal/middleware"
	"edusport/internal/models"
	"edusport/internal/store"
	"edusport/pkg/logger"
)

// PaymentHandler handles payment records.
type PaymentHandler struct {
	db  *store.Store
	log *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(db *store.Store, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{db: db, log: log}
}

// List returns payments. Non-admin callers only ever see their own.
func (h *PaymentHandler) List(c echo.Context) error {
	userID, err := intQueryParam(c, "userId")
	if err != nil {
		return err
	}
	bookingID, err := intQueryParam(c, "bookingId")
	if err != nil {
		return err
	}
	if !middleware.IsAdmin(c, h.db) {
		current, _ := middleware.CurrentUser(c)
		userID = &current.ID
	}
	return c.JSON(http.StatusOK, h.db.ListPayments(userID, bookingID))
}

// Get returns one payment. Admins can read any; owners their own.
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	payment, ok := h.db.GetPayment(id)
	if !ok {
		return apperrors.NotFound("Payment not found")
	}
	current, _ := middleware.CurrentUser(c)
	if payment.UserID != current.ID && !middleware.IsAdmin(c, h.db) {
		return apperrors.Forbidden("Forbidden")
	}
	return c.JSON(http.StatusOK, payment)
}

type paymentRequest struct {
	UserID        int                  `json:"userId"`
	BookingID     *int                 `json:"bookingId"`
	Amount        int                  `json:"amount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Status        models.PaymentStatus `json:"status"`
	TransactionID string               `json:"transactionId"`
}

// Create records a payment. A completed payment tied to a booking confirms
// that booking in the same store transaction.
func (h *PaymentHandler) Create(c echo.Context) error {
	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Amount <= 0 {
		return apperrors.Validation("amount must be positive")
	}
	if !req.PaymentMethod.Valid() {
		return apperrors.Validation("Invalid payment method")
	}
	status := req.Status
	if status == "" {
		status = models.PaymentPending
	}
	if !status.Valid() {
		return apperrors.Validation("Invalid payment status")
	}

	current, _ := middleware.CurrentUser(c)
	userID := req.UserID
	if userID == 0 {
		userID = current.ID
	}
	if userID != current.ID && !middleware.IsAdmin(c, h.db) {
		return apperrors.Forbidden("Cannot pay for another user")
	}

	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	payment, err := h.db.RecordPayment(models.Payment{
		UserID:        userID,
		BookingID:     req.BookingID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        status,
		TransactionID: transactionID,
	})
	if err != nil {
		return err
	}
	h.log.Info("payment recorded",
		zap.Int("payment_id", payment.ID),
		zap.Int(logger.FieldUserID, payment.UserID),
		zap.Int("amount", payment.Amount),
		zap.String("status", string(payment.Status)))
	return c.JSON(http.StatusCreated, payment)
}

type paymentPatchRequest struct {
	Amount        *int                  `json:"amount"`
	PaymentMethod *models.PaymentMethod `json:"paymentMethod"`
	Status        *models.PaymentStatus `json:"status"`
	TransactionID *string               `json:"transactionId"`
}

// Patch updates a payment record. Admin only.
func (h *PaymentHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req paymentPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.PaymentMethod != nil && !req.PaymentMethod.Valid() {
		return apperrors.Validation("Invalid payment method")
	}
	if req.Status != nil && !req.Status.Valid() {
		return apperrors.Validation("Invalid payment status")
	}
	payment, err := h.db.UpdatePayment(id, store.PaymentPatch{
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, payment)
}
