package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"edusport/internal/apperrors"
	"edusport/internal/models"
	"edusport/internal/store"
)

// PromotionHandler handles discount codes.
type PromotionHandler struct {
	db    *store.Store
	log   *zap.Logger
	nowFn func() time.Time
}

// NewPromotionHandler creates a new PromotionHandler.
func NewPromotionHandler(db *store.Store, log *zap.Logger) *PromotionHandler {
	return &PromotionHandler{db: db, log: log, nowFn: time.Now}
}

// List returns promotions. The active filter applies only when the
// parameter is present and parses as a boolean.
func (h *PromotionHandler) List(c echo.Context) error {
	var active *bool
	if raw := c.QueryParam("active"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			active = &value
		}
	}
	return c.JSON(http.StatusOK, h.db.ListPromotions(active))
}

type promotionRequest struct {
	Code            string    `json:"code"`
	DiscountPercent *int      `json:"discountPercent"`
	DiscountAmount  *int      `json:"discountAmount"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	MaxUses         *int      `json:"maxUses"`
	SportCategoryID *int      `json:"sportCategoryId"`
	Description     string    `json:"description"`
	Active          *bool     `json:"active"`
}

// Create adds a promotion. Exactly one discount form must be given.
// Admin only.
func (h *PromotionHandler) Create(c echo.Context) error {
	var req promotionRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.Code == "" {
		return apperrors.Validation("code is required")
	}
	if (req.DiscountPercent == nil) == (req.DiscountAmount == nil) {
		return apperrors.Validation("Exactly one of discountPercent or discountAmount is required")
	}
	if req.DiscountPercent != nil && (*req.DiscountPercent <= 0 || *req.DiscountPercent > 100) {
		return apperrors.Validation("discountPercent must be between 1 and 100")
	}
	if req.DiscountAmount != nil && *req.DiscountAmount <= 0 {
		return apperrors.Validation("discountAmount must be positive")
	}
	if req.EndDate.Before(req.StartDate) {
		return apperrors.Validation("endDate must not be before startDate")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	promotion, err := h.db.CreatePromotion(models.Promotion{
		Code:            req.Code,
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxUses:         req.MaxUses,
		SportCategoryID: req.SportCategoryID,
		Description:     req.Description,
		Active:          active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, promotion)
}

type promotionPatchRequest struct {
	DiscountPercent *int       `json:"discountPercent"`
	DiscountAmount  *int       `json:"discountAmount"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	MaxUses         *int       `json:"maxUses"`
	Description     *string    `json:"description"`
	Active          *bool      `json:"active"`
}

// Patch updates a promotion. Setting one discount form clears the other.
// Admin only.
func (h *PromotionHandler) Patch(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	var req promotionPatchRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.Validation("Invalid request body")
	}
	if req.DiscountPercent != nil && req.DiscountAmount != nil {
		return apperrors.Validation("Only one of discountPercent or discountAmount may be set")
	}
	promotion, err := h.db.UpdatePromotion(id, store.PromotionPatch{
		DiscountPercent: req.DiscountPercent,
		DiscountAmount:  req.DiscountAmount,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		MaxUses:         req.MaxUses,
		Description:     req.Description,
		Active:          req.Active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, promotion)
}

// Validate checks a code without consuming a use.
func (h *PromotionHandler) Validate(c echo.Context) error {
	promotion, err := h.db.ValidatePromotion(c.Param("code"), h.nowFn())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"valid": true, "promotion": promotion})
}

// Redeem consumes one use of a code. The check and the counter bump happen
// atomically in the store.
func (h *PromotionHandler) Redeem(c echo.Context) error {
	promotion, err := h.db.RedeemPromotion(c.Param("code"), h.nowFn())
	if err != nil {
		return err
	}
	h.log.Info("promotion redeemed",
		zap.String("code", promotion.Code),
		zap.Int("use_count", promotion.UseCount))
	return c.JSON(http.StatusOK, promotion)
}
