package store

import (
	"time"

	"edusport/internal/apperrors"
	"edusport/internal/models"
)

// PromotionPatch is a partial update; nil fields are left untouched.
type PromotionPatch struct {
	DiscountPercent *int
	DiscountAmount  *int
	StartDate       *time.Time
	EndDate         *time.Time
	MaxUses         *int
	Description     *string
	Active          *bool
}

// CreatePromotion inserts a promotion. Code uniqueness is enforced under
// the write lock.
func (s *Store) CreatePromotion(promotion models.Promotion) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.promotions {
		if existing.Code == promotion.Code {
			return models.Promotion{}, apperrors.Conflict("Promotion code already exists")
		}
	}
	if promotion.SportCategoryID != nil {
		if _, ok := s.sportCategories[*promotion.SportCategoryID]; !ok {
			return models.Promotion{}, apperrors.NotFound("Sport category not found")
		}
	}
	s.promotionID++
	promotion.ID = s.promotionID
	s.promotions[promotion.ID] = promotion
	return promotion, nil
}

func (s *Store) GetPromotion(id int) (models.Promotion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	promotion, ok := s.promotions[id]
	return promotion, ok
}

func (s *Store) GetPromotionByCode(code string) (models.Promotion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	promotion, ok := s.promotionByCodeLocked(code)
	return promotion, ok
}

func (s *Store) promotionByCodeLocked(code string) (models.Promotion, bool) {
	for _, promotion := range s.promotions {
		if promotion.Code == code {
			return promotion, true
		}
	}
	return models.Promotion{}, false
}

func (s *Store) UpdatePromotion(id int, patch PromotionPatch) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promotion, ok := s.promotions[id]
	if !ok {
		return models.Promotion{}, apperrors.NotFound("Promotion not found")
	}
	if patch.DiscountPercent != nil {
		promotion.DiscountPercent = patch.DiscountPercent
		promotion.DiscountAmount = nil
	}
	if patch.DiscountAmount != nil {
		promotion.DiscountAmount = patch.DiscountAmount
		promotion.DiscountPercent = nil
	}
	if patch.StartDate != nil {
		promotion.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		promotion.EndDate = *patch.EndDate
	}
	if patch.MaxUses != nil {
		promotion.MaxUses = patch.MaxUses
	}
	if patch.Description != nil {
		promotion.Description = *patch.Description
	}
	if patch.Active != nil {
		promotion.Active = *patch.Active
	}
	s.promotions[id] = promotion
	return promotion, nil
}

// ListPromotions returns promotions in creation order, optionally filtered
// by the active flag.
func (s *Store) ListPromotions(active *bool) []models.Promotion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Promotion, 0, len(s.promotions))
	for _, promotion := range s.promotions {
		if active != nil && promotion.Active != *active {
			continue
		}
		out = append(out, promotion)
	}
	return sortByID(out, func(p models.Promotion) int { return p.ID })
}

// checkPromotion applies the validation chain shared by validate and redeem.
func checkPromotion(promotion models.Promotion, now time.Time) error {
	if !promotion.Active {
		return apperrors.BusinessRule("Promotion is inactive")
	}
	if now.Before(promotion.StartDate) || now.After(promotion.EndDate) {
		return apperrors.BusinessRule("Promotion is not valid at this time")
	}
	if promotion.MaxUses != nil && promotion.UseCount >= *promotion.MaxUses {
		return apperrors.BusinessRule("Promotion usage limit reached")
	}
	return nil
}

// ValidatePromotion runs the read-only validation chain: active flag, date
// window, usage ceiling. It does not consume a use.
func (s *Store) ValidatePromotion(code string, now time.Time) (models.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	promotion, ok := s.promotionByCodeLocked(code)
	if !ok {
		return models.Promotion{}, apperrors.NotFound("Promotion not found")
	}
	if err := checkPromotion(promotion, now); err != nil {
		return models.Promotion{}, err
	}
	return promotion, nil
}

// RedeemPromotion validates and increments the use counter as one atomic
// read-modify-write, so a capped code can never be over-redeemed by
// concurrent requests.
func (s *Store) RedeemPromotion(code string, now time.Time) (models.Promotion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	promotion, ok := s.promotionByCodeLocked(code)
	if !ok {
		return models.Promotion{}, apperrors.NotFound("Promotion not found")
	}
	if err := checkPromotion(promotion, now); err != nil {
		return models.Promotion{}, err
	}
	promotion.UseCount++
	s.promotions[promotion.ID] = promotion
	return promotion, nil
}
