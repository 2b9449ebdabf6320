package store

import (
	"sync"
	"testing"
	"time"

	"edusport/internal/apperrors"
	"edusport/internal/models"
)

func promoWindow(t *testing.T) (time.Time, time.Time, time.Time) {
	t.Helper()
	now := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	return now, now.AddDate(0, 0, -7), now.AddDate(0, 0, 7)
}

func TestCreatePromotionDuplicateCode(t *testing.T) {
	s := New()
	_, start, end := promoWindow(t)
	percent := 10

	if _, err := s.CreatePromotion(models.Promotion{
		Code: "HELLO10", DiscountPercent: &percent, StartDate: start, EndDate: end, Active: true,
	}); err != nil {
		t.Fatal(err)
	}
	_, err := s.CreatePromotion(models.Promotion{
		Code: "HELLO10", DiscountPercent: &percent, StartDate: start, EndDate: end, Active: true,
	})
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestValidatePromotion(t *testing.T) {
	s := New()
	now, start, end := promoWindow(t)
	percent := 20
	limit := 3

	cases := []struct {
		name  string
		promo models.Promotion
		kind  apperrors.Kind
	}{
		{
			name:  "valid",
			promo: models.Promotion{Code: "OK", DiscountPercent: &percent, StartDate: start, EndDate: end, Active: true},
			kind:  "",
		},
		{
			name:  "inactive",
			promo: models.Promotion{Code: "OFF", DiscountPercent: &percent, StartDate: start, EndDate: end, Active: false},
			kind:  apperrors.KindBusinessRule,
		},
		{
			name:  "not started",
			promo: models.Promotion{Code: "SOON", DiscountPercent: &percent, StartDate: now.AddDate(0, 0, 1), EndDate: end.AddDate(0, 1, 0), Active: true},
			kind:  apperrors.KindBusinessRule,
		},
		{
			name:  "expired",
			promo: models.Promotion{Code: "LATE", DiscountPercent: &percent, StartDate: start.AddDate(0, -1, 0), EndDate: now.AddDate(0, 0, -1), Active: true},
			kind:  apperrors.KindBusinessRule,
		},
		{
			name:  "limit reached",
			promo: models.Promotion{Code: "FULL", DiscountPercent: &percent, StartDate: start, EndDate: end, MaxUses: &limit, UseCount: 3, Active: true},
			kind:  apperrors.KindBusinessRule,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := s.CreatePromotion(tc.promo); err != nil {
				t.Fatal(err)
			}
			_, err := s.ValidatePromotion(tc.promo.Code, now)
			if tc.kind == "" {
				if err != nil {
					t.Errorf("expected valid, got %v", err)
				}
			} else if apperrors.KindOf(err) != tc.kind {
				t.Errorf("expected %s, got %v", tc.kind, err)
			}
		})
	}

	if _, err := s.ValidatePromotion("NOPE", now); apperrors.KindOf(err) != apperrors.KindNotFound {
		t.Errorf("unknown code: expected not_found, got %v", err)
	}
}

func TestRedeemPromotionIncrementsUseCount(t *testing.T) {
	s := New()
	now, start, end := promoWindow(t)
	amount := 50000

	if _, err := s.CreatePromotion(models.Promotion{
		Code: "GIAM50K", DiscountAmount: &amount, StartDate: start, EndDate: end, Active: true,
	}); err != nil {
		t.Fatal(err)
	}

	redeemed, err := s.RedeemPromotion("GIAM50K", now)
	if err != nil {
		t.Fatalf("RedeemPromotion: %v", err)
	}
	if redeemed.UseCount != 1 {
		t.Errorf("expected useCount 1, got %d", redeemed.UseCount)
	}

	// Validation is read-only and must not consume a use.
	if _, err := s.ValidatePromotion("GIAM50K", now); err != nil {
		t.Fatal(err)
	}
	got, _ := s.GetPromotionByCode("GIAM50K")
	if got.UseCount != 1 {
		t.Errorf("validate consumed a use: %d", got.UseCount)
	}
}

func TestConcurrentRedeemRespectsLimit(t *testing.T) {
	s := New()
	now, start, end := promoWindow(t)
	percent := 15
	limit := 1

	if _, err := s.CreatePromotion(models.Promotion{
		Code: "ONCE", DiscountPercent: &percent, StartDate: start, EndDate: end, MaxUses: &limit, Active: true,
	}); err != nil {
		t.Fatal(err)
	}

	const attempts = 20
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.RedeemPromotion("ONCE", now)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly 1 redemption, got %d", succeeded)
	}
	got, _ := s.GetPromotionByCode("ONCE")
	if got.UseCount != 1 {
		t.Errorf("useCount overshot the cap: %d", got.UseCount)
	}
}

func TestUpdatePromotionSwitchesDiscountForm(t *testing.T) {
	s := New()
	_, start, end := promoWindow(t)
	percent := 10

	promo, err := s.CreatePromotion(models.Promotion{
		Code: "SWAP", DiscountPercent: &percent, StartDate: start, EndDate: end, Active: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	amount := 30000
	updated, err := s.UpdatePromotion(promo.ID, PromotionPatch{DiscountAmount: &amount})
	if err != nil {
		t.Fatal(err)
	}
	if updated.DiscountAmount == nil || *updated.DiscountAmount != amount {
		t.Errorf("amount not set: %+v", updated)
	}
	if updated.DiscountPercent != nil {
		t.Errorf("percent should be cleared when amount is set")
	}
}
