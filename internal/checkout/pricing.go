package checkout

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"tradejournal/internal/metrics"
	"tradejournal/internal/models"
)

var (
	ErrUnknownPlan   = errors.New("unknown plan")
	ErrInvalidCoupon = errors.New("invalid coupon code")
)

const Currency = "IDR"

type PlanInfo struct {
	Plan   models.Plan
	Name   string
	Price  decimal.Decimal
	Period string
}

var planCatalog = []PlanInfo{
	{Plan: models.PlanFree, Name: "Free", Price: decimal.Zero, Period: "forever"},
	{Plan: models.PlanPro, Name: "Pro", Price: decimal.NewFromInt(69000), Period: "month"},
	{Plan: models.PlanLifetime, Name: "Lifetime", Price: decimal.NewFromInt(399000), Period: "one-time"},
}

func (p PlanInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Plan     models.Plan `json:"plan"`
		Name     string      `json:"name"`
		Price    json.Number `json:"price"`
		Currency string      `json:"currency"`
		Period   string      `json:"period"`
	}{p.Plan, p.Name, json.Number(p.Price.String()), Currency, p.Period})
}

func Plans() []PlanInfo {
	out := make([]PlanInfo, len(planCatalog))
	copy(out, planCatalog)
	return out
}

func PlanFor(plan models.Plan) (PlanInfo, error) {
	for _, p := range planCatalog {
		if p.Plan == plan {
			return p, nil
		}
	}
	return PlanInfo{}, fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
}

type Coupon struct {
	Code    string
	Percent decimal.Decimal
	// Plan restricts the coupon to one plan; empty means any paid plan.
	Plan models.Plan
}

var coupons = map[string]Coupon{
	"PRO20":      {Code: "PRO20", Percent: decimal.NewFromInt(20), Plan: models.PlanPro},
	"LIFETIME25": {Code: "LIFETIME25", Percent: decimal.NewFromInt(25), Plan: models.PlanLifetime},
	"WELCOME10":  {Code: "WELCOME10", Percent: decimal.NewFromInt(10)},
}

func LookupCoupon(code string, plan models.Plan) (Coupon, error) {
	c, ok := coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok || !plan.IsPaid() || (c.Plan != "" && c.Plan != plan) {
		return Coupon{}, ErrInvalidCoupon
	}
	return c, nil
}

// Discount is the coupon's cut of price, rounded to whole rupiah.
func (c Coupon) Discount(price decimal.Decimal) decimal.Decimal {
	return price.Mul(c.Percent).Div(decimal.NewFromInt(100)).Round(0)
}

// CalculateTotal never goes below zero.
func CalculateTotal(price, discount decimal.Decimal) decimal.Decimal {
	total := price.Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

type Quote struct {
	Plan       models.Plan
	Price      decimal.Decimal
	Discount   decimal.Decimal
	CouponCode string
}

func NewQuote(plan models.Plan) (Quote, error) {
	info, err := PlanFor(plan)
	if err != nil {
		return Quote{}, err
	}
	return Quote{Plan: plan, Price: info.Price, Discount: decimal.Zero}, nil
}

func (q Quote) Total() decimal.Decimal {
	return CalculateTotal(q.Price, q.Discount)
}

// ApplyCoupon returns the quote with the coupon applied. An unknown code
// returns the quote unchanged together with ErrInvalidCoupon.
func (q Quote) ApplyCoupon(code string) (Quote, error) {
	c, err := LookupCoupon(code, q.Plan)
	if err != nil {
		metrics.RecordCoupon("rejected")
		return q, err
	}
	metrics.RecordCoupon("applied")
	q.CouponCode = c.Code
	q.Discount = c.Discount(q.Price)
	return q, nil
}

func (q Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Plan       models.Plan `json:"plan"`
		Currency   string      `json:"currency"`
		Price      json.Number `json:"price"`
		Discount   json.Number `json:"discount"`
		Total      json.Number `json:"total"`
		CouponCode string      `json:"couponCode,omitempty"`
	}{
		Plan:       q.Plan,
		Currency:   Currency,
		Price:      json.Number(q.Price.String()),
		Discount:   json.Number(q.Discount.String()),
		Total:      json.Number(q.Total().String()),
		CouponCode: q.CouponCode,
	})
}
