package featuregate

import (
	"errors"
	"fmt"

	"tradejournal/internal/metrics"
	"tradejournal/internal/models"
)

var (
	ErrUnknownFeature  = errors.New("unknown feature")
	ErrUpgradeRequired = errors.New("upgrade required")
)

type Feature string

const (
	ProfitFactor            Feature = "profit_factor"
	MonthlyPerformance      Feature = "monthly_performance"
	InstrumentPerformance   Feature = "instrument_performance"
	UnlimitedCalendarEvents Feature = "unlimited_calendar_events"
	AdvancedAnalytics       Feature = "advanced_analytics"
	DrawdownAnalysis        Feature = "drawdown_analysis"
	StreakAnalysis          Feature = "streak_analysis"
	TradeExport             Feature = "trade_export"
	PerformanceTargets      Feature = "performance_targets"
)

// All lists every gated feature in catalog order.
var All = []Feature{
	ProfitFactor,
	MonthlyPerformance,
	InstrumentPerformance,
	UnlimitedCalendarEvents,
	AdvancedAnalytics,
	DrawdownAnalysis,
	StreakAnalysis,
	TradeExport,
	PerformanceTargets,
}

// UpgradePath is where every upgrade prompt sends the user.
const UpgradePath = "/upgrade"

type Info struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

type Prompt struct {
	Feature Feature `json:"featureKey"`
	Info
	CTALabel string `json:"ctaLabel"`
	CTAPath  string `json:"ctaPath"`
}

// Parse resolves a feature key, rejecting anything outside the catalog.
func Parse(key string) (Feature, error) {
	f := Feature(key)
	if _, ok := catalog[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFeature, key)
	}
	return f, nil
}

// HasAccess is true for every catalogued feature on pro and lifetime plans.
func HasAccess(plan models.Plan, f Feature) bool {
	if _, ok := catalog[f]; !ok {
		return false
	}
	return plan.IsPaid()
}

// Check evaluates the gate and, when denied, returns the upgrade prompt.
func Check(plan models.Plan, f Feature) (bool, *Prompt) {
	if HasAccess(plan, f) {
		return true, nil
	}
	metrics.RecordFeatureDenial(string(f))
	p := PromptFor(f)
	return false, &p
}

// DeniedError carries the upgrade prompt for a refused feature.
type DeniedError struct {
	Prompt Prompt
}

func (e *DeniedError) Error() string {
	return fmt.Sprintf("upgrade required for %s", e.Prompt.Feature)
}

func (e *DeniedError) Unwrap() error {
	return ErrUpgradeRequired
}

// Require is Check for call sites that stop on denial.
func Require(plan models.Plan, f Feature) error {
	if ok, p := Check(plan, f); !ok {
		return &DeniedError{Prompt: *p}
	}
	return nil
}

func Describe(f Feature) (Info, bool) {
	info, ok := catalog[f]
	return info, ok
}

func PromptFor(f Feature) Prompt {
	info := catalog[f]
	return Prompt{
		Feature:  f,
		Info:     info,
		CTALabel: "Upgrade to Pro",
		CTAPath:  UpgradePath,
	}
}

// Gates maps every feature to its access decision for plan.
func Gates(plan models.Plan) map[Feature]bool {
	out := make(map[Feature]bool, len(All))
	for _, f := range All {
		out[f] = HasAccess(plan, f)
	}
	return out
}

// PlanFeatures lists the features a plan unlocks.
func PlanFeatures(plan models.Plan) []Feature {
	var out []Feature
	for _, f := range All {
		if HasAccess(plan, f) {
			out = append(out, f)
		}
	}
	return out
}

// Diff splits the features of from into those lost and kept when moving to to.
func Diff(from, to models.Plan) (lost, kept []Feature) {
	for _, f := range PlanFeatures(from) {
		if HasAccess(to, f) {
			kept = append(kept, f)
		} else {
			lost = append(lost, f)
		}
	}
	return lost, kept
}
