package models

import (
	"strings"
	"time"
)

type Plan string

const (
	PlanFree     Plan = "free"
	PlanPro      Plan = "pro"
	PlanLifetime Plan = "lifetime"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanPro, PlanLifetime:
		return true
	}
	return false
}

// IsPaid reports whether the plan unlocks Pro-tier features.
func (p Plan) IsPaid() bool {
	return p == PlanPro || p == PlanLifetime
}

type User struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Role           string        `json:"role"`
	IsVerified     bool          `json:"isVerified"`
	InitialBalance float64       `json:"initialBalance,omitempty"`
	Subscription   *Subscription `json:"subscription,omitempty"`
}

type Subscription struct {
	Plan          Plan       `json:"plan"`
	IsValid       bool       `json:"isValid"`
	IsExpired     bool       `json:"isExpired"`
	ExpiresAt     *time.Time `json:"expiresAt"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	TransactionID string     `json:"transactionId,omitempty"`
}

// FreeSubscription is the default state for accounts without a paid plan.
func FreeSubscription() Subscription {
	return Subscription{Plan: PlanFree, IsValid: true}
}

// Expired reports whether a pro subscription has passed its expiry.
// Free and lifetime plans never expire.
func (s Subscription) Expired(now time.Time) bool {
	if s.Plan != PlanPro {
		return false
	}
	if s.IsExpired {
		return true
	}
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// EffectivePlan is the plan used for gating: an expired pro plan gates as free.
func (s *Subscription) EffectivePlan(now time.Time) Plan {
	if s == nil || !s.Plan.Valid() {
		return PlanFree
	}
	if s.Expired(now) {
		return PlanFree
	}
	return s.Plan
}

// DaysLeft is nil for plans without expiry semantics.
func (s Subscription) DaysLeft(now time.Time) *int {
	if s.Plan != PlanPro || s.ExpiresAt == nil {
		return nil
	}
	days := int(s.ExpiresAt.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

type TransactionStatus string

const (
	StatusPendingPayment TransactionStatus = "PENDING_PAYMENT"
	StatusPaid           TransactionStatus = "PAID"
	StatusCanceled       TransactionStatus = "CANCELED"
	StatusExpired        TransactionStatus = "EXPIRED"
	StatusDenied         TransactionStatus = "DENIED"
)

// NormalizeStatus maps backend and raw Midtrans status strings onto the
// canonical set. Unknown values are treated as still pending.
func NormalizeStatus(raw string) TransactionStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "paid", "settlement", "capture", "success":
		return StatusPaid
	case "pending_payment", "pending", "":
		return StatusPendingPayment
	case "canceled", "cancelled", "cancel":
		return StatusCanceled
	case "expired", "expire":
		return StatusExpired
	case "denied", "deny", "failure", "failed":
		return StatusDenied
	}
	return StatusPendingPayment
}

func (s TransactionStatus) IsTerminal() bool {
	switch s {
	case StatusPaid, StatusCanceled, StatusExpired, StatusDenied:
		return true
	}
	return false
}

func (s TransactionStatus) IsFailure() bool {
	return s.IsTerminal() && s != StatusPaid
}

type Transaction struct {
	OrderID       string            `json:"orderId"`
	Plan          Plan              `json:"plan"`
	Total         float64           `json:"total"`
	Status        TransactionStatus `json:"status"`
	PaymentMethod string            `json:"payment_method,omitempty"`
	SnapToken     string            `json:"snap_token,omitempty"`
	InvoiceNumber string            `json:"invoiceNumber,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// CreatedTransaction is the payload of a successful create call.
type CreatedTransaction struct {
	Token         string `json:"token"`
	OrderID       string `json:"orderId"`
	InvoiceNumber string `json:"invoiceNumber"`
	RedirectURL   string `json:"redirect_url,omitempty"`
}

type Invoice struct {
	InvoiceNumber string    `json:"invoiceNumber"`
	OrderID       string    `json:"orderId"`
	Plan          Plan      `json:"plan"`
	Amount        float64   `json:"amount"`
	Discount      float64   `json:"discount"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Status        string    `json:"status"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	IssuedAt      time.Time `json:"issuedAt"`
}

type TradeResult string

const (
	ResultWin       TradeResult = "win"
	ResultLose      TradeResult = "lose"
	ResultBreakeven TradeResult = "breakeven"
)

type Trade struct {
	ID         string      `json:"id"`
	Date       time.Time   `json:"date"`
	Instrument string      `json:"instrument"`
	Type       string      `json:"type,omitempty"`
	Lot        float64     `json:"lot,omitempty"`
	Result     TradeResult `json:"result"`
	Profit     float64     `json:"profit"`
	Pips       float64     `json:"pips"`
	Strategy   string      `json:"strategy,omitempty"`
	Notes      string      `json:"notes,omitempty"`
}

type EventType string

const (
	EventMarketNews   EventType = "market_news"
	EventEconomic     EventType = "economic_event"
	EventTradeIdea    EventType = "trade_idea"
	EventReminder     EventType = "reminder"
	EventTradeReview  EventType = "trade_review"
	EventJournalEntry EventType = "journal_entry"
)

type Impact string

const (
	ImpactNone   Impact = "none"
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

type CalendarEvent struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Description string    `json:"description,omitempty"`
	Time        string    `json:"time,omitempty"`
	Impact      Impact    `json:"impact,omitempty"`
	Instrument  string    `json:"instrument,omitempty"`
	Strategy    string    `json:"strategy,omitempty"`
	Sentiment   string    `json:"sentiment,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

func (t EventType) Valid() bool {
	switch t {
	case EventMarketNews, EventEconomic, EventTradeIdea, EventReminder, EventTradeReview, EventJournalEntry:
		return true
	}
	return false
}

func (i Impact) Valid() bool {
	switch i {
	case "", ImpactNone, ImpactLow, ImpactMedium, ImpactHigh:
		return true
	}
	return false
}
