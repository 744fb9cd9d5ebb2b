package checkout

import (
	"sync"

	"github.com/google/uuid"
)

type WidgetEventType string

const (
	WidgetSuccess WidgetEventType = "success"
	WidgetPending WidgetEventType = "pending"
	WidgetError   WidgetEventType = "error"
	WidgetClose   WidgetEventType = "close"
)

func (t WidgetEventType) event() (Event, bool) {
	switch t {
	case WidgetSuccess:
		return EventWidgetSuccess, true
	case WidgetPending:
		return EventWidgetPending, true
	case WidgetError:
		return EventWidgetError, true
	case WidgetClose:
		return EventWidgetClose, true
	}
	return "", false
}

// WidgetEvent is a Snap callback forwarded by the browser shell. The
// result fields mirror the gateway's callback payload.
type WidgetEvent struct {
	Type              WidgetEventType `json:"type" validate:"required,oneof=success pending error close"`
	OrderID           string          `json:"order_id,omitempty"`
	TransactionStatus string          `json:"transaction_status,omitempty"`
	StatusMessage     string          `json:"status_message,omitempty"`
	PaymentType       string          `json:"payment_type,omitempty"`
}

// Session is what the shell needs to call snap.embed.
type Session struct {
	Token     string `json:"token"`
	OrderID   string `json:"orderId"`
	ClientKey string `json:"clientKey"`
	EmbedID   string `json:"embedId"`
	ScriptURL string `json:"scriptUrl"`
}

type Widget interface {
	// Mount opens the widget. While a session is mounted further calls
	// return the existing session untouched.
	Mount(token, orderID string) Session
	Unmount()
	Current() (Session, bool)
}

type SnapWidget struct {
	clientKey string
	scriptURL string

	mu      sync.Mutex
	session *Session
}

func NewSnapWidget(clientKey, scriptURL string) *SnapWidget {
	return &SnapWidget{clientKey: clientKey, scriptURL: scriptURL}
}

func (w *SnapWidget) Mount(token, orderID string) Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session != nil {
		return *w.session
	}
	w.session = &Session{
		Token:     token,
		OrderID:   orderID,
		ClientKey: w.clientKey,
		EmbedID:   "snap-container-" + uuid.NewString(),
		ScriptURL: w.scriptURL,
	}
	return *w.session
}

func (w *SnapWidget) Unmount() {
	w.mu.Lock()
	w.session = nil
	w.mu.Unlock()
}

func (w *SnapWidget) Current() (Session, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.session == nil {
		return Session{}, false
	}
	return *w.session, true
}
