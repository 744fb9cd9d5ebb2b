package checkout

import (
	"errors"
	"fmt"
	"slices"

	"tradejournal/internal/models"
)

var ErrInvalidTransition = errors.New("invalid checkout transition")

type State string

const (
	StateIdle                State = "IDLE"
	StateConfirmingDowngrade State = "CONFIRMING_DOWNGRADE"
	StateDowngraded          State = "DOWNGRADED"
	StateCreatingTransaction State = "CREATING_TRANSACTION"
	StateAwaitingPayment     State = "AWAITING_PAYMENT"
	StatePendingVerification State = "PENDING_VERIFICATION"
	StateStillProcessing     State = "STILL_PROCESSING"
	StateSuccess             State = "SUCCESS"
	StateError               State = "ERROR"
	StateCanceled            State = "CANCELED"
)

// Terminal states end an orchestration run. StillProcessing is not terminal:
// the transaction may resolve later and can be re-checked.
func (s State) Terminal() bool {
	switch s {
	case StateDowngraded, StateSuccess, StateError, StateCanceled:
		return true
	}
	return false
}

// Active states belong to a run in progress.
func (s State) Active() bool {
	switch s {
	case StateConfirmingDowngrade, StateCreatingTransaction, StateAwaitingPayment, StatePendingVerification:
		return true
	}
	return false
}

type Event string

const (
	EventStartPaid          Event = "start_paid"
	EventStartFree          Event = "start_free"
	EventDowngradeConfirmed Event = "downgrade_confirmed"
	EventDowngradeDismissed Event = "downgrade_dismissed"
	EventCreated            Event = "transaction_created"
	EventCreateFailed       Event = "create_failed"
	EventWidgetSuccess      Event = "widget_success"
	EventWidgetPending      Event = "widget_pending"
	EventWidgetError        Event = "widget_error"
	EventWidgetClose        Event = "widget_close"
	EventCancelConfirmed    Event = "cancel_confirmed"
	EventStatusPaid         Event = "status_paid"
	EventStatusPending      Event = "status_pending"
	EventStatusFailed       Event = "status_failed"
	EventPollExhausted      Event = "poll_exhausted"
	EventRetry              Event = "retry"
	EventReopen             Event = "reopen"
	EventSessionExpired     Event = "session_expired"
	EventReset              Event = "reset"
)

type transition struct {
	From  State
	Event Event
}

var transitions = map[transition]State{
	{StateIdle, EventStartPaid}: StateCreatingTransaction,
	{StateIdle, EventStartFree}: StateConfirmingDowngrade,

	{StateConfirmingDowngrade, EventDowngradeConfirmed}: StateDowngraded,
	{StateConfirmingDowngrade, EventDowngradeDismissed}: StateIdle,

	{StateCreatingTransaction, EventCreated}:      StateAwaitingPayment,
	{StateCreatingTransaction, EventCreateFailed}: StateError,

	{StateAwaitingPayment, EventWidgetSuccess}:   StateSuccess,
	{StateAwaitingPayment, EventWidgetPending}:   StatePendingVerification,
	{StateAwaitingPayment, EventWidgetClose}:     StatePendingVerification,
	{StateAwaitingPayment, EventWidgetError}:     StateError,
	{StateAwaitingPayment, EventCancelConfirmed}: StateCanceled,
	{StateAwaitingPayment, EventStatusPaid}:      StateSuccess,
	{StateAwaitingPayment, EventStatusFailed}:    StateError,

	{StatePendingVerification, EventStatusPaid}:      StateSuccess,
	{StatePendingVerification, EventStatusPending}:   StatePendingVerification,
	{StatePendingVerification, EventStatusFailed}:    StateError,
	{StatePendingVerification, EventPollExhausted}:   StateStillProcessing,
	{StatePendingVerification, EventRetry}:           StatePendingVerification,
	{StatePendingVerification, EventReopen}:          StateAwaitingPayment,
	{StatePendingVerification, EventCancelConfirmed}: StateCanceled,

	{StateStillProcessing, EventStatusPaid}:      StateSuccess,
	{StateStillProcessing, EventStatusPending}:   StateStillProcessing,
	{StateStillProcessing, EventStatusFailed}:    StateError,
	{StateStillProcessing, EventRetry}:           StatePendingVerification,
	{StateStillProcessing, EventReopen}:          StateAwaitingPayment,
	{StateStillProcessing, EventCancelConfirmed}: StateCanceled,

	// resume after reload starts from Idle with no widget mounted
	{StateIdle, EventStatusPaid}:   StateSuccess,
	{StateIdle, EventStatusFailed}: StateError,
	{StateIdle, EventReopen}:       StateAwaitingPayment,
}

var sessionExpirable = []State{
	StateCreatingTransaction,
	StateAwaitingPayment,
	StatePendingVerification,
	StateStillProcessing,
}

// Transition is the pure checkout transition function.
func Transition(from State, ev Event) (State, error) {
	if ev == EventReset {
		return StateIdle, nil
	}
	if ev == EventSessionExpired && slices.Contains(sessionExpirable, from) {
		return StateError, nil
	}
	if to, ok := transitions[transition{from, ev}]; ok {
		return to, nil
	}
	return from, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
}

// EventsFrom lists the events accepted in state s, sorted.
func EventsFrom(s State) []Event {
	events := []Event{EventReset}
	for t := range transitions {
		if t.From == s {
			events = append(events, t.Event)
		}
	}
	if slices.Contains(sessionExpirable, s) {
		events = append(events, EventSessionExpired)
	}
	slices.Sort(events)
	return events
}

// StatusEvent maps a normalized transaction status onto a machine event.
func StatusEvent(status models.TransactionStatus) Event {
	switch {
	case status.IsFailure():
		return EventStatusFailed
	case status.IsTerminal():
		return EventStatusPaid
	}
	return EventStatusPending
}
