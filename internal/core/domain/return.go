package domain

import (
	"errors"
	"time"
)

// ReturnStatus represents the lifecycle state of a return request.
type ReturnStatus string

const (
	StatusCreated    ReturnStatus = "created"
	StatusValidated  ReturnStatus = "validated"
	StatusCollected  ReturnStatus = "collected"
	StatusInTransit  ReturnStatus = "in_transit"
	StatusReceived   ReturnStatus = "received"
	StatusProcessing ReturnStatus = "processing"
	StatusRefunded   ReturnStatus = "refunded"
	StatusRefused    ReturnStatus = "refused"
)

// validTransitions defines the allowed state machine transitions.
// A request moves forward only; refused is reachable both at triage time
// (operator rejects a fresh request) and after inspection.
var validTransitions = map[ReturnStatus][]ReturnStatus{
	StatusCreated:    {StatusValidated, StatusRefused},
	StatusValidated:  {StatusCollected},
	StatusCollected:  {StatusInTransit, StatusReceived},
	StatusInTransit:  {StatusReceived},
	StatusReceived:   {StatusProcessing},
	StatusProcessing: {StatusRefunded, StatusRefused},
}

// progressByStatus maps each status to the completion percentage shown to
// the client. in_transit has no entry on purpose: reaching it leaves the
// progress bar where the collected step put it.
var progressByStatus = map[ReturnStatus]int{
	StatusCreated:    0,
	StatusValidated:  20,
	StatusCollected:  40,
	StatusReceived:   60,
	StatusProcessing: 80,
	StatusRefunded:   100,
	StatusRefused:    100,
}

var (
	ErrReturnNotFound     = errors.New("return request not found")
	ErrDuplicateReturn    = errors.New("return request already exists")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrMissingProof       = errors.New("proof image required for defective returns")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotRatable         = errors.New("return request is not resolved yet")
	ErrAlreadyRated       = errors.New("return request already rated")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
)

// ValidationError reports a required draft field that is missing or out of
// range. The wizard surfaces it inline; the API maps it to 422.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// CanTransitionTo reports whether a transition from the current status to
// next is allowed.
func (s ReturnStatus) CanTransitionTo(next ReturnStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status closes the request.
func (s ReturnStatus) IsTerminal() bool {
	return s == StatusRefunded || s == StatusRefused
}

// Label returns the display name used by the original French UI.
func (s ReturnStatus) Label() string {
	switch s {
	case StatusCreated:
		return "Créé"
	case StatusValidated:
		return "Validé"
	case StatusCollected:
		return "Collecté"
	case StatusInTransit:
		return "En Transit"
	case StatusReceived:
		return "Réceptionné"
	case StatusProcessing:
		return "Traitement"
	case StatusRefunded:
		return "Remboursé"
	case StatusRefused:
		return "Refusé"
	}
	return string(s)
}

// ProgressFor returns the completion percentage for a status. Statuses
// without a mapping keep the caller's current progress.
func ProgressFor(status ReturnStatus, current int) int {
	if p, ok := progressByStatus[status]; ok {
		return p
	}
	return current
}

// ReturnReason is the closed set of motives a client can return goods for.
type ReturnReason string

const (
	ReasonDefective  ReturnReason = "defective"
	ReasonRecycling  ReturnReason = "recycling"
	ReasonRefurbish  ReturnReason = "refurbish"
	ReasonDeposit    ReturnReason = "deposit"
	ReasonChangeMind ReturnReason = "change_of_mind"
)

// Reasons lists all return reasons in display order.
func Reasons() []ReturnReason {
	return []ReturnReason{ReasonDefective, ReasonRecycling, ReasonRefurbish, ReasonDeposit, ReasonChangeMind}
}

// Label returns the display name used by the original French UI.
func (r ReturnReason) Label() string {
	switch r {
	case ReasonDefective:
		return "Défectueux"
	case ReasonRecycling:
		return "Recyclage"
	case ReasonRefurbish:
		return "Reconditionnement"
	case ReasonDeposit:
		return "Consigne"
	case ReasonChangeMind:
		return "Changement d'avis"
	}
	return string(r)
}

// ReturnMode is the logistics channel chosen for sending the item back.
type ReturnMode string

const (
	ModeHomePickup   ReturnMode = "home_pickup"
	ModeRelayPoint   ReturnMode = "relay_point"
	ModeStoreDropoff ReturnMode = "store_dropoff"
)

// Label returns the display name used by the original French UI.
func (m ReturnMode) Label() string {
	switch m {
	case ModeHomePickup:
		return "Collecte à Domicile"
	case ModeRelayPoint:
		return "Point Relais"
	case ModeStoreDropoff:
		return "Dépôt Magasin"
	}
	return string(m)
}

// TimelineEntry records a single status assignment on a return request.
type TimelineEntry struct {
	Status ReturnStatus `json:"status" bson:"status"`
	Date   time.Time    `json:"date" bson:"date"`
}

// ReturnRequest is the core aggregate root. Identity, order reference,
// client, reason, mode and request date are fixed at creation; only
// status, progress, satisfaction and the timeline change afterwards, and
// only through the lifecycle operations.
type ReturnRequest struct {
	ID           string          `json:"id" bson:"_id"`
	OrderID      string          `json:"order_id" bson:"order_id"`
	ClientEmail  string          `json:"client_email" bson:"client_email"`
	RequestDate  time.Time       `json:"request_date" bson:"request_date"`
	Reason       ReturnReason    `json:"reason" bson:"reason"`
	ProofImage   string          `json:"proof_image,omitempty" bson:"proof_image,omitempty"`
	Description  string          `json:"description,omitempty" bson:"description,omitempty"`
	ReturnMode   ReturnMode      `json:"return_mode" bson:"return_mode"`
	Status       ReturnStatus    `json:"status" bson:"status"`
	Progress     int             `json:"progress" bson:"progress"`
	Satisfaction int             `json:"satisfaction,omitempty" bson:"satisfaction,omitempty"`
	Timeline     []TimelineEntry `json:"timeline" bson:"timeline"`
}

// ReturnEvent is a carrier status update kept in the audit trail.
type ReturnEvent struct {
	ID        string       `json:"id" bson:"_id"`
	ReturnID  string       `json:"return_id" bson:"return_id"`
	Status    ReturnStatus `json:"status" bson:"status"`
	Timestamp time.Time    `json:"timestamp" bson:"timestamp"`
	Source    string       `json:"source" bson:"source"`
}
