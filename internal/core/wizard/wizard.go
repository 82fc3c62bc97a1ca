// Package wizard implements the four-step return creation flow as a plain
// state machine, decoupled from any rendering front end. A Wizard holds
// the transient draft for one client session; nothing is persisted until
// the review step is confirmed, and exiting without submitting discards
// everything.
package wizard

import (
	"context"

	"github.com/retours-express/returns-platform/internal/core/domain"
	"github.com/retours-express/returns-platform/internal/core/ports"
)

// Step identifies a position in the creation flow.
type Step int

const (
	StepProduct Step = iota // pick the order/product to send back
	StepReason              // pick a reason, optionally describe, attach proof
	StepMode                // pick the logistics channel
	StepReview              // confirm and submit
)

// Label returns the display name used by the original French UI stepper.
func (s Step) Label() string {
	switch s {
	case StepProduct:
		return "Produit"
	case StepReason:
		return "Motif"
	case StepMode:
		return "Mode"
	case StepReview:
		return "Récap"
	}
	return "?"
}

// Wizard sequences the intake flow for a single client. It is not safe
// for concurrent use; one wizard per session.
type Wizard struct {
	svc         ports.ReturnService
	clientEmail string

	step        Step
	order       *domain.Order
	reason      domain.ReturnReason
	description string
	mode        domain.ReturnMode
	proofImage  string
}

// New returns a wizard at the product step for the given client.
func New(svc ports.ReturnService, clientEmail string) *Wizard {
	return &Wizard{svc: svc, clientEmail: clientEmail}
}

// Step reports the current step index.
func (w *Wizard) Step() Step {
	return w.step
}

// SelectOrder records the order whose product is being returned.
func (w *Wizard) SelectOrder(order *domain.Order) {
	w.order = order
}

// ChooseReason records the return motive.
func (w *Wizard) ChooseReason(reason domain.ReturnReason) {
	w.reason = reason
}

// SetDescription records the optional free-text detail.
func (w *Wizard) SetDescription(description string) {
	w.description = description
}

// AttachProof records the opaque upload reference produced by the image
// upload collaborator.
func (w *Wizard) AttachProof(ref string) {
	w.proofImage = ref
}

// ChooseMode records the logistics channel.
func (w *Wizard) ChooseMode(mode domain.ReturnMode) {
	w.mode = mode
}

// Advance moves to the next step if the current step's admission rule is
// satisfied; on failure the step index is unchanged and the error tells
// the caller what to surface. Advancing past the review step submits the
// draft: the created request is returned and the wizard resets.
func (w *Wizard) Advance(ctx context.Context) (*domain.ReturnRequest, error) {
	switch w.step {
	case StepProduct:
		if w.order == nil {
			return nil, &domain.ValidationError{Field: "order"}
		}
	case StepReason:
		if w.reason == "" {
			return nil, &domain.ValidationError{Field: "reason"}
		}
		if w.reason == domain.ReasonDefective && w.proofImage == "" {
			return nil, domain.ErrMissingProof
		}
	case StepMode:
		if w.mode == "" {
			return nil, &domain.ValidationError{Field: "return_mode"}
		}
	case StepReview:
		return w.submit(ctx)
	}

	w.step++
	return nil, nil
}

// Retreat moves to the previous step; a no-op at the product step.
func (w *Wizard) Retreat() {
	if w.step > StepProduct {
		w.step--
	}
}

// Reset discards the draft and returns to the product step.
func (w *Wizard) Reset() {
	w.step = StepProduct
	w.order = nil
	w.reason = ""
	w.description = ""
	w.mode = ""
	w.proofImage = ""
}

func (w *Wizard) submit(ctx context.Context) (*domain.ReturnRequest, error) {
	created, err := w.svc.CreateReturn(ctx, ports.CreateReturnInput{
		OrderID:     w.order.ID,
		ClientEmail: w.clientEmail,
		Reason:      w.reason,
		ReturnMode:  w.mode,
		Description: w.description,
		ProofImage:  w.proofImage,
	})
	if err != nil {
		// Draft stays intact so the client can fix and retry.
		return nil, err
	}
	w.Reset()
	return created, nil
}
