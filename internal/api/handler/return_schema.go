package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createReturnRequest struct {
	OrderID     string `json:"order_id"    validate:"required"`
	Reason      string `json:"reason"      validate:"required,oneof=defective recycling refurbish deposit change_of_mind"`
	ReturnMode  string `json:"return_mode" validate:"required,oneof=home_pickup relay_point store_dropoff"`
	Description string `json:"description"`
	ProofImage  string `json:"proof_image"`
}

type transitionRequest struct {
	Status string `json:"status" validate:"required,oneof=validated collected in_transit received processing refunded refused"`
}

type rateReturnRequest struct {
	Score int `json:"score" validate:"required,min=1,max=5"`
}

// --- Response types ---
// Response-only types owned by the transport layer. They are intentionally
// separate from domain types so the JSON contract is not coupled to
// internal changes. Labels carry the display names of the original
// French storefront.

type timelineEntryResponse struct {
	Status string    `json:"status"`
	Label  string    `json:"label"`
	Date   time.Time `json:"date"`
}

type returnLinks struct {
	Self   string `json:"self"`
	Events string `json:"events"`
}

type returnResponse struct {
	ID           string                  `json:"id"`
	OrderID      string                  `json:"order_id"`
	ClientEmail  string                  `json:"client_email"`
	RequestDate  time.Time               `json:"request_date"`
	Reason       string                  `json:"reason"`
	ReasonLabel  string                  `json:"reason_label"`
	ReturnMode   string                  `json:"return_mode"`
	ModeLabel    string                  `json:"return_mode_label"`
	Description  string                  `json:"description,omitempty"`
	ProofImage   string                  `json:"proof_image,omitempty"`
	Status       string                  `json:"status"`
	StatusLabel  string                  `json:"status_label"`
	Progress     int                     `json:"progress"`
	Satisfaction int                     `json:"satisfaction,omitempty"`
	Timeline     []timelineEntryResponse `json:"timeline"`
	Links        returnLinks             `json:"_links"`
}

// returnSummaryResponse is the lightweight item used in list responses.
// It intentionally omits the timeline to keep payloads small.
type returnSummaryResponse struct {
	ID          string      `json:"id"`
	OrderID     string      `json:"order_id"`
	ClientEmail string      `json:"client_email"`
	RequestDate time.Time   `json:"request_date"`
	Reason      string      `json:"reason"`
	ReasonLabel string      `json:"reason_label"`
	ReturnMode  string      `json:"return_mode"`
	Status      string      `json:"status"`
	StatusLabel string      `json:"status_label"`
	Progress    int         `json:"progress"`
	Links       returnLinks `json:"_links"`
}

type listReturnsResponse struct {
	Data  []returnSummaryResponse `json:"data"`
	Count int                     `json:"count"`
}

type dashboardStatsResponse struct {
	Pending             int            `json:"pending"`
	Processed           int            `json:"processed"`
	AverageSatisfaction float64        `json:"average_satisfaction"`
	ReasonBreakdown     map[string]int `json:"reason_breakdown"`
}
