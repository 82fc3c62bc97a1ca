package handler

import "time"

type returnEventRequest struct {
	ReturnID  string    `json:"return_id" validate:"required"`
	Status    string    `json:"status"    validate:"required,oneof=validated collected in_transit received processing refunded refused"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Source    string    `json:"source"    validate:"required"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

type returnEventResponse struct {
	ID          string    `json:"id"`
	ReturnID    string    `json:"return_id"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Timestamp   time.Time `json:"timestamp"`
	Source      string    `json:"source"`
}

type listEventsResponse struct {
	Data  []returnEventResponse `json:"data"`
	Count int                   `json:"count"`
}
