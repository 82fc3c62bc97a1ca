package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createReturnRequest{
		Reason:     "defective",
		ReturnMode: "relay_point",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "order_id is required") {
		t.Fatalf("message must use the json field name, got %q", err.Error())
	}
}

func TestValidator_OneOfListsAllowedValues(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createReturnRequest{
		OrderID:    "CMD-1",
		Reason:     "teleported",
		ReturnMode: "relay_point",
	})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "reason must be one of") || !strings.Contains(msg, "change_of_mind") {
		t.Fatalf("unexpected message: %q", msg)
	}
}

func TestValidator_ScoreBounds(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&rateReturnRequest{Score: 9})
	if err == nil || !strings.Contains(err.Error(), "score must be at most 5") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestValidator_AcceptsValidPayload(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createReturnRequest{
		OrderID:    "CMD-1",
		Reason:     "change_of_mind",
		ReturnMode: "relay_point",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
