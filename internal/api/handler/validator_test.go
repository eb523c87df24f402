package handler

import (
	"strings"
	"testing"
)

func TestValidator_CollapsesAllFieldFailures(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&loginRequest{Email: "not-an-email", Password: ""})
	if err == nil {
		t.Fatalf("expected validation failure")
	}

	msg := err.Error()
	if !strings.Contains(msg, "email is not a valid email address") {
		t.Fatalf("missing email failure in %q", msg)
	}
	if !strings.Contains(msg, "password is missing") {
		t.Fatalf("missing password failure in %q", msg)
	}
}

func TestValidator_ShippingFormMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&checkoutRequest{
		FullName: "A Shopper",
		Email:    "shopper@example.com",
		Phone:    "123", // too short
		Address:  "12 Teak Lane",
		City:     "Pune",
		State:    "MH",
		Pincode:  "411001",
	})
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if got := err.Error(); got != "phone must be 10 or more" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestValidator_PassesCleanInput(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&addCartItemRequest{ProductID: "11", Name: "Oak Chair", Price: 120.5}); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
