// CulturePass Discover - Personalised Feed and Search for CulturePass AU
// Copyright 2026 CulturePass AU
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/culturepassau/discover

package validation

import (
	"strings"
	"testing"
)

type pageRequest struct {
	Page     int    `validate:"min=1"`
	PageSize int    `validate:"min=1,max=50"`
	Kind     string `validate:"omitempty,oneof=event community business activity spotlight"`
}

func TestValidateStruct_Passes(t *testing.T) {
	if err := ValidateStruct(&pageRequest{Page: 1, PageSize: 20}); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestValidateStruct_SingleFailure(t *testing.T) {
	verr := ValidateStruct(&pageRequest{Page: 0, PageSize: 20})
	if verr == nil {
		t.Fatal("expected validation failure")
	}
	apiErr := verr.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("code = %s", apiErr.Code)
	}
	if !strings.Contains(apiErr.Message, "Page") {
		t.Errorf("message missing field name: %s", apiErr.Message)
	}
}

func TestValidateStruct_MultipleFailures(t *testing.T) {
	verr := ValidateStruct(&pageRequest{Page: 0, PageSize: 500, Kind: "banana"})
	if verr == nil {
		t.Fatal("expected validation failure")
	}
	if len(verr.Errors()) != 3 {
		t.Errorf("expected 3 field errors, got %d", len(verr.Errors()))
	}
	details := verr.ToAPIError().Details
	if _, ok := details["fields"]; !ok {
		t.Error("expected fields detail for multi-error response")
	}
}
