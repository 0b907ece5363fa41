package validator_test

import (
	"strings"
	"testing"

	"lodge/shared"
	"lodge/shared/validator"
)

// Test structs for validation
type PaymentTestStruct struct {
	CardNumber string `validate:"required,len=16,digitsonly" json:"cardNumber"`
	CardName   string `validate:"required,alphaspace"        json:"cardName"`
	CVV        string `validate:"required,len=3,digitsonly"  json:"cvv"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *PaymentTestStruct
		expectError bool
	}{
		{
			name: "valid payment details",
			data: &PaymentTestStruct{
				CardNumber: "4111111111111111",
				CardName:   "John Doe",
				CVV:        "123",
			},
			expectError: false,
		},
		{
			name: "card number too short",
			data: &PaymentTestStruct{
				CardNumber: "411111111111",
				CardName:   "John Doe",
				CVV:        "123",
			},
			expectError: true,
		},
		{
			name: "card number with non-digits",
			data: &PaymentTestStruct{
				CardNumber: "4111-1111-1111-1",
				CardName:   "John Doe",
				CVV:        "123",
			},
			expectError: true,
		},
		{
			name: "cvv too long",
			data: &PaymentTestStruct{
				CardNumber: "4111111111111111",
				CardName:   "John Doe",
				CVV:        "1234",
			},
			expectError: true,
		},
		{
			name: "cvv with letters",
			data: &PaymentTestStruct{
				CardNumber: "4111111111111111",
				CardName:   "John Doe",
				CVV:        "12a",
			},
			expectError: true,
		},
		{
			name: "card name with digits",
			data: &PaymentTestStruct{
				CardNumber: "4111111111111111",
				CardName:   "J0hn D03",
				CVV:        "123",
			},
			expectError: true,
		},
		{
			name:        "missing everything",
			data:        &PaymentTestStruct{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected an error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

type normalizingTestStruct struct {
	Phone string `validate:"required,len=10,digitsonly" json:"phone"`
}

func (n *normalizingTestStruct) Normalize() {
	n.Phone = shared.Digits(n.Phone, 10)
}

func TestValidate_NormalizesBeforeValidation(t *testing.T) {
	body := `{"phone": "abc123-456-7890xyz99"}`

	data := normalizingTestStruct{}
	if err := validator.Validate(strings.NewReader(body), &data); err != nil {
		t.Fatalf("expected normalized value to pass validation, got %v", err)
	}

	if data.Phone != "1234567890" {
		t.Errorf("expected phone to be normalized to 1234567890, got %s", data.Phone)
	}
}

func TestValidate_InvalidJSON(t *testing.T) {
	data := normalizingTestStruct{}
	if err := validator.Validate(strings.NewReader("{not json"), &data); err == nil {
		t.Error("expected an error for malformed JSON, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("1234567890", "len=10,digitsonly"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	if err := validator.ValidateVar("12345", "len=10,digitsonly"); err == nil {
		t.Error("expected an error for short value, got nil")
	}
}
