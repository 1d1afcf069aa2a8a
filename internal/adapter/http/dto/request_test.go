package dto

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/JoaoSCoelho/my-finances-backend/internal/domain"
)

func TestUpdateBankAccountRequestAbsentVsNull(t *testing.T) {
	tests := []struct {
		name          string
		payload       string
		nameSet       bool
		imageSet      bool
		imageNull     bool
		initialAmount *decimal.Decimal
	}{
		{
			name:    "empty payload leaves everything unset",
			payload: `{}`,
		},
		{
			name:     "explicit null imageUrl is tracked as null",
			payload:  `{"imageUrl": null}`,
			imageSet: true, imageNull: true,
		},
		{
			name:    "present fields carry values",
			payload: `{"name": "Savings", "initialAmount": "250.50"}`,
			nameSet: true,
			initialAmount: func() *decimal.Decimal {
				d := decimal.RequireFromString("250.50")
				return &d
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req UpdateBankAccountRequest
			if err := json.Unmarshal([]byte(tt.payload), &req); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}

			if req.Name.IsSet() != tt.nameSet {
				t.Errorf("Name.IsSet() = %v, want %v", req.Name.IsSet(), tt.nameSet)
			}
			if req.ImageURL.IsSet() != tt.imageSet {
				t.Errorf("ImageURL.IsSet() = %v, want %v", req.ImageURL.IsSet(), tt.imageSet)
			}
			if req.ImageURL.IsNull() != tt.imageNull {
				t.Errorf("ImageURL.IsNull() = %v, want %v", req.ImageURL.IsNull(), tt.imageNull)
			}
			if tt.initialAmount != nil {
				if !req.InitialAmount.IsSet() {
					t.Fatal("expected initialAmount to be set")
				}
				if !req.InitialAmount.Value().Equal(*tt.initialAmount) {
					t.Errorf("InitialAmount = %s, want %s", req.InitialAmount.Value(), tt.initialAmount)
				}
			}
		})
	}
}

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCreateTransferRequestToUseCaseInput(t *testing.T) {
	desc := "monthly savings"
	req := CreateTransferRequest{
		Title:                 strPtr("To savings"),
		Amount:                decPtr("500"),
		GiverBankAccountID:    strPtr("giver-account-id"),
		ReceiverBankAccountID: strPtr("receiver-account-id"),
		Description:           &desc,
	}

	input, err := req.ToUseCaseInput("user-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.UserID != "user-id" {
		t.Errorf("UserID = %s, want user-id", input.UserID)
	}
	if input.GiverBankAccountID != "giver-account-id" || input.ReceiverBankAccountID != "receiver-account-id" {
		t.Errorf("account ids not carried over: %s -> %s", input.GiverBankAccountID, input.ReceiverBankAccountID)
	}
	if input.Description == nil || *input.Description != desc {
		t.Errorf("Description not carried over")
	}
}

func TestCreateRequestsReportAbsentRequiredFields(t *testing.T) {
	wantMissing := func(t *testing.T, err error, param string) {
		t.Helper()
		var missing *domain.MissingParamError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingParamError, got %v", err)
		}
		if missing.ParamName != param {
			t.Errorf("ParamName = %s, want %s", missing.ParamName, param)
		}
	}

	t.Run("expense without spent", func(t *testing.T) {
		var req CreateExpenseRequest
		if err := json.Unmarshal([]byte(`{"title": "Groceries", "bankAccountId": "acc-1"}`), &req); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		_, err := req.ToUseCaseInput("user-id")
		wantMissing(t, err, "spent")
	})

	t.Run("income without gain", func(t *testing.T) {
		var req CreateIncomeRequest
		if err := json.Unmarshal([]byte(`{"title": "Salary", "bankAccountId": "acc-1"}`), &req); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		_, err := req.ToUseCaseInput("user-id")
		wantMissing(t, err, "gain")
	})

	t.Run("expense without bankAccountId", func(t *testing.T) {
		var req CreateExpenseRequest
		if err := json.Unmarshal([]byte(`{"title": "Groceries", "spent": "52"}`), &req); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		_, err := req.ToUseCaseInput("user-id")
		wantMissing(t, err, "bankAccountId")
	})

	t.Run("transfer without amount", func(t *testing.T) {
		var req CreateTransferRequest
		if err := json.Unmarshal([]byte(`{"title": "Move", "giverBankAccountId": "a", "receiverBankAccountId": "b"}`), &req); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		_, err := req.ToUseCaseInput("user-id")
		wantMissing(t, err, "amount")
	})

	t.Run("bank account without initialAmount", func(t *testing.T) {
		var req CreateBankAccountRequest
		if err := json.Unmarshal([]byte(`{"name": "Checking"}`), &req); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		_, err := req.ToUseCaseInput("user-id")
		wantMissing(t, err, "initialAmount")
	})

	t.Run("signup without password", func(t *testing.T) {
		var req SignUpRequest
		if err := json.Unmarshal([]byte(`{"username": "joao", "email": "joao@example.com"}`), &req); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		_, err := req.ToUseCaseInput()
		wantMissing(t, err, "password")
	})
}

func TestUpdateUserRequestPasswordNull(t *testing.T) {
	var req UpdateUserRequest
	if err := json.Unmarshal([]byte(`{"password": null}`), &req); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	input := req.ToUseCaseInput("user-id")
	if !input.Password.IsSet() || !input.Password.IsNull() {
		t.Error("expected null password to survive the conversion")
	}
	if input.Username.IsSet() {
		t.Error("expected absent username to stay unset")
	}
}
