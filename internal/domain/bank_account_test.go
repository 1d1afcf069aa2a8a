package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func validAccountFields() BankAccountFields {
	return BankAccountFields{
		ID:               strings.Repeat("a", IDLength),
		Name:             "Main account",
		UserID:           strings.Repeat("u", IDLength),
		InitialAmount:    float64(2000),
		CreatedTimestamp: float64(1700000000000),
	}
}

func TestNewBankAccount(t *testing.T) {
	t.Parallel()

	t.Run("happy path", func(t *testing.T) {
		account, err := NewBankAccount(validAccountFields())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !account.InitialAmount().Equal(decimal.NewFromInt(2000)) {
			t.Fatalf("unexpected initial amount %s", account.InitialAmount())
		}
		if account.ImageURL() != nil {
			t.Fatal("expected no image URL")
		}
	})

	t.Run("negative initial amount is a valid debt seed", func(t *testing.T) {
		f := validAccountFields()
		f.InitialAmount = float64(-350)

		account, err := NewBankAccount(f)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !account.InitialAmount().Equal(decimal.NewFromInt(-350)) {
			t.Fatalf("unexpected initial amount %s", account.InitialAmount())
		}
	})

	t.Run("malformed userId is reported as userId", func(t *testing.T) {
		f := validAccountFields()
		f.UserID = "too-short"

		_, err := NewBankAccount(f)
		ipe := invalidParam(t, err)
		if ipe.ParamName != "userId" {
			t.Fatalf("expected param userId, got %q", ipe.ParamName)
		}
	})

	t.Run("malformed timestamp is reported as createdTimestamp", func(t *testing.T) {
		f := validAccountFields()
		f.CreatedTimestamp = "yesterday"

		_, err := NewBankAccount(f)
		ipe := invalidParam(t, err)
		if ipe.ParamName != "createdTimestamp" {
			t.Fatalf("expected param createdTimestamp, got %q", ipe.ParamName)
		}
	})

	t.Run("own id is checked before name", func(t *testing.T) {
		f := validAccountFields()
		f.ID = "bad"
		f.Name = "x" // also invalid

		_, err := NewBankAccount(f)
		ipe := invalidParam(t, err)
		if ipe.ParamName != "id" {
			t.Fatalf("expected id to fail first, got %q", ipe.ParamName)
		}
	})

	t.Run("name is checked before userId", func(t *testing.T) {
		f := validAccountFields()
		f.Name = "x"
		f.UserID = "bad"

		_, err := NewBankAccount(f)
		ipe := invalidParam(t, err)
		if ipe.ParamName != "name" {
			t.Fatalf("expected name to fail first, got %q", ipe.ParamName)
		}
	})

	t.Run("optional image URL", func(t *testing.T) {
		f := validAccountFields()
		f.ImageURL = "https://cdn.example.com/acc.png"

		account, err := NewBankAccount(f)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := account.ImageURL(); got == nil || *got != "https://cdn.example.com/acc.png" {
			t.Fatalf("unexpected image URL %v", got)
		}

		f.ImageURL = "not a url"
		_, err = NewBankAccount(f)
		ipe := invalidParam(t, err)
		if ipe.ParamName != "imageUrl" {
			t.Fatalf("expected param imageUrl, got %q", ipe.ParamName)
		}
	})
}

func TestBankAccountDataIsStable(t *testing.T) {
	t.Parallel()

	account, err := NewBankAccount(validAccountFields())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	first := account.Data()

	// Mutating a projection must not leak back into the entity.
	mutated := account.Data()
	mutated.Name = "hacked"
	mutated.InitialAmount = decimal.NewFromInt(-1)

	second := account.Data()
	if second != first {
		t.Fatalf("projection changed after construction: %+v vs %+v", second, first)
	}
}
