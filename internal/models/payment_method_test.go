package models

import "testing"

func TestPaymentMethodDetailsValidateFor(t *testing.T) {
	t.Run("matching_variant_passes", func(t *testing.T) {
		details := PaymentMethodDetails{Bank: &BankDetails{BankName: "First National", AccountNumber: "12345678"}}
		if err := details.ValidateFor(PaymentMethodBank); err != nil {
			t.Errorf("expected bank details to validate, got %v", err)
		}
	})

	t.Run("mismatched_variant_fails", func(t *testing.T) {
		details := PaymentMethodDetails{Card: &CardDetails{Brand: "visa", LastFour: "4242"}}
		if err := details.ValidateFor(PaymentMethodBank); err == nil {
			t.Error("expected card details to fail validation for bank type")
		}
	})

	t.Run("empty_details_fail", func(t *testing.T) {
		if err := (PaymentMethodDetails{}).ValidateFor(PaymentMethodWallet); err == nil {
			t.Error("expected empty details to fail validation")
		}
	})

	t.Run("multiple_variants_fail", func(t *testing.T) {
		details := PaymentMethodDetails{
			Bank:   &BankDetails{BankName: "First National"},
			Wallet: &WalletDetails{Provider: "paypal"},
		}
		if err := details.ValidateFor(PaymentMethodBank); err == nil {
			t.Error("expected multi-variant details to fail validation")
		}
	})

	t.Run("unknown_type_fails", func(t *testing.T) {
		details := PaymentMethodDetails{Other: &OtherDetails{Notes: "barter"}}
		if err := details.ValidateFor(PaymentMethodType("crypto")); err == nil {
			t.Error("expected unknown type to fail validation")
		}
	})
}

func TestPaymentMethodDetailsValueScan(t *testing.T) {
	t.Run("round_trips_through_sql_value", func(t *testing.T) {
		original := PaymentMethodDetails{Wallet: &WalletDetails{Provider: "stripe", WalletID: "acct_1"}}

		value, err := original.Value()
		if err != nil {
			t.Fatalf("failed to serialize details: %v", err)
		}

		var decoded PaymentMethodDetails
		if err := decoded.Scan(value); err != nil {
			t.Fatalf("failed to scan details: %v", err)
		}
		if decoded.Wallet == nil || decoded.Wallet.Provider != "stripe" {
			t.Errorf("unexpected decoded details: %+v", decoded)
		}
	})

	t.Run("scans_nil_to_empty", func(t *testing.T) {
		var decoded PaymentMethodDetails
		if err := decoded.Scan(nil); err != nil {
			t.Fatalf("failed to scan nil: %v", err)
		}
		if decoded.Bank != nil || decoded.Card != nil || decoded.Wallet != nil || decoded.Other != nil {
			t.Errorf("expected empty details, got %+v", decoded)
		}
	})

	t.Run("rejects_unsupported_source", func(t *testing.T) {
		var decoded PaymentMethodDetails
		if err := decoded.Scan(42); err == nil {
			t.Error("expected scan of int to fail")
		}
	})
}

func TestDirectionForType(t *testing.T) {
	if got := DirectionForType(TransactionTypePayment); got != CashFlowIncoming {
		t.Errorf("expected PAYMENT to map to INCOMING, got %s", got)
	}
	if got := DirectionForType(TransactionTypePayout); got != CashFlowOutgoing {
		t.Errorf("expected PAYOUT to map to OUTGOING, got %s", got)
	}
}
