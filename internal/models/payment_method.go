package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// PaymentMethodType is the discriminant for the Details union.
type PaymentMethodType string

const (
	PaymentMethodBank   PaymentMethodType = "bank"
	PaymentMethodCard   PaymentMethodType = "card"
	PaymentMethodWallet PaymentMethodType = "wallet"
	PaymentMethodOther  PaymentMethodType = "other"
)

// BankDetails describes a bank account payment method.
type BankDetails struct {
	BankName      string `json:"bank_name"`
	AccountName   string `json:"account_name"`
	AccountNumber string `json:"account_number"`
	RoutingNumber string `json:"routing_number,omitempty"`
}

// CardDetails describes a card payment method. Only non-sensitive fields
// are stored.
type CardDetails struct {
	Brand       string `json:"brand"`
	LastFour    string `json:"last_four"`
	ExpiryMonth int    `json:"expiry_month,omitempty"`
	ExpiryYear  int    `json:"expiry_year,omitempty"`
}

// WalletDetails describes a digital wallet payment method.
type WalletDetails struct {
	Provider string `json:"provider"`
	WalletID string `json:"wallet_id,omitempty"`
}

// OtherDetails covers payment methods outside the known kinds.
type OtherDetails struct {
	Notes string `json:"notes,omitempty"`
}

// PaymentMethodDetails is a tagged union keyed on PaymentMethodType.
// Exactly one variant must be set, and it must match the method's type.
// It is persisted as a JSON column.
type PaymentMethodDetails struct {
	Bank   *BankDetails   `json:"bank,omitempty"`
	Card   *CardDetails   `json:"card,omitempty"`
	Wallet *WalletDetails `json:"wallet,omitempty"`
	Other  *OtherDetails  `json:"other,omitempty"`
}

// ValidateFor checks that exactly the variant matching t is populated.
func (d PaymentMethodDetails) ValidateFor(t PaymentMethodType) error {
	set := 0
	for _, present := range []bool{d.Bank != nil, d.Card != nil, d.Wallet != nil, d.Other != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errors.New("details must contain exactly one variant")
	}

	var ok bool
	switch t {
	case PaymentMethodBank:
		ok = d.Bank != nil
	case PaymentMethodCard:
		ok = d.Card != nil
	case PaymentMethodWallet:
		ok = d.Wallet != nil
	case PaymentMethodOther:
		ok = d.Other != nil
	default:
		return fmt.Errorf("unknown payment method type %q", t)
	}
	if !ok {
		return fmt.Errorf("details variant does not match type %q", t)
	}
	return nil
}

// Value implements driver.Valuer, serializing the union to JSON.
func (d PaymentMethodDetails) Value() (driver.Value, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (d *PaymentMethodDetails) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = PaymentMethodDetails{}
		return nil
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("cannot scan %T into PaymentMethodDetails", src)
	}
}

// PaymentMethod is a way the business sends or receives money. Updates and
// deletes are ownership-checked against the caller's profile.
type PaymentMethod struct {
	Base
	TenantOwned
	Type     PaymentMethodType    `gorm:"not null" json:"type"`
	Label    string               `json:"label"`
	Details  PaymentMethodDetails `gorm:"type:jsonb" json:"details"`
	IsActive bool                 `gorm:"default:true" json:"is_active"`
}
