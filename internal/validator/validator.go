// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bizledger/internal/models"
)

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validCurrencies contains the ISO 4217 currency codes accepted for
// business information settings.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BRL": true, "CAD": true, "CHF": true,
	"CNY": true, "CZK": true, "DKK": true, "EUR": true, "GBP": true,
	"HKD": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"JPY": true, "KRW": true, "MXN": true, "MYR": true, "NOK": true,
	"NZD": true, "PHP": true, "PLN": true, "RON": true, "SAR": true,
	"SEK": true, "SGD": true, "THB": true, "TRY": true, "TWD": true,
	"USD": true, "VND": true, "ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("hex_color", validateHexColor)
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("cash_flow_direction", validateCashFlowDirection)
		_ = v.RegisterValidation("category_name", validateCategoryName)
		_ = v.RegisterValidation("expense_frequency", validateExpenseFrequency)
		_ = v.RegisterValidation("record_status", validateRecordStatus)
		_ = v.RegisterValidation("goal_status", validateGoalStatus)
		_ = v.RegisterValidation("invoice_status", validateInvoiceStatus)
		_ = v.RegisterValidation("product_type", validateProductType)
		_ = v.RegisterValidation("purchase_order_status", validatePurchaseOrderStatus)
		_ = v.RegisterValidation("payment_method_type", validatePaymentMethodType)
		_ = v.RegisterValidation("balance_sheet_type", validateBalanceSheetType)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateHexColor(fl validator.FieldLevel) bool {
	return hexColorRegex.MatchString(fl.Field().String())
}

func validateTransactionType(fl validator.FieldLevel) bool {
	switch models.TransactionType(fl.Field().String()) {
	case models.TransactionTypePayment, models.TransactionTypePayout:
		return true
	}
	return false
}

func validateCashFlowDirection(fl validator.FieldLevel) bool {
	switch models.CashFlowDirection(fl.Field().String()) {
	case models.CashFlowIncoming, models.CashFlowOutgoing:
		return true
	}
	return false
}

func validateCategoryName(fl validator.FieldLevel) bool {
	return models.CategoryName(fl.Field().String()).IsValid()
}

func validateExpenseFrequency(fl validator.FieldLevel) bool {
	switch models.ExpenseFrequency(fl.Field().String()) {
	case models.FrequencyOneTime, models.FrequencyDaily, models.FrequencyWeekly,
		models.FrequencyMonthly, models.FrequencyQuarterly, models.FrequencyYearly:
		return true
	}
	return false
}

func validateRecordStatus(fl validator.FieldLevel) bool {
	switch models.RecordStatus(fl.Field().String()) {
	case models.StatusActive, models.StatusInactive:
		return true
	}
	return false
}

func validateGoalStatus(fl validator.FieldLevel) bool {
	switch models.GoalStatus(fl.Field().String()) {
	case models.GoalStatusActive, models.GoalStatusCompleted, models.GoalStatusAbandoned:
		return true
	}
	return false
}

func validateInvoiceStatus(fl validator.FieldLevel) bool {
	switch models.InvoiceStatus(fl.Field().String()) {
	case models.InvoiceStatusDraft, models.InvoiceStatusSent, models.InvoiceStatusPaid,
		models.InvoiceStatusOverdue, models.InvoiceStatusCancelled:
		return true
	}
	return false
}

func validateProductType(fl validator.FieldLevel) bool {
	switch models.ProductType(fl.Field().String()) {
	case models.ProductTypePhysical, models.ProductTypeDigital, models.ProductTypeService:
		return true
	}
	return false
}

func validatePurchaseOrderStatus(fl validator.FieldLevel) bool {
	switch models.PurchaseOrderStatus(fl.Field().String()) {
	case models.PurchaseOrderPending, models.PurchaseOrderApproved, models.PurchaseOrderShipped,
		models.PurchaseOrderReceived, models.PurchaseOrderCancelled:
		return true
	}
	return false
}

func validatePaymentMethodType(fl validator.FieldLevel) bool {
	switch models.PaymentMethodType(fl.Field().String()) {
	case models.PaymentMethodBank, models.PaymentMethodCard,
		models.PaymentMethodWallet, models.PaymentMethodOther:
		return true
	}
	return false
}

func validateBalanceSheetType(fl validator.FieldLevel) bool {
	switch models.BalanceSheetType(fl.Field().String()) {
	case models.BalanceSheetAsset, models.BalanceSheetLiability, models.BalanceSheetEquity:
		return true
	}
	return false
}
