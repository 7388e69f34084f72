package models

// CategoryName is the fixed set of expense category names.
type CategoryName string

const (
	CategoryRent        CategoryName = "rent"
	CategoryUtilities   CategoryName = "utilities"
	CategoryPayroll     CategoryName = "payroll"
	CategoryMarketing   CategoryName = "marketing"
	CategorySupplies    CategoryName = "supplies"
	CategoryTravel      CategoryName = "travel"
	CategoryInsurance   CategoryName = "insurance"
	CategorySoftware    CategoryName = "software"
	CategoryMaintenance CategoryName = "maintenance"
	CategoryOther       CategoryName = "other"
)

// CategoryNames lists every valid category name.
var CategoryNames = []CategoryName{
	CategoryRent, CategoryUtilities, CategoryPayroll, CategoryMarketing,
	CategorySupplies, CategoryTravel, CategoryInsurance, CategorySoftware,
	CategoryMaintenance, CategoryOther,
}

// IsValid reports whether the name is one of the fixed categories.
func (n CategoryName) IsValid() bool {
	for _, c := range CategoryNames {
		if n == c {
			return true
		}
	}
	return false
}

// RecordStatus is a generic active/inactive flag used by several entities.
type RecordStatus string

const (
	StatusActive   RecordStatus = "active"
	StatusInactive RecordStatus = "inactive"
)

// ExpenseFrequency describes how often an expense recurs.
type ExpenseFrequency string

const (
	FrequencyOneTime   ExpenseFrequency = "one-time"
	FrequencyDaily     ExpenseFrequency = "daily"
	FrequencyWeekly    ExpenseFrequency = "weekly"
	FrequencyMonthly   ExpenseFrequency = "monthly"
	FrequencyQuarterly ExpenseFrequency = "quarterly"
	FrequencyYearly    ExpenseFrequency = "yearly"
)

// ExpenseCategory groups expenses under one of the fixed category names.
type ExpenseCategory struct {
	Base
	TenantOwned
	Name   CategoryName `gorm:"not null" json:"name"`
	Status RecordStatus `gorm:"default:active" json:"status"`

	Expenses []Expense `gorm:"foreignKey:ExpenseCategoryID" json:"expenses,omitempty"`
}

// Expense is a recurring or one-off cost item under a category.
type Expense struct {
	Base
	TenantOwned
	ExpenseCategoryID string           `gorm:"type:uuid;not null;index" json:"expense_category_id"`
	Name              string           `gorm:"not null" json:"name"`
	Frequency         ExpenseFrequency `gorm:"default:monthly" json:"frequency"`
	Status            RecordStatus     `gorm:"default:active" json:"status"`

	Category *ExpenseCategory `gorm:"foreignKey:ExpenseCategoryID" json:"category,omitempty"`
}
