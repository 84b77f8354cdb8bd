package entities

import "time"

// Payroll links a labor record to the transaction that paid it.
type Payroll struct {
	PayrollID      string    `gorm:"primaryKey" json:"payroll_id"`
	FarmID         string    `json:"farm_id"`
	LaborID        string    `json:"labor_id"`
	TransactionID  string    `json:"transaction_id"`
	PayPeriodStart time.Time `json:"pay_period_start"`
	PayPeriodEnd   time.Time `json:"pay_period_end"`
	HoursWorked    *float64  `json:"hours_worked,omitempty"`
	OrganizationID string    `json:"organization_id"`

	CreatedAt time.Time
}
