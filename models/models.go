// Package models defines the client-side view models mirrored from the
// Worklane marketplace API. The client never owns their lifecycle: it
// drafts, submits, and displays them.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency new drafts start with.
const DefaultCurrency = "USD"

// SupportedCurrencies lists all supported currency codes.
var SupportedCurrencies = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"RUB": "₽",
	"KZT": "₸",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "Fr",
	"SGD": "S$",
	"HKD": "HK$",
}

// BudgetType is the period shape of a budget.
type BudgetType string

const (
	BudgetMonthly BudgetType = "monthly"
	BudgetYearly  BudgetType = "yearly"
	BudgetCustom  BudgetType = "custom"
)

// GoalType classifies a financial goal.
type GoalType string

const (
	GoalSavings       GoalType = "savings"
	GoalInvestment    GoalType = "investment"
	GoalDebtPayoff    GoalType = "debt_payoff"
	GoalIncome        GoalType = "income"
	GoalEmergencyFund GoalType = "emergency_fund"
	GoalRetirement    GoalType = "retirement"
	GoalEducation     GoalType = "education"
	GoalTravel        GoalType = "travel"
	GoalHome          GoalType = "home"
	GoalBusiness      GoalType = "business"
)

// GoalTypes lists every goal type the backend accepts.
var GoalTypes = []GoalType{
	GoalSavings, GoalInvestment, GoalDebtPayoff, GoalIncome,
	GoalEmergencyFund, GoalRetirement, GoalEducation, GoalTravel,
	GoalHome, GoalBusiness,
}

// Priority of a financial goal.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// MethodType distinguishes card and bank payment methods.
type MethodType string

const (
	MethodCard MethodType = "card"
	MethodBank MethodType = "bank"
)

// AccountType of a bank payment method.
type AccountType string

const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
)

// Balance is the wallet balance record.
type Balance struct {
	Available decimal.Decimal `json:"available"`
	Pending   decimal.Decimal `json:"pending"`
	Currency  string          `json:"currency"`
}

// Transaction is a read-only wallet transaction. It is never mutated
// client-side, only filtered and searched locally.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Status      string          `json:"status"`
	Description string          `json:"description"`
	Fees        decimal.Decimal `json:"fees"`
	CreatedAt   time.Time       `json:"created_at"`
}

// BudgetCategory is one allocation line inside a budget.
type BudgetCategory struct {
	Name    string          `json:"category_name"`
	Planned decimal.Decimal `json:"planned_amount"`
	Spent   decimal.Decimal `json:"spent_amount,omitempty"`
	Color   string          `json:"color"`
	Icon    string          `json:"icon"`
}

// Budget is a server-owned budget record.
type Budget struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Type        BudgetType       `json:"budget_type"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	SpentAmount decimal.Decimal  `json:"spent_amount"`
	Currency    string           `json:"currency"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	Categories  []BudgetCategory `json:"categories"`
	CreatedAt   time.Time        `json:"created_at"`
}

// FinancialGoal is a server-owned savings/financial goal record.
type FinancialGoal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          GoalType        `json:"goal_type"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Currency      string          `json:"currency"`
	Deadline      string          `json:"deadline,omitempty"`
	Priority      Priority        `json:"priority"`
	Category      string          `json:"category,omitempty"`
	IsPublic      bool            `json:"is_public"`
	MonthlyTarget decimal.Decimal `json:"monthly_target,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentMethod is the masked record the server returns; full card and
// bank numbers never come back from the API.
type PaymentMethod struct {
	ID          string     `json:"id"`
	Type        MethodType `json:"method_type"`
	Provider    string     `json:"provider"`
	CardBrand   string     `json:"card_brand,omitempty"`
	CardLast4   string     `json:"card_last4,omitempty"`
	CardExpMo   int        `json:"card_exp_month,omitempty"`
	CardExpYr   int        `json:"card_exp_year,omitempty"`
	BankName    string     `json:"bank_name,omitempty"`
	BankLast4   string     `json:"bank_last4,omitempty"`
	BankRouting string     `json:"bank_routing,omitempty"`
	IsDefault   bool       `json:"is_default"`
	IsActive    bool       `json:"is_active"`
	IsVerified  bool       `json:"is_verified"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Task is a marketplace task listing.
type Task struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Category       string          `json:"category"`
	SkillsRequired []string        `json:"skills_required"`
	BudgetMin      decimal.Decimal `json:"budget_min"`
	BudgetMax      decimal.Decimal `json:"budget_max"`
	Deadline       string          `json:"deadline,omitempty"`
	Status         string          `json:"status"`
	OwnerID        string          `json:"owner_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Review is a marketplace review of a completed task.
type Review struct {
	ID         string    `json:"id"`
	TaskID     string    `json:"task_id"`
	ReviewerID string    `json:"reviewer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

// Profile is the authenticated user's profile record.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// KYCStatus reports the state of an identity-document verification.
type KYCStatus struct {
	ID           string    `json:"id"`
	DocumentType string    `json:"document_type"`
	Status       string    `json:"status"`
	Comment      string    `json:"comment,omitempty"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// TwoFactorSetup is the enrollment payload returned by 2FA setup.
type TwoFactorSetup struct {
	Secret     string `json:"secret"`
	OTPAuthURL string `json:"otpauth_url"`
	QRCode     string `json:"qr_code,omitempty"`
}

// EscrowStatus describes a held payment for a task.
type EscrowStatus struct {
	ID       string          `json:"id"`
	TaskID   string          `json:"task_id"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
	Provider string          `json:"provider,omitempty"`
}

// ChatMessage is the wire record of one chat message as the server
// stores it. The local append-only log lives in package chat.
type ChatMessage struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id,omitempty"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RolePeer      = "peer"
)
