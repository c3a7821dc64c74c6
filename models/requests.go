package models

import "encoding/json"

// Create/update request bodies sent to the API. Monetary fields use
// json.Number so they serialize as plain JSON numbers.

// BudgetCategoryCreate is one allocation line of a budget create request.
type BudgetCategoryCreate struct {
	CategoryName  string      `json:"category_name"`
	PlannedAmount json.Number `json:"planned_amount"`
	Color         string      `json:"color"`
	Icon          string      `json:"icon"`
}

// BudgetCreate is the normalized payload of a validated budget draft.
type BudgetCreate struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	BudgetType  BudgetType             `json:"budget_type"`
	TotalAmount json.Number            `json:"total_amount"`
	Currency    string                 `json:"currency"`
	StartDate   string                 `json:"start_date"`
	EndDate     string                 `json:"end_date"`
	Categories  []BudgetCategoryCreate `json:"categories"`
}

// GoalCreate is the normalized payload of a validated goal draft.
type GoalCreate struct {
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	GoalType      GoalType    `json:"goal_type"`
	TargetAmount  json.Number `json:"target_amount"`
	Currency      string      `json:"currency"`
	Deadline      string      `json:"deadline,omitempty"`
	Priority      Priority    `json:"priority"`
	Category      string      `json:"category,omitempty"`
	IsPublic      bool        `json:"is_public"`
	MonthlyTarget json.Number `json:"monthly_target,omitempty"`
}

// PaymentMethodCreate is the normalized payload of a validated payment
// method draft. Exactly one of the card or bank field groups is set,
// depending on MethodType.
type PaymentMethodCreate struct {
	MethodType MethodType `json:"method_type"`
	Provider   string     `json:"provider"`
	IsDefault  bool       `json:"is_default"`

	CardNumber   string `json:"card_number,omitempty"`
	CardHolder   string `json:"card_holder,omitempty"`
	CardExpMonth int    `json:"card_exp_month,omitempty"`
	CardExpYear  int    `json:"card_exp_year,omitempty"`
	CVV          string `json:"cvv,omitempty"`

	BankName      string      `json:"bank_name,omitempty"`
	AccountNumber string      `json:"account_number,omitempty"`
	RoutingNumber string      `json:"routing_number,omitempty"`
	AccountType   AccountType `json:"account_type,omitempty"`
}

// TaskCreate is the payload for creating or updating a task.
type TaskCreate struct {
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Category       string      `json:"category"`
	SkillsRequired []string    `json:"skills_required,omitempty"`
	BudgetMin      json.Number `json:"budget_min,omitempty"`
	BudgetMax      json.Number `json:"budget_max,omitempty"`
	Deadline       string      `json:"deadline,omitempty"`
}

// ProfileUpdate is the PATCH body for the authenticated user's profile.
type ProfileUpdate struct {
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}
