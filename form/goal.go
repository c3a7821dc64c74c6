package form

import (
	"encoding/json"

	"github.com/worklane/worklane-go/models"
)

const msgTargetNotPositive = "Target amount must be greater than 0"

// GoalDraft is the in-memory, not-yet-submitted financial goal.
type GoalDraft struct {
	Title         string
	Description   string
	Type          models.GoalType
	TargetAmount  string
	Currency      string
	Deadline      string
	Priority      models.Priority
	Category      string
	IsPublic      bool
	MonthlyTarget string
}

// NewGoalDraft returns the empty draft a freshly opened goal form
// starts from.
func NewGoalDraft() GoalDraft {
	return GoalDraft{
		Type:     models.GoalSavings,
		Currency: models.DefaultCurrency,
		Priority: models.PriorityMedium,
	}
}

func (d GoalDraft) SetTitle(v string) GoalDraft               { d.Title = v; return d }
func (d GoalDraft) SetDescription(v string) GoalDraft         { d.Description = v; return d }
func (d GoalDraft) SetType(v models.GoalType) GoalDraft       { d.Type = v; return d }
func (d GoalDraft) SetTargetAmount(v string) GoalDraft        { d.TargetAmount = v; return d }
func (d GoalDraft) SetCurrency(v string) GoalDraft            { d.Currency = v; return d }
func (d GoalDraft) SetDeadline(v string) GoalDraft            { d.Deadline = v; return d }
func (d GoalDraft) SetPriority(v models.Priority) GoalDraft   { d.Priority = v; return d }
func (d GoalDraft) SetCategory(v string) GoalDraft            { d.Category = v; return d }
func (d GoalDraft) SetIsPublic(v bool) GoalDraft              { d.IsPublic = v; return d }
func (d GoalDraft) SetMonthlyTarget(v string) GoalDraft       { d.MonthlyTarget = v; return d }

// Validate applies the submit-time rules: title and target amount are
// required, and the target must be positive.
func (d GoalDraft) Validate() error {
	if d.Title == "" || d.TargetAmount == "" {
		return validationErr(msgRequiredFields)
	}

	if _, err := parseAmount(d.TargetAmount); err != nil {
		return validationErr(msgTargetNotPositive)
	}

	return nil
}

// Payload normalizes a validated draft into the create request.
func (d GoalDraft) Payload() models.GoalCreate {
	target, _ := parseAmount(d.TargetAmount)

	p := models.GoalCreate{
		Title:        d.Title,
		Description:  d.Description,
		GoalType:     d.Type,
		TargetAmount: json.Number(target.String()),
		Currency:     d.Currency,
		Deadline:     d.Deadline,
		Priority:     d.Priority,
		Category:     d.Category,
		IsPublic:     d.IsPublic,
	}

	if monthly, err := parseAmount(d.MonthlyTarget); err == nil {
		p.MonthlyTarget = json.Number(monthly.String())
	}

	return p
}
