package form

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/worklane/worklane-go/models"
)

// Error messages surfaced by the budget draft, matching the backend's
// acceptance rules word for word.
const (
	msgRequiredFields     = "Please fill in all required fields"
	msgTotalNotPositive   = "Total amount must be greater than 0"
	msgNoCategories       = "Please add at least one category"
	msgCategoryMismatch   = "Categories total must equal budget total"
	msgCategoryIncomplete = "Please fill in category name and amount"
	msgCategoryAmount     = "Category amount must be greater than 0"
)

// categoryTolerance is the accepted drift between the category sum and
// the budget total; it mirrors the server's check.
var categoryTolerance = decimal.NewFromFloat(0.01)

// dateLayout is the wire format for budget and goal dates.
const dateLayout = "2006-01-02"

// CategoryDraft is one allocation line being added to a budget draft.
type CategoryDraft struct {
	Name    string
	Planned decimal.Decimal
	Color   string
	Icon    string
}

// BudgetDraft is the in-memory, not-yet-submitted budget. Amount and
// date fields hold raw field text; parsing happens at validation time.
// All setters are value-receiver and return a new draft with exactly
// one logical field replaced.
type BudgetDraft struct {
	Name        string
	Description string
	Type        models.BudgetType
	TotalAmount string
	Currency    string
	StartDate   string
	EndDate     string
	Categories  []CategoryDraft
}

// NewBudgetDraft returns the empty draft a freshly opened budget form
// starts from.
func NewBudgetDraft() BudgetDraft {
	return BudgetDraft{
		Type:     models.BudgetMonthly,
		Currency: models.DefaultCurrency,
	}
}

func (d BudgetDraft) SetName(v string) BudgetDraft        { d.Name = v; return d }
func (d BudgetDraft) SetDescription(v string) BudgetDraft { d.Description = v; return d }
func (d BudgetDraft) SetTotalAmount(v string) BudgetDraft { d.TotalAmount = v; return d }
func (d BudgetDraft) SetCurrency(v string) BudgetDraft    { d.Currency = v; return d }

// SetType changes the budget period and recomputes the date range to
// the calendar period matching the new type. The derivation is one-way:
// editing dates never changes the type.
func (d BudgetDraft) SetType(t models.BudgetType) BudgetDraft {
	return d.SetTypeAt(t, time.Now())
}

// SetTypeAt is SetType with an explicit reference time.
func (d BudgetDraft) SetTypeAt(t models.BudgetType, now time.Time) BudgetDraft {
	d.Type = t

	switch t {
	case models.BudgetMonthly:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		d.StartDate = first.Format(dateLayout)
		d.EndDate = last.Format(dateLayout)
	case models.BudgetYearly:
		d.StartDate = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
		d.EndDate = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	default:
		d.StartDate = now.Format(dateLayout)
		d.EndDate = ""
	}

	return d
}

// SetStartDate sets the start date and, for monthly budgets, derives
// the end date as start + 1 month - 1 day. Unparseable input only sets
// the raw field.
func (d BudgetDraft) SetStartDate(v string) BudgetDraft {
	d.StartDate = v

	if d.Type == models.BudgetMonthly {
		if start, err := time.Parse(dateLayout, v); err == nil {
			d.EndDate = start.AddDate(0, 1, -1).Format(dateLayout)
		}
	}

	return d
}

// SetEndDate sets only the end date; it never back-derives the start.
func (d BudgetDraft) SetEndDate(v string) BudgetDraft {
	d.EndDate = v
	return d
}

// AddCategory appends an allocation line. Name and amount are required
// and the amount must be positive; on rejection the draft is returned
// unchanged alongside the error.
func (d BudgetDraft) AddCategory(name, amount, color, icon string) (BudgetDraft, error) {
	if name == "" || amount == "" {
		return d, validationErr(msgCategoryIncomplete)
	}

	planned, err := parseAmount(amount)
	if err != nil {
		return d, validationErr(msgCategoryAmount)
	}

	next := make([]CategoryDraft, len(d.Categories), len(d.Categories)+1)
	copy(next, d.Categories)
	d.Categories = append(next, CategoryDraft{
		Name:    name,
		Planned: planned,
		Color:   color,
		Icon:    icon,
	})
	return d, nil
}

// RemoveCategory drops the allocation line at index i; out-of-range
// indexes are ignored.
func (d BudgetDraft) RemoveCategory(i int) BudgetDraft {
	if i < 0 || i >= len(d.Categories) {
		return d
	}

	next := make([]CategoryDraft, 0, len(d.Categories)-1)
	next = append(next, d.Categories[:i]...)
	next = append(next, d.Categories[i+1:]...)
	d.Categories = next
	return d
}

// PlannedTotal sums the category allocations.
func (d BudgetDraft) PlannedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, c := range d.Categories {
		total = total.Add(c.Planned)
	}
	return total
}

// Remaining is the unallocated part of the budget total. An unparseable
// total counts as zero.
func (d BudgetDraft) Remaining() decimal.Decimal {
	total, err := parseAmount(d.TotalAmount)
	if err != nil {
		total = decimal.Zero
	}
	return total.Sub(d.PlannedTotal())
}

// Validate applies the submit-time rules, short-circuiting on the first
// failure so only one message is ever shown.
func (d BudgetDraft) Validate() error {
	if d.Name == "" || d.TotalAmount == "" || d.StartDate == "" || d.EndDate == "" {
		return validationErr(msgRequiredFields)
	}

	total, err := parseAmount(d.TotalAmount)
	if err != nil {
		return validationErr(msgTotalNotPositive)
	}

	if len(d.Categories) == 0 {
		return validationErr(msgNoCategories)
	}

	if d.PlannedTotal().Sub(total).Abs().GreaterThan(categoryTolerance) {
		return validationErr(msgCategoryMismatch)
	}

	return nil
}

// Payload normalizes a validated draft into the create request.
func (d BudgetDraft) Payload() models.BudgetCreate {
	total, _ := parseAmount(d.TotalAmount)

	categories := make([]models.BudgetCategoryCreate, 0, len(d.Categories))
	for _, c := range d.Categories {
		categories = append(categories, models.BudgetCategoryCreate{
			CategoryName:  c.Name,
			PlannedAmount: json.Number(c.Planned.String()),
			Color:         c.Color,
			Icon:          c.Icon,
		})
	}

	return models.BudgetCreate{
		Name:        d.Name,
		Description: d.Description,
		BudgetType:  d.Type,
		TotalAmount: json.Number(total.String()),
		Currency:    d.Currency,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Categories:  categories,
	}
}
