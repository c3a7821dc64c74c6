package form

import (
	"strconv"

	"github.com/worklane/worklane-go/card"
	"github.com/worklane/worklane-go/models"
)

const (
	msgCardIncomplete = "Please fill in all card details"
	msgCardNumber     = "Please enter a valid card number"
	msgCardCVV        = "Please enter a valid CVV"
	msgBankIncomplete = "Please fill in all bank details"
	msgBankRouting    = "Please enter a valid 9-digit routing number"
)

// minCardDigits is the shortest PAN any network issues.
const minCardDigits = 13

// PaymentMethodDraft is the in-memory, not-yet-submitted payment
// method. Exactly one of the card or bank field groups is relevant,
// selected by MethodType.
type PaymentMethodDraft struct {
	MethodType models.MethodType

	CardNumber     string
	CardholderName string
	ExpiryMonth    string
	ExpiryYear     string
	CVV            string

	BankName      string
	AccountNumber string
	RoutingNumber string
	AccountType   models.AccountType

	IsDefault bool
}

// NewPaymentMethodDraft returns the empty draft a freshly opened
// payment method form starts from.
func NewPaymentMethodDraft() PaymentMethodDraft {
	return PaymentMethodDraft{
		MethodType:  models.MethodCard,
		AccountType: models.AccountChecking,
	}
}

func (d PaymentMethodDraft) SetMethodType(v models.MethodType) PaymentMethodDraft {
	d.MethodType = v
	return d
}

func (d PaymentMethodDraft) SetCardNumber(v string) PaymentMethodDraft     { d.CardNumber = v; return d }
func (d PaymentMethodDraft) SetCardholderName(v string) PaymentMethodDraft { d.CardholderName = v; return d }
func (d PaymentMethodDraft) SetExpiryMonth(v string) PaymentMethodDraft    { d.ExpiryMonth = v; return d }
func (d PaymentMethodDraft) SetExpiryYear(v string) PaymentMethodDraft     { d.ExpiryYear = v; return d }
func (d PaymentMethodDraft) SetCVV(v string) PaymentMethodDraft            { d.CVV = v; return d }
func (d PaymentMethodDraft) SetBankName(v string) PaymentMethodDraft       { d.BankName = v; return d }
func (d PaymentMethodDraft) SetAccountNumber(v string) PaymentMethodDraft  { d.AccountNumber = v; return d }
func (d PaymentMethodDraft) SetRoutingNumber(v string) PaymentMethodDraft  { d.RoutingNumber = v; return d }

func (d PaymentMethodDraft) SetAccountType(v models.AccountType) PaymentMethodDraft {
	d.AccountType = v
	return d
}

func (d PaymentMethodDraft) SetIsDefault(v bool) PaymentMethodDraft {
	d.IsDefault = v
	return d
}

// Validate applies the submit-time rules for the selected method type,
// short-circuiting on the first failure.
func (d PaymentMethodDraft) Validate() error {
	if d.MethodType == models.MethodBank {
		if d.BankName == "" || d.AccountNumber == "" || d.RoutingNumber == "" {
			return validationErr(msgBankIncomplete)
		}
		if !card.ValidRoutingNumber(d.RoutingNumber) {
			return validationErr(msgBankRouting)
		}
		return nil
	}

	if d.CardNumber == "" || d.CardholderName == "" || d.ExpiryMonth == "" || d.ExpiryYear == "" || d.CVV == "" {
		return validationErr(msgCardIncomplete)
	}
	if len(card.Digits(d.CardNumber)) < minCardDigits {
		return validationErr(msgCardNumber)
	}
	if len(d.CVV) < 3 {
		return validationErr(msgCardCVV)
	}
	return nil
}

// Payload normalizes a validated draft into the create request. The
// provider is the detected card brand for cards and the bank name for
// bank accounts.
func (d PaymentMethodDraft) Payload() models.PaymentMethodCreate {
	if d.MethodType == models.MethodBank {
		return models.PaymentMethodCreate{
			MethodType:    models.MethodBank,
			Provider:      d.BankName,
			IsDefault:     d.IsDefault,
			BankName:      d.BankName,
			AccountNumber: d.AccountNumber,
			RoutingNumber: d.RoutingNumber,
			AccountType:   d.AccountType,
		}
	}

	month, _ := strconv.Atoi(d.ExpiryMonth)
	year, _ := strconv.Atoi(d.ExpiryYear)

	return models.PaymentMethodCreate{
		MethodType:   models.MethodCard,
		Provider:     card.Brand(d.CardNumber),
		IsDefault:    d.IsDefault,
		CardNumber:   card.Digits(d.CardNumber),
		CardHolder:   d.CardholderName,
		CardExpMonth: month,
		CardExpYear:  year,
		CVV:          d.CVV,
	}
}
