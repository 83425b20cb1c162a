package card

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrUnknownPreset is returned by Lookup for names with no registered preset.
var ErrUnknownPreset = errors.New("unknown card preset")

// Preset builds a new card for a provider test scenario.
type Preset func() *Card

var presets = map[string]Preset{
	"chargeDeclined":    ChargeDeclined,
	"mastercard":        Mastercard,
	"mastercard2Series": Mastercard2Series,
	"mastercardDebit":   MastercardDebit,
	"visa":              Visa,
	"visaDebit":         VisaDebit,
}

// ChargeDeclined returns a card whose charges are declined with the
// card_declined code.
func ChargeDeclined() *Card {
	return New().SetNumber("4000000000000002").
		SetBrand("Visa").
		SetToken("tok_chargeDeclined").
		SetPaymentMethod("pm_card_chargeDeclined")
}

// Mastercard returns a new Mastercard card.
func Mastercard() *Card {
	return New().SetNumber("5555555555554444").
		SetBrand("Mastercard").
		SetToken("tok_mastercard").
		SetPaymentMethod("pm_card_mastercard")
}

// Mastercard2Series returns a new Mastercard (2-series) card. It shares its
// token and payment method with Mastercard.
func Mastercard2Series() *Card {
	return New().SetNumber("2223003122003222").
		SetBrand("Mastercard (2-series)").
		SetToken("tok_mastercard").
		SetPaymentMethod("pm_card_mastercard")
}

// MastercardDebit returns a new Mastercard debit card.
func MastercardDebit() *Card {
	return New().SetNumber("5200828282828210").
		SetBrand("Mastercard (debit)").
		SetToken("tok_mastercard_debit").
		SetPaymentMethod("pm_card_mastercard_debit")
}

// Visa returns a new Visa card.
func Visa() *Card {
	return New().SetNumber("4242424242424242").
		SetBrand("Visa").
		SetToken("tok_visa").
		SetPaymentMethod("pm_card_visa")
}

// VisaDebit returns a new Visa debit card.
func VisaDebit() *Card {
	return New().SetNumber("4000056655665556").
		SetBrand("Visa (debit)").
		SetToken("tok_visa_debit").
		SetPaymentMethod("pm_card_visa_debit")
}

// Presets returns a copy of the registered presets keyed by name.
func Presets() map[string]Preset {
	return maps.Clone(presets)
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := maps.Keys(presets)
	slices.Sort(names)
	return names
}

// Lookup builds a new card from the preset registered under name.
func Lookup(name string) (*Card, error) {
	preset, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return preset(), nil
}
