// Package card provides payment card fixtures for tests running against a
// payment provider in test mode.
package card

import (
	"time"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/alovak/testcards/internal/expiry"
	"golang.org/x/exp/slog"
)

// Default cards expire one year after they are first read.
const validityYears = 1

// now is swapped in tests to pin the lazy expiry.
var now = time.Now

// SetExpiryLocation sets the time location used to generate default expiry
// dates. A nil location keeps the current one (UTC unless changed).
func SetExpiryLocation(loc *time.Location) {
	expiry.SetDefaultExpiryLocation(loc)
}

// Card is a test payment card. Setters return the receiver so calls can be
// chained. The expiry date and security code are generated on first read
// when they were never set, and stay fixed for the life of the card.
//
// A Card is not safe for concurrent use; give each test its own.
type Card struct {
	number        string
	expiry        string
	code          string
	token         string
	paymentMethod string
	brand         string

	hasExpiry bool
	hasCode   bool
}

// New returns an empty card.
func New() *Card {
	return &Card{}
}

// SetNumber sets the number of the card.
func (c *Card) SetNumber(number string) *Card {
	c.number = number
	return c
}

// SetBrand sets the brand of the card.
func (c *Card) SetBrand(brand string) *Card {
	c.brand = brand
	return c
}

// SetToken sets the token of the card.
func (c *Card) SetToken(token string) *Card {
	c.token = token
	return c
}

// SetPaymentMethod sets the payment method token of the card.
func (c *Card) SetPaymentMethod(paymentMethod string) *Card {
	c.paymentMethod = paymentMethod
	return c
}

// SetExpiryDate sets the expiry as given. An explicit value, even an empty
// one, disables generation.
func (c *Card) SetExpiryDate(mmyy string) *Card {
	c.expiry = mmyy
	c.hasExpiry = true
	return c
}

// SetSecurityCode sets the security code as given. An explicit value, even
// an empty one, disables generation.
func (c *Card) SetSecurityCode(code string) *Card {
	c.code = code
	c.hasCode = true
	return c
}

// SetCVCCode is the same as SetSecurityCode.
func (c *Card) SetCVCCode(code string) *Card {
	return c.SetSecurityCode(code)
}

// Number returns the number of the card.
func (c *Card) Number() string {
	return c.number
}

// Brand returns the brand of the card.
func (c *Card) Brand() string {
	return c.brand
}

// Token returns the token of the card.
func (c *Card) Token() string {
	return c.token
}

// PaymentMethod returns the payment method token of the card.
func (c *Card) PaymentMethod() string {
	return c.paymentMethod
}

// LastFour returns the last four digits of the number, or the whole number
// when it is shorter.
func (c *Card) LastFour() string {
	return cardgen.LastN(c.number, 4)
}

// MaskedNumber returns the number with everything but the BIN and the last
// four digits hidden.
func (c *Card) MaskedNumber() string {
	return cardgen.MaskPAN(c.number)
}

// ExpiryDate returns the expiry as MMYY. When none was set, one year from now
// is used and remembered.
func (c *Card) ExpiryDate() string {
	if !c.hasExpiry {
		c.SetExpiryDate(expiry.MMYY(now(), validityYears))
	}
	return c.expiry
}

// CardFace returns the expiry as printed on a card (MM/YY).
func (c *Card) CardFace() string {
	return expiry.Face(c.ExpiryDate())
}

// SecurityCode returns the security code. When none was set, a random one in
// [100, 999] is generated and remembered.
func (c *Card) SecurityCode() string {
	if !c.hasCode {
		c.SetSecurityCode(cardgen.SecurityCode())
	}
	return c.code
}

// CVCCode is the same as SecurityCode.
func (c *Card) CVCCode() string {
	return c.SecurityCode()
}

// Clone returns an independent copy. Values already generated are kept.
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// LogValue implements slog.LogValuer. The full number and the security code
// are never logged.
func (c *Card) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("brand", c.brand),
		slog.String("number", c.MaskedNumber()),
		slog.String("token", c.token),
		slog.String("payment_method", c.paymentMethod),
	)
}
