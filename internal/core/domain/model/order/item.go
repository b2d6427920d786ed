package order

import (
	"errors"
	"math"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when using an improperly initialized Item.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a priced snapshot of one cart line, frozen at checkout.
//
// The snapshot carries everything the staff and receipts need: both localized
// titles, the unit price resolved at checkout time, and the serving volume.
// Later catalog edits never change an already placed order.
type Item struct {
	// titleRU and titleUZ are the product titles frozen at checkout
	titleRU string
	titleUZ string

	// unitPrice is the per-unit price resolved at checkout
	unitPrice int

	// quantity is the ordered unit count (> 0)
	quantity int

	// variant is the size/temperature configuration ordered
	variant kernel.Variant

	// volume is the serving volume in milliliters for the ordered size
	volume int

	guard guard.ConstructorGuard
}

// NewItem creates an order Item snapshot.
// Quantity must be positive; unit price and volume must not be negative.
func NewItem(
	titleRU string,
	titleUZ string,
	unitPrice int,
	quantity int,
	variant kernel.Variant,
	volume int,
) (Item, error) {
	if titleRU == "" || titleUZ == "" {
		return Item{}, errs.NewValueIsRequiredError("title")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	if unitPrice < 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("unitPrice", unitPrice, 0, math.MaxInt)
	}
	if err := variant.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		titleRU:   titleRU,
		titleUZ:   titleUZ,
		unitPrice: unitPrice,
		quantity:  quantity,
		variant:   variant,
		volume:    volume,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Item instance was properly constructed.
func (i Item) Validate() error {
	if i.guard.Validate(ErrItemIsNotConstructed) != nil {
		return ErrItemIsNotConstructed
	}

	return nil
}

// Title returns the localized frozen title for the given language.
// Russian is the fallback for any unset language.
func (i Item) Title(language customer.Language) string {
	if language == customer.LanguageUzbek {
		return i.titleUZ
	}
	return i.titleRU
}

// TitleRU returns the Russian title frozen at checkout.
func (i Item) TitleRU() string {
	return i.titleRU
}

// TitleUZ returns the Uzbek title frozen at checkout.
func (i Item) TitleUZ() string {
	return i.titleUZ
}

// UnitPrice returns the per-unit price resolved at checkout.
func (i Item) UnitPrice() int {
	return i.unitPrice
}

// Quantity returns the ordered unit count.
func (i Item) Quantity() int {
	return i.quantity
}

// Variant returns the ordered size/temperature configuration.
func (i Item) Variant() kernel.Variant {
	return i.variant
}

// Volume returns the serving volume in milliliters.
func (i Item) Volume() int {
	return i.volume
}

// Total returns the line total: unit price times quantity.
func (i Item) Total() int {
	return i.unitPrice * i.quantity
}
