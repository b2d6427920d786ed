package product

import (
	"errors"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// Domain errors for product operations.
var (
	// ErrProductIsNotConstructed is returned when using an improperly initialized Product.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrTitleIsRequired is returned when a product is created without localized titles.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Product represents a catalog item with optional size and temperature
// variants. The catalog is maintained outside the ordering core; the core only
// reads products to resolve prices, titles, and volumes.
//
// Pricing fails closed: a size without a configured price resolves to 0
// rather than an error, because pricing data integrity is a catalog concern.
type Product struct {
	// id is the unique identifier of the product
	id kernel.UUID

	// categoryID groups the product in the catalog (nil if uncategorized)
	categoryID *kernel.UUID

	// titleRU and titleUZ are the localized display titles
	titleRU string
	titleUZ string

	// smallPrice and bigPrice are per-size unit prices in minor currency units (0 = not configured)
	smallPrice int
	bigPrice   int

	// hasSmall/hasBig/hasHot/hasCold describe which variant options the product offers
	hasSmall bool
	hasBig   bool
	hasHot   bool
	hasCold  bool

	// smallVolume and bigVolume are the per-size serving volumes in milliliters
	smallVolume int
	bigVolume   int

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with the given titles and variant options.
// Both localized titles are required; prices and volumes may be zero.
func NewProduct(
	id kernel.UUID,
	categoryID *kernel.UUID,
	titleRU string,
	titleUZ string,
	smallPrice int,
	bigPrice int,
	hasSmall bool,
	hasBig bool,
	hasHot bool,
	hasCold bool,
	smallVolume int,
	bigVolume int,
) (*Product, error) {
	product := &Product{
		categoryID:  categoryID,
		smallPrice:  smallPrice,
		bigPrice:    bigPrice,
		hasSmall:    hasSmall,
		hasBig:      hasBig,
		hasHot:      hasHot,
		hasCold:     hasCold,
		smallVolume: smallVolume,
		bigVolume:   bigVolume,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setTitles(titleRU, titleUZ),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil || p.guard.Validate(ErrProductIsNotConstructed) != nil {
		return ErrProductIsNotConstructed
	}

	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// CategoryID returns the product's category, or nil if uncategorized.
func (p *Product) CategoryID() *kernel.UUID {
	return p.categoryID
}

// Title returns the localized title for the given language.
// Russian is the fallback for any unset language.
func (p *Product) Title(language customer.Language) string {
	if language == customer.LanguageUzbek {
		return p.titleUZ
	}
	return p.titleRU
}

// TitleRU returns the Russian title.
func (p *Product) TitleRU() string {
	return p.titleRU
}

// TitleUZ returns the Uzbek title.
func (p *Product) TitleUZ() string {
	return p.titleUZ
}

// UnitPrice resolves the unit price for the given size.
// Small resolves to the small price, big to the big price, and anything else
// to 0. A missing price also resolves to 0 - pricing fails closed instead of
// raising, because catalog data integrity is not an ordering-core concern.
func (p *Product) UnitPrice(size kernel.Size) int {
	switch size {
	case kernel.SizeSmall:
		return p.smallPrice
	case kernel.SizeBig:
		return p.bigPrice
	default:
		return 0
	}
}

// VolumeFor returns the serving volume in milliliters for the given size,
// or 0 when the size has no configured volume.
func (p *Product) VolumeFor(size kernel.Size) int {
	switch size {
	case kernel.SizeSmall:
		return p.smallVolume
	case kernel.SizeBig:
		return p.bigVolume
	default:
		return 0
	}
}

// HasSize reports whether the product offers the given size option.
func (p *Product) HasSize(size kernel.Size) bool {
	switch size {
	case kernel.SizeSmall:
		return p.hasSmall
	case kernel.SizeBig:
		return p.hasBig
	default:
		return false
	}
}

// HasSizeOptions reports whether the product is sold in more than a single form.
func (p *Product) HasSizeOptions() bool {
	return p.hasSmall || p.hasBig
}

// HasTemperatureOptions reports whether the product offers hot/cold options.
func (p *Product) HasTemperatureOptions() bool {
	return p.hasHot || p.hasCold
}

// SmallVolume returns the small serving volume in milliliters.
func (p *Product) SmallVolume() int {
	return p.smallVolume
}

// BigVolume returns the big serving volume in milliliters.
func (p *Product) BigVolume() int {
	return p.bigVolume
}

// setID validates and sets the product's unique identifier.
// This is a private method used only during construction.
func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

// setTitles validates and sets both localized titles.
// This is a private method used only during construction.
func (p *Product) setTitles(titleRU string, titleUZ string) error {
	if titleRU == "" || titleUZ == "" {
		return ErrTitleIsRequired
	}
	p.titleRU = titleRU
	p.titleUZ = titleUZ
	return nil
}
