package product

import (
	"errors"

	"dragontea/internal/core/domain/model/customer"
	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/guard"
)

// ErrCategoryIsNotConstructed is returned when using an improperly initialized Category.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory constructor")

// Category groups catalog products under a localized title.
type Category struct {
	id      kernel.UUID
	titleRU string
	titleUZ string

	guard guard.ConstructorGuard
}

// NewCategory creates a Category with the given localized titles.
func NewCategory(id kernel.UUID, titleRU string, titleUZ string) (*Category, error) {
	category := &Category{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		category.setID(id),
		category.setTitles(titleRU, titleUZ),
	); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate ensures the Category instance was properly constructed.
func (c *Category) Validate() error {
	if c == nil || c.guard.Validate(ErrCategoryIsNotConstructed) != nil {
		return ErrCategoryIsNotConstructed
	}

	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Title returns the localized title for the given language.
// Russian is the fallback for any unset language.
func (c *Category) Title(language customer.Language) string {
	if language == customer.LanguageUzbek {
		return c.titleUZ
	}
	return c.titleRU
}

// setID validates and sets the category's unique identifier.
// This is a private method used only during construction.
func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setTitles validates and sets both localized titles.
// This is a private method used only during construction.
func (c *Category) setTitles(titleRU string, titleUZ string) error {
	if titleRU == "" || titleUZ == "" {
		return ErrTitleIsRequired
	}
	c.titleRU = titleRU
	c.titleUZ = titleUZ
	return nil
}
