package customer

import (
	"errors"
	"fmt"

	"dragontea/internal/core/domain/model/kernel"
	"dragontea/internal/pkg/errs"
	"dragontea/internal/pkg/guard"
)

// defaultCity is assigned to new customers until they change it.
const defaultCity = "Ташкент"

// Domain errors for customer operations.
var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
	// ErrChatIDIsRequired is returned when attempting to create a customer without a chat id.
	ErrChatIDIsRequired = errs.NewValueIsRequiredError("chatID")
)

// Language is the customer's preferred language for bot interaction.
// LanguageNone means the customer has not picked a language yet; the
// onboarding flow asks for one before anything else.
type Language string

const (
	// LanguageNone means no language has been selected yet.
	LanguageNone Language = ""
	// LanguageRussian selects Russian message templates.
	LanguageRussian Language = "ru"
	// LanguageUzbek selects Uzbek message templates.
	LanguageUzbek Language = "uz"
)

// Validate checks if the Language is one of the supported options.
func (l Language) Validate() error {
	switch l {
	case LanguageNone, LanguageRussian, LanguageUzbek:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("language is invalid",
			fmt.Errorf("%q is not a supported language", string(l)))
	}
}

// String returns the language code.
// This method implements the fmt.Stringer interface.
func (l Language) String() string {
	return string(l)
}

// Customer represents a storefront customer identified by their messaging
// chat id. It is an aggregate root created on first contact; the profile is
// filled in step by step (language, then phone) before ordering is possible.
//
// Customer follows these invariants:
//   - Must have a valid unique identifier and a non-zero chat id
//   - Language, once set, must be a supported option
//   - Can only be created through NewCustomer or RestoreCustomer
type Customer struct {
	// id is the unique identifier of the customer
	id kernel.UUID

	// chatID is the opaque external messaging identity
	chatID int64

	// name is the display name captured on first contact
	name string

	// username is the messaging handle captured on first contact (may be empty)
	username string

	// phone is the contact phone number (empty until shared)
	phone string

	// city is the customer's default city
	city string

	// language is the preferred language for bot interaction
	language Language

	guard guard.ConstructorGuard
}

// NewCustomer creates a Customer on first contact.
// Name and username come from the inbound message and may be empty; phone and
// language stay unset until the customer provides them.
func NewCustomer(id kernel.UUID, chatID int64, name string, username string) (*Customer, error) {
	customer := &Customer{
		name:     name,
		username: username,
		city:     defaultCity,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setChatID(chatID),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer aggregate from persistent storage.
// Unlike NewCustomer it restores the full profile, including language and
// phone, exactly as previously persisted.
func RestoreCustomer(
	id kernel.UUID,
	chatID int64,
	name string,
	username string,
	phone string,
	city string,
	language Language,
) (*Customer, error) {
	customer, err := NewCustomer(id, chatID, name, username)
	if err != nil {
		return nil, err
	}

	if err = customer.SetLanguage(language); err != nil {
		return nil, err
	}

	customer.phone = phone
	customer.city = city
	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || c.guard.Validate(ErrCustomerIsNotConstructed) != nil {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// ChatID returns the customer's external messaging identity.
func (c *Customer) ChatID() int64 {
	return c.chatID
}

// Name returns the display name captured on first contact.
func (c *Customer) Name() string {
	return c.name
}

// Username returns the messaging handle captured on first contact.
func (c *Customer) Username() string {
	return c.username
}

// Phone returns the contact phone number, or an empty string if not shared yet.
func (c *Customer) Phone() string {
	return c.phone
}

// City returns the customer's default city.
func (c *Customer) City() string {
	return c.city
}

// Language returns the customer's preferred language.
func (c *Customer) Language() Language {
	return c.language
}

// HasLanguage reports whether the customer has picked a language.
func (c *Customer) HasLanguage() bool {
	return c.language != LanguageNone
}

// HasPhone reports whether the customer has shared a phone number.
func (c *Customer) HasPhone() bool {
	return c.phone != ""
}

// SetLanguage updates the customer's preferred language.
// Returns an error if the language is not a supported option.
func (c *Customer) SetLanguage(language Language) error {
	if err := language.Validate(); err != nil {
		return err
	}

	c.language = language
	return nil
}

// SetPhone updates the customer's contact phone number.
// Returns an error if the phone is empty.
func (c *Customer) SetPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}

// setID validates and sets the customer's unique identifier.
// This is a private method used only during construction.
func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

// setChatID validates and sets the external messaging identity.
// This is a private method used only during construction.
func (c *Customer) setChatID(chatID int64) error {
	if chatID == 0 {
		return ErrChatIDIsRequired
	}
	c.chatID = chatID
	return nil
}
