package model

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-backend/internal/shared/gateway"
)

// Field names as registered on the gateway and stored in the authors table
const (
	EntityName       = "author"
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

// PhoneNumberLength is the exact number of digits a phone number must have
const PhoneNumberLength = 10

// NameLookup finds a committed author by exact name.
// Implementations return ErrAuthorNotFound when there is none.
type NameLookup interface {
	GetByName(ctx context.Context, name string) (*Author, error)
}

// NewGateway registers the author field validators.
// lookup backs the name uniqueness pre-check.
func NewGateway(lookup NameLookup) *gateway.Gateway[Author] {
	return gateway.New[Author](EntityName).
		Register(FieldName, func(a *Author) []validation.Rule {
			return []validation.Rule{
				validation.Required.Error(MsgNameRequired),
				validation.By(notBlank),
				validation.WithContext(uniqueName(lookup, a)),
			}
		}).
		// nil is accepted, "" is not
		RegisterStatic(FieldPhoneNumber,
			validation.NilOrNotEmpty.Error(MsgPhoneInvalid),
			validation.RuneLength(PhoneNumberLength, PhoneNumberLength).Error(MsgPhoneInvalid),
			is.Digit.Error(MsgPhoneInvalid),
		)
}

// notBlank rejects names made of whitespace only. The stored value is never trimmed.
func notBlank(value interface{}) error {
	v, isNil := validation.Indirect(value)
	s, ok := v.(string)
	if isNil || !ok || strings.TrimSpace(s) == "" {
		return validation.NewError("author_name_required", MsgNameRequired)
	}
	return nil
}

// uniqueName rejects a name already held by a different author.
// A record without identity conflicts with any match.
func uniqueName(lookup NameLookup, self *Author) validation.RuleWithContextFunc {
	return func(ctx context.Context, value interface{}) error {
		v, _ := validation.Indirect(value)
		name, _ := v.(string)

		existing, err := lookup.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, ErrAuthorNotFound) {
				return nil
			}
			return validation.NewInternalError(err)
		}

		if self != nil && self.IsPersisted() && existing.ID == self.ID {
			return nil
		}
		return validation.NewError("author_name_unique", MsgNameUnique)
	}
}
