package gateway

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RuleSet builds the rules guarding one field.
// It receives the record being written so rules such as uniqueness
// can exclude the record's own identity.
type RuleSet[T any] func(record *T) []validation.Rule

// Assignment is a proposed value for a single field
type Assignment struct {
	Field string
	Value interface{}
}

// Assign is shorthand for Assignment{Field: field, Value: value}
func Assign(field string, value interface{}) Assignment {
	return Assignment{Field: field, Value: value}
}

// Gateway is the interception point every write to a validated field passes through.
// Validators are registered explicitly per field and run synchronously, in order,
// before anything reaches storage. The gateway itself never writes.
type Gateway[T any] struct {
	entity string
	fields map[string]RuleSet[T]
}

// New creates an empty gateway for the named entity
func New[T any](entity string) *Gateway[T] {
	return &Gateway[T]{
		entity: entity,
		fields: make(map[string]RuleSet[T]),
	}
}

// Entity returns the entity name used in rejections
func (g *Gateway[T]) Entity() string {
	return g.entity
}

// Register binds a rule set to field, replacing any previous registration
func (g *Gateway[T]) Register(field string, rules RuleSet[T]) *Gateway[T] {
	g.fields[field] = rules
	return g
}

// RegisterStatic binds rules that do not depend on the record being written
func (g *Gateway[T]) RegisterStatic(field string, rules ...validation.Rule) *Gateway[T] {
	return g.Register(field, func(*T) []validation.Rule { return rules })
}

// Has reports whether field has validators registered
func (g *Gateway[T]) Has(field string) bool {
	_, ok := g.fields[field]
	return ok
}

// Validate runs the validators of field against value.
//
// Returns:
//   - nil when the value is accepted
//   - *ValidationError when a rule rejects it
//   - a wrapped infrastructure error when a rule could not decide (e.g. lookup failed)
func (g *Gateway[T]) Validate(ctx context.Context, record *T, field string, value interface{}) error {
	rules, ok := g.fields[field]
	if !ok {
		return fmt.Errorf("gateway: no validators registered for %s.%s", g.entity, field)
	}

	err := validation.ValidateWithContext(ctx, value, rules(record)...)
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("validate %s.%s: %w", g.entity, field, internal.InternalError())
	}

	var ve validation.Error
	if errors.As(err, &ve) {
		return NewValidationError(g.entity, field, ve.Error())
	}

	return NewValidationError(g.entity, field, err.Error())
}

// ValidateAll validates assignments in the order given and stops at the first rejection
func (g *Gateway[T]) ValidateAll(ctx context.Context, record *T, assignments ...Assignment) error {
	for _, a := range assignments {
		if err := g.Validate(ctx, record, a.Field, a.Value); err != nil {
			return err
		}
	}
	return nil
}
