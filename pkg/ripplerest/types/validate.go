package types

import (
	"fmt"
	"sort"
)

// Entity is implemented by every record that carries a field-pattern table.
type Entity interface {
	Validate() error
}

// Validate runs the field-pattern checks of e. It never checks required fields.
func Validate(e Entity) error {
	if e == nil {
		return nil
	}
	return e.Validate()
}

type registration struct {
	newEntity func() Entity
	fields    func() []FieldInfo
}

var registry = map[string]registration{
	"amount":           {func() Entity { return &Amount{} }, amountSchema.Fields},
	"balance":          {func() Entity { return &Balance{} }, balanceSchema.Fields},
	"trustline":        {func() Entity { return &Trustline{} }, trustlineSchema.Fields},
	"account_settings": {func() Entity { return &AccountSettings{} }, accountSettingsSchema.Fields},
	"notification":     {func() Entity { return &Notification{} }, notificationSchema.Fields},
	"payment":          {func() Entity { return &Payment{} }, paymentSchema.Fields},
	"order":            {func() Entity { return &Order{} }, orderSchema.Fields},
}

// EntityNames lists the names accepted by NewEntity and FieldsOf.
func EntityNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewEntity returns a pointer to a zero value of the named entity, ready for decoding.
func NewEntity(name string) (Entity, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity %q, expected one of %v", name, EntityNames())
	}
	return r.newEntity(), nil
}

// FieldsOf returns the field table of the named entity.
func FieldsOf(name string) ([]FieldInfo, error) {
	r, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown entity %q, expected one of %v", name, EntityNames())
	}
	return r.fields(), nil
}
