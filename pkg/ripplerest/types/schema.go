package types

import (
	"fmt"
	"regexp"
)

// Patterns published by the ripple-rest JSON schemas. The enumerations are kept exactly as
// published, unanchored alternation included, so validation agrees with the server.
var (
	AddressPattern           = regexp.MustCompile(`^r[1-9A-HJ-NP-Za-km-z]{25,33}$`)
	OptionalAddressPattern   = regexp.MustCompile(`^$|^r[1-9A-HJ-NP-Za-km-z]{25,33}$`)
	Hash256Pattern           = regexp.MustCompile(`^$|^[A-Fa-f0-9]{64}$`)
	Hash128Pattern           = regexp.MustCompile(`^$|^[A-Fa-f0-9]{32}$`)
	CurrencyPattern          = regexp.MustCompile(`^([a-zA-Z0-9]{3}|[A-Fa-f0-9]{40})$`)
	FloatStringPattern       = regexp.MustCompile(`^[-+]?[0-9]*[.]?[0-9]+([eE][-+]?[0-9]+)?$`)
	UIntStringPattern        = regexp.MustCompile(`^[0-9]+$`)
	OptionalUIntPattern      = regexp.MustCompile(`^[0-9]*$`)
	MessageKeyPattern        = regexp.MustCompile(`^([0-9a-fA-F]{2}){0,33}$`)
	ResultCodePattern        = regexp.MustCompile(`te[cfjlms][A-Za-z_]+`)
	DirectionPattern         = regexp.MustCompile(`^incoming|outgoing|passthrough$`)
	NotificationTypePattern  = regexp.MustCompile(`^payment|order|trustline|accountsettings$`)
	NotificationStatePattern = regexp.MustCompile(`^validated|failed$`)
	PaymentStatePattern      = regexp.MustCompile(`^validated|failed|new$`)
	OrderStatePattern        = regexp.MustCompile(`^active|validated|filled|cancelled|expired|failed$`)
	CancelReplacePattern     = regexp.MustCompile(`^d*$`)
)

// Kind is the semantic type of an entity field.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindUInt32
	KindFloat
	KindTimestamp
	KindEntity
	KindEntityList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindUInt32:
		return "uint32"
	case KindFloat:
		return "float"
	case KindTimestamp:
		return "timestamp"
	case KindEntity:
		return "entity"
	case KindEntityList:
		return "entity list"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// FieldInfo describes one field of an entity.
type FieldInfo struct {
	Name        string         `json:"name"`
	Kind        Kind           `json:"-"`
	KindName    string         `json:"kind"`
	Pattern     *regexp.Regexp `json:"-"`
	PatternText string         `json:"pattern,omitempty"`
	Required    bool           `json:"required"`
}

// field is a table row. Only string fields carry a getter.
type field[T any] struct {
	FieldInfo
	get func(*T) string
}

// Schema is the per-type field table consulted by Validate.
type Schema[T any] struct {
	typeName string
	fields   []field[T]
}

func newSchema[T any](typeName string, fields ...field[T]) *Schema[T] {
	for i := range fields {
		fields[i].KindName = fields[i].Kind.String()
		if fields[i].Pattern != nil {
			fields[i].PatternText = fields[i].Pattern.String()
		}
	}
	return &Schema[T]{typeName: typeName, fields: fields}
}

func str[T any](name string, pattern *regexp.Regexp, required bool, get func(*T) string) field[T] {
	return field[T]{
		FieldInfo: FieldInfo{Name: name, Kind: KindString, Pattern: pattern, Required: required},
		get:       get,
	}
}

func typed[T any](name string, kind Kind, required bool) field[T] {
	return field[T]{FieldInfo: FieldInfo{Name: name, Kind: kind, Required: required}}
}

// TypeName is the entity name used in validation errors.
func (s *Schema[T]) TypeName() string {
	return s.typeName
}

// Fields returns the field table in declaration order.
func (s *Schema[T]) Fields() []FieldInfo {
	infos := make([]FieldInfo, 0, len(s.fields))
	for _, f := range s.fields {
		infos = append(infos, f.FieldInfo)
	}
	return infos
}

// Validate checks every populated string field against its pattern. Required is not enforced.
func (s *Schema[T]) Validate(v *T) error {
	if v == nil {
		return nil
	}
	for _, f := range s.fields {
		if f.get == nil || f.Pattern == nil {
			continue
		}
		value := f.get(v)
		if value == "" {
			continue
		}
		if !f.Pattern.MatchString(value) {
			return &ValidationError{
				Type:    s.typeName,
				Field:   f.Name,
				Pattern: f.Pattern.String(),
				Value:   value,
			}
		}
	}
	return nil
}
