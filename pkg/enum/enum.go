package enum

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"
)

// Values declares the wire tokens for every value of an enum type.
// An empty token means the value serializes as its intrinsic textual name.
type Values[T comparable] map[T]string

// DecodeError reports a wire token that does not map to any declared value
// of the target enum type.
type DecodeError struct {
	Token string
	Type  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("enum: unknown token %q for type %s", e.Token, e.Type)
}

// mapping is the built bidirectional table for one enum type. Values are
// boxed as any so mappings for different types can share one cache.
type mapping struct {
	typeName string
	toWire   map[any]string
	fromWire map[string]any
}

var (
	// builders holds the declared Values table per type, wrapped in a
	// closure so the generic type parameter survives the sync.Map boundary.
	builders sync.Map // reflect.Type -> func() *mapping

	// mappings caches built tables per type. LoadOrStore publishes exactly
	// one mapping even if two goroutines race to build it; the redundant
	// build is discarded.
	mappings sync.Map // reflect.Type -> *mapping
)

// Register declares the wire tokens for an enum type. Call it from an init
// func in the package that declares the type. Registering a type twice
// replaces the previous declaration.
func Register[T comparable](values Values[T]) {
	t := typeOf[T]()
	builders.Store(t, func() *mapping { return build(t, values) })
	mappings.Delete(t)
}

// Encode returns the wire token for v. Values without a declared token,
// or values of an unregistered type, encode as their intrinsic name.
func Encode[T comparable](v T) string {
	m, err := lookup[T]()
	if err != nil {
		return fmt.Sprint(v)
	}
	if token, ok := m.toWire[v]; ok {
		return token
	}
	return fmt.Sprint(v)
}

// Decode returns the value whose wire token is token. Unknown tokens and
// unregistered types fail with a *DecodeError.
func Decode[T comparable](token string) (T, error) {
	var zero T
	m, err := lookup[T]()
	if err != nil {
		return zero, err
	}
	v, ok := m.fromWire[token]
	if !ok {
		return zero, &DecodeError{Token: token, Type: m.typeName}
	}
	return v.(T), nil
}

// MarshalJSON encodes v as a JSON string holding its wire token.
func MarshalJSON[T comparable](v T) ([]byte, error) {
	return json.Marshal(Encode(v))
}

// UnmarshalJSON decodes a JSON string wire token into v.
func UnmarshalJSON[T comparable](data []byte, v *T) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("enum: wire token must be a JSON string: %w", err)
	}
	decoded, err := Decode[T](token)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}

func typeOf[T comparable]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

func lookup[T comparable]() (*mapping, error) {
	t := typeOf[T]()
	if m, ok := mappings.Load(t); ok {
		return m.(*mapping), nil
	}
	b, ok := builders.Load(t)
	if !ok {
		return nil, fmt.Errorf("enum: type %s is not registered", t)
	}
	m, _ := mappings.LoadOrStore(t, b.(func() *mapping)())
	return m.(*mapping), nil
}

func build[T comparable](t reflect.Type, values Values[T]) *mapping {
	m := &mapping{
		typeName: t.String(),
		toWire:   make(map[any]string, len(values)),
		fromWire: make(map[string]any, len(values)),
	}
	for v, token := range values {
		if token == "" {
			token = fmt.Sprint(v)
		}
		if prev, dup := m.fromWire[token]; dup {
			panic(fmt.Sprintf("enum: duplicate wire token %q for type %s (values %v and %v)", token, m.typeName, prev, v))
		}
		m.toWire[v] = token
		m.fromWire[token] = v
	}
	return m
}
