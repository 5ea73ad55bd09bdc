package option

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"
)

// IsZero reports whether the option is `None`. Encoders which honor
// `omitempty` (e.g. yaml) use it to drop absent options.
func (o Option[T]) IsZero() bool { return !o.ok }

// MarshalJSON encodes `None` as `null`. Note that `Some(nil)` also encodes
// as `null` and so decodes back as `None`.
func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("unmarshaling option: %w", err)
	}
	*o = Some(value)
	return nil
}

func (o Option[T]) MarshalYAML() (interface{}, error) {
	if !o.ok {
		return nil, nil
	}
	return o.value, nil
}

// UnmarshalYAML is only invoked for non-null nodes; null nodes leave the
// option zeroed, which is `None`.
func (o *Option[T]) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var value T
	if err := unmarshal(&value); err != nil {
		return fmt.Errorf("unmarshaling option: %w", err)
	}
	*o = Some(value)
	return nil
}

// MarshalText encodes `None` as empty text. String kinds are written
// verbatim, `encoding.TextMarshaler`s marshal themselves and everything
// else is written as JSON.
func (o Option[T]) MarshalText() ([]byte, error) {
	if !o.ok {
		return []byte{}, nil
	}
	if m, ok := any(o.value).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}
	if v := reflect.ValueOf(&o.value).Elem(); v.Kind() == reflect.String {
		return []byte(v.String()), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalText is the inverse of `MarshalText`. It lets envconfig and
// similar packages populate options from plain strings.
func (o *Option[T]) UnmarshalText(text []byte) error {
	if len(text) < 1 {
		*o = None[T]()
		return nil
	}

	var value T
	if u, ok := any(&value).(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText(text); err != nil {
			return fmt.Errorf("unmarshaling option: %w", err)
		}
	} else if v := reflect.ValueOf(&value).Elem(); v.Kind() == reflect.String {
		v.SetString(string(text))
	} else if err := json.Unmarshal(text, &value); err != nil {
		return fmt.Errorf("unmarshaling option from `%s`: %w", text, err)
	}
	*o = Some(value)
	return nil
}
