package option

import (
	"encoding/json"
	"net"
	"testing"

	"gopkg.in/yaml.v2"
)

type document struct {
	Name  Option[string]   `json:"name"           yaml:"name"`
	Count Option[int]      `json:"count"          yaml:"count,omitempty"`
	Tags  Option[[]string] `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(document{Name: Some("a"), Tags: Some([]string{"x"})})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	wanted := `{"name":"a","count":null,"tags":["x"]}`
	if string(data) != wanted {
		t.Fatalf("wanted `%s`; found `%s`", wanted, data)
	}

	var doc document
	if err := json.Unmarshal(
		[]byte(`{"name":null,"count":0}`),
		&doc,
	); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if doc.Name.HasValue() {
		t.Fatalf("wanted `null` to decode as `None`; found `%v`", doc.Name)
	}
	if doc.Count != Some(0) {
		t.Fatalf("wanted `Some(0)`; found `%v`", doc.Count)
	}
	if doc.Tags.HasValue() {
		t.Fatalf("wanted missing field to stay `None`; found `%v`", doc.Tags)
	}

	if err := json.Unmarshal([]byte(`{"count":"x"}`), &doc); err == nil {
		t.Fatal("wanted error decoding a string into `Option[int]`")
	}
}

func TestYAML(t *testing.T) {
	data, err := yaml.Marshal(document{Name: None[string](), Count: None[int]()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	wanted := "name: null\n"
	if string(data) != wanted {
		t.Fatalf("wanted `%q`; found `%q`", wanted, data)
	}

	for _, tc := range []struct {
		name   string
		input  string
		wanted Option[int]
	}{
		{name: "value", input: "count: 3\n", wanted: Some(3)},
		{name: "zero", input: "count: 0\n", wanted: Some(0)},
		{name: "null", input: "count: null\n", wanted: None[int]()},
		{name: "tilde", input: "count: ~\n", wanted: None[int]()},
		{name: "missing", input: "name: x\n", wanted: None[int]()},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var doc document
			if err := yaml.UnmarshalStrict([]byte(tc.input), &doc); err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if doc.Count != tc.wanted {
				t.Fatalf("wanted `%v`; found `%v`", tc.wanted, doc.Count)
			}
		})
	}
}

type level string

func TestText(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		decode func([]byte) (interface{}, error)
		wanted interface{}
	}{
		{
			name:   "int",
			input:  "-2",
			decode: decodeText[int],
			wanted: Some(-2),
		},
		{
			name:   "string",
			input:  "hello world",
			decode: decodeText[string],
			wanted: Some("hello world"),
		},
		{
			name:   "string-kind",
			input:  "debug",
			decode: decodeText[level],
			wanted: Some(level("debug")),
		},
		{
			name:   "text-unmarshaler",
			input:  "127.0.0.1",
			decode: decodeText[net.IP],
			wanted: "Some(127.0.0.1)",
		},
		{
			name:   "empty",
			input:  "",
			decode: decodeText[int],
			wanted: None[int](),
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			found, err := tc.decode([]byte(tc.input))
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if s, ok := tc.wanted.(string); ok {
				found = found.(interface{ String() string }).String()
				if found != s {
					t.Fatalf("wanted `%s`; found `%s`", s, found)
				}
				return
			}
			if found != tc.wanted {
				t.Fatalf("wanted `%v`; found `%v`", tc.wanted, found)
			}
		})
	}

	if _, err := decodeText[int]([]byte("three")); err == nil {
		t.Fatal("wanted error decoding `three` as `Option[int]`")
	}
}

func decodeText[T any](text []byte) (interface{}, error) {
	var o Option[T]
	if err := o.UnmarshalText(text); err != nil {
		return nil, err
	}
	return o, nil
}

func TestTextRoundTrip(t *testing.T) {
	for _, o := range []Option[int]{Some(0), Some(-7), None[int]()} {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		var found Option[int]
		if err := found.UnmarshalText(text); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if found != o {
			t.Fatalf("wanted `%v`; found `%v`", o, found)
		}
	}
}
