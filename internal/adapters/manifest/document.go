package manifest

import (
	"bytes"
	"encoding/json"

	"go.trai.ch/tether/internal/core/domain"
	"go.trai.ch/zerr"
)

// object is a JSON object that preserves key order across a
// decode/mutate/encode round trip. Values are kept as raw JSON so untouched
// entries survive byte-for-byte up to re-indentation.
type object struct {
	keys   []string
	values map[string]json.RawMessage
}

// UnmarshalJSON decodes a JSON object, recording keys in document order.
func (o *object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return zerr.New("expected JSON object")
	}

	o.values = make(map[string]json.RawMessage)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return zerr.New("expected object key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		o.set(key, raw)
	}

	// Consume the closing brace.
	_, err = dec.Token()
	return err
}

// MarshalJSON encodes the object with keys in their recorded order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// get returns the raw value for key.
func (o *object) get(key string) (json.RawMessage, bool) {
	raw, ok := o.values[key]
	return raw, ok
}

// set stores the raw value for key, keeping the key's original position when
// it already exists and appending it otherwise.
func (o *object) set(key string, raw json.RawMessage) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = raw
}

// setDependency rewrites the named entry inside the given section to the
// specifier, creating the section at the end of the document if it is absent.
func (o *object) setDependency(section domain.Section, name, specifier string) error {
	var deps object
	if raw, ok := o.get(string(section)); ok {
		if err := json.Unmarshal(raw, &deps); err != nil {
			return zerr.Wrap(err, "section is not an object")
		}
	} else {
		deps.values = make(map[string]json.RawMessage)
	}

	value, err := json.Marshal(specifier)
	if err != nil {
		return err
	}
	deps.set(name, value)

	raw, err := json.Marshal(&deps)
	if err != nil {
		return err
	}
	o.set(string(section), raw)

	return nil
}

// render produces the canonical on-disk form: two-space indentation, original
// key order, trailing newline.
func (o *object) render() ([]byte, error) {
	compact, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}
