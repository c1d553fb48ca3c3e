// Package canonjson decodes JSON into an order-preserving value tree and
// formats such trees back into the canonical text layout the keypad client
// toolchain produces: two-space indentation, LF line endings, objects always
// expanded, and arrays of primitives kept on one line while they fit in 80
// columns. Loading a canonical file and formatting it again yields the exact
// same bytes.
package canonjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// MaxInlineWidth is the column limit for rendering a primitive array on a
// single line, measured over the whole line including indentation and any
// `"key": ` prefix.
const MaxInlineWidth = 80

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object with its member order preserved. Decoding keeps the
// source order; code building documents appends members in the order they
// should serialize.
type Object []Member

// Get returns the value for key and whether it is present.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// DecodeOrdered parses data into a tree of Object, []any, string,
// json.Number, bool, and nil values. Numbers are kept as json.Number so their
// source spelling survives a round trip. Trailing non-whitespace content after
// the first value is an error.
func DecodeOrdered(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected content after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		// string, json.Number, bool, or nil
		return tok, nil
	}
	switch delim {
	case '{':
		obj := Object{}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is not a string")
			}
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, Member{Key: key, Value: val})
		}
		if _, err := dec.Token(); err != nil { // consume '}'
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			val, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		if _, err := dec.Token(); err != nil { // consume ']'
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// Clone returns a deep copy of a decoded value tree.
func Clone(v any) any {
	switch t := v.(type) {
	case Object:
		out := make(Object, len(t))
		for i, m := range t {
			out[i] = Member{Key: m.Key, Value: Clone(m.Value)}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	default:
		return v
	}
}

// Format renders v in the canonical layout and terminates the output with
// exactly one newline.
func Format(v any) []byte {
	var b strings.Builder
	writeValue(&b, v, 0, 0)
	b.WriteByte('\n')
	return []byte(b.String())
}

// writeValue writes v at the given indent depth. col is the number of
// characters already emitted on the current line before v starts; it feeds the
// inline-array width check.
func writeValue(b *strings.Builder, v any, indent, col int) {
	switch t := v.(type) {
	case Object:
		writeObject(b, t, indent)
	case map[string]any:
		writeObject(b, sortedObject(t), indent)
	case []any:
		writeArray(b, t, indent, col)
	default:
		b.WriteString(encodeScalar(v))
	}
}

func writeObject(b *strings.Builder, obj Object, indent int) {
	if len(obj) == 0 {
		b.WriteString("{}")
		return
	}
	pad := strings.Repeat("  ", indent+1)
	b.WriteString("{\n")
	for i, m := range obj {
		b.WriteString(pad)
		key := encodeString(m.Key)
		b.WriteString(key)
		b.WriteString(": ")
		writeValue(b, m.Value, indent+1, len(pad)+len(key)+2)
		if i < len(obj)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteByte('}')
}

func writeArray(b *strings.Builder, arr []any, indent, col int) {
	if len(arr) == 0 {
		b.WriteString("[]")
		return
	}
	if allScalars(arr) {
		inline := inlineArray(arr)
		if col+len(inline) <= MaxInlineWidth {
			b.WriteString(inline)
			return
		}
	}
	pad := strings.Repeat("  ", indent+1)
	b.WriteString("[\n")
	for i, e := range arr {
		b.WriteString(pad)
		writeValue(b, e, indent+1, len(pad))
		if i < len(arr)-1 {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	b.WriteString(strings.Repeat("  ", indent))
	b.WriteByte(']')
}

func allScalars(arr []any) bool {
	for _, e := range arr {
		switch e.(type) {
		case Object, map[string]any, []any:
			return false
		}
	}
	return true
}

func inlineArray(arr []any) string {
	parts := make([]string, len(arr))
	for i, e := range arr {
		parts[i] = encodeScalar(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func encodeScalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return encodeString(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		// Fallback for unexpected scalar types; documents built by this
		// module never reach it.
		data, err := json.Marshal(v)
		if err != nil {
			return "null"
		}
		return string(data)
	}
}

// encodeString JSON-escapes s without HTML escaping, matching the client
// toolchain's output for strings like "<APP>".
func encodeString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// sortedObject converts a plain map into an Object with keys sorted, the only
// deterministic order available once the source order is gone.
func sortedObject(m map[string]any) Object {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	obj := make(Object, 0, len(m))
	for _, k := range keys {
		obj = append(obj, Member{Key: k, Value: m[k]})
	}
	return obj
}
