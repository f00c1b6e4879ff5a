package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
)

// Raw is the stored form of a document: top-level members kept as undecoded
// JSON so the store can merge patches without knowing every record type.
type Raw map[string]json.RawMessage

// Patch is a partial update. Each listed field replaces the stored member
// wholesale; a JSON null removes it.
type Patch map[Field]json.RawMessage

// Encode converts d to its stored form.
func Encode(d *Document) (Raw, error) {
	b, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var r Raw
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, err
	}
	return r, nil
}

// Decode parses a stored document.
func (r Raw) Decode() (*Document, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	d := &Document{}
	if err := json.Unmarshal(b, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ParseRaw reads a stored document from its JSON object form.
func ParseRaw(b []byte) (Raw, error) {
	var r Raw
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	if r == nil {
		return nil, fmt.Errorf("parse document: not an object")
	}
	return r, nil
}

// Apply returns a copy of r with p merged in at the top level.
func (r Raw) Apply(p Patch) Raw {
	out := maps.Clone(r)
	if out == nil {
		out = Raw{}
	}
	for f, v := range p {
		if isNull(v) {
			delete(out, string(f))
			continue
		}
		out[string(f)] = v
	}
	return out
}

// NewPatch copies the named fields of d into a patch. Fields that encode to
// nothing (empty collections, nil pointers) become explicit nulls so the
// stored copy is cleared as well.
func NewPatch(d *Document, fields ...Field) (Patch, error) {
	r, err := Encode(d)
	if err != nil {
		return nil, err
	}
	p := make(Patch, len(fields))
	for _, f := range fields {
		if v, ok := r[string(f)]; ok {
			p[f] = v
		} else {
			p[f] = json.RawMessage("null")
		}
	}
	return p, nil
}

// ParsePatch reads a patch from its JSON object form. It does not validate
// field names.
func ParsePatch(b []byte) (Patch, error) {
	var p Patch
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("parse patch: not an object")
	}
	return p, nil
}

// Fields returns the patched fields in a stable order.
func (p Patch) Fields() []Field {
	fs := slices.Collect(maps.Keys(p))
	slices.Sort(fs)
	return fs
}

// Validate rejects unknown fields and malformed JSON values.
func (p Patch) Validate() error {
	for f, v := range p {
		if !f.Known() {
			return fmt.Errorf("unknown field %q", f)
		}
		if !isNull(v) && !json.Valid(v) {
			return fmt.Errorf("field %q: malformed value", f)
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	t := bytes.TrimSpace(v)
	return len(t) == 0 || bytes.Equal(t, []byte("null"))
}
