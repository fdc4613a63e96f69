package record

// Rename moves a legacy field to its canonical name
type Rename struct {
	Legacy    string
	Canonical string
}

// FieldRenames is an ordered list of legacy field names and their canonical
// name. When several legacy names share one canonical name, the earliest
// entry with a non-empty value wins.
type FieldRenames []Rename

// Apply moves every legacy field of p to its canonical name. A canonical
// value that is already present and non-empty wins over the legacy one.
// Legacy keys are always removed. Apply reports whether p changed.
func (r FieldRenames) Apply(p Payload) bool {
	changed := false
	for _, rn := range r {
		v, ok := p[rn.Legacy]
		if !ok {
			continue
		}
		delete(p, rn.Legacy)
		changed = true
		if isEmpty(p[rn.Canonical]) {
			p[rn.Canonical] = v
		}
	}
	return changed
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	}
	return false
}

// Normalizer rewrites stored payloads into the canonical schema of their
// bucket. Renames registered for a whole collection apply to every subtype;
// subtype renames apply after them.
type Normalizer struct {
	collections map[string]FieldRenames
	buckets     map[Bucket]FieldRenames
}

// NewNormalizer creates an empty normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{
		collections: make(map[string]FieldRenames),
		buckets:     make(map[Bucket]FieldRenames),
	}
}

// ForCollection registers renames for every bucket of collection
func (n *Normalizer) ForCollection(collection string, renames FieldRenames) *Normalizer {
	n.collections[collection] = merge(n.collections[collection], renames)
	return n
}

// ForBucket registers renames for a single bucket
func (n *Normalizer) ForBucket(bucket Bucket, renames FieldRenames) *Normalizer {
	n.buckets[bucket] = merge(n.buckets[bucket], renames)
	return n
}

// Normalize rewrites p in place and reports whether anything changed.
// A nil normalizer leaves p untouched.
func (n *Normalizer) Normalize(bucket Bucket, p Payload) bool {
	if n == nil || p == nil {
		return false
	}
	changed := false
	if r, ok := n.collections[bucket.Collection]; ok {
		changed = r.Apply(p) || changed
	}
	if r, ok := n.buckets[bucket]; ok {
		changed = r.Apply(p) || changed
	}
	return changed
}

// merge appends src to dst. An entry of src whose legacy name dst already
// holds replaces it in place.
func merge(dst, src FieldRenames) FieldRenames {
	out := append(FieldRenames(nil), dst...)
next:
	for _, rn := range src {
		for i := range out {
			if out[i].Legacy == rn.Legacy {
				out[i] = rn
				continue next
			}
		}
		out = append(out, rn)
	}
	return out
}
