package reporter

// CoveredItems is a keyed collection of covered items. It is read once, when
// the run ends.
type CoveredItems interface {
	Len() int
}

// Coverage is the expected number of covered items and the collection to
// compare it against. A run whose collection size differs from Expected fails
// regardless of spec results.
type Coverage struct {
	Expected int
	Covered  CoveredItems
}

func (c *Coverage) seen() int {
	if c.Covered == nil {
		return 0
	}
	return c.Covered.Len()
}

// Keys is a set of covered item keys.
type Keys map[string]struct{}

// NewKeys creates a Keys set from the given keys.
func NewKeys(keys ...string) Keys {
	k := make(Keys, len(keys))
	for _, key := range keys {
		k.Add(key)
	}
	return k
}

// Add inserts key into the set.
func (k Keys) Add(key string) {
	k[key] = struct{}{}
}

// Len returns the number of distinct keys.
func (k Keys) Len() int {
	return len(k)
}
