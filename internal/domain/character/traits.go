package character

import (
	"sort"
	"strings"

	"github.com/duskmux/wod20/internal/domain/shared"
)

// TraitValue holds the two sides of a rating. Perm is the permanent rating XP
// purchases raise; Temp mirrors it except where a transient form or condition
// modifies it.
type TraitValue struct {
	Perm int `json:"perm"`
	Temp int `json:"temp"`
}

// TraitStore is the typed nested trait map: category -> subcategory -> trait
// name -> value. Slots are created lazily on first write. Trait names are
// stored case-preserving and looked up case-insensitively, so "potence" and
// "Potence" address the same slot.
type TraitStore map[shared.Category]map[shared.Subcategory]map[string]*TraitValue

// NewTraitStore creates an empty trait store.
func NewTraitStore() TraitStore {
	return make(TraitStore)
}

// canonicalKey returns the stored key matching name case-insensitively, or
// name itself if no entry exists yet.
func (ts TraitStore) canonicalKey(cat shared.Category, sub shared.Subcategory, name string) string {
	traits, ok := ts[cat][sub]
	if !ok {
		return name
	}
	for k := range traits {
		if strings.EqualFold(k, name) {
			return k
		}
	}
	return name
}

// Get returns the trait value for the slot, if present.
func (ts TraitStore) Get(cat shared.Category, sub shared.Subcategory, name string) (*TraitValue, bool) {
	v, ok := ts[cat][sub][ts.canonicalKey(cat, sub, name)]
	return v, ok
}

// Rating returns the permanent rating for the slot, or 0 when the trait has
// never been bought.
func (ts TraitStore) Rating(cat shared.Category, sub shared.Subcategory, name string) int {
	if v, ok := ts.Get(cat, sub, name); ok {
		return v.Perm
	}
	return 0
}

// Set writes one side of a trait slot, creating missing nested keys.
func (ts TraitStore) Set(cat shared.Category, sub shared.Subcategory, name string, value int, temp bool) {
	v := ts.ensure(cat, sub, name)
	if temp {
		v.Temp = value
	} else {
		v.Perm = value
	}
}

// SetBoth writes the same value into perm and temp, the normal shape of an XP
// purchase.
func (ts TraitStore) SetBoth(cat shared.Category, sub shared.Subcategory, name string, value int) {
	v := ts.ensure(cat, sub, name)
	v.Perm = value
	v.Temp = value
}

// Delete removes a trait slot entirely. Used for flaw buyoffs, which delete
// the flaw rather than setting it to 0.
func (ts TraitStore) Delete(cat shared.Category, sub shared.Subcategory, name string) {
	traits, ok := ts[cat][sub]
	if !ok {
		return
	}
	delete(traits, ts.canonicalKey(cat, sub, name))
}

// Names returns the trait names under a bucket, sorted for stable display.
func (ts TraitStore) Names(cat shared.Category, sub shared.Subcategory) []string {
	traits, ok := ts[cat][sub]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(traits))
	for k := range traits {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of the store.
func (ts TraitStore) Clone() TraitStore {
	out := make(TraitStore, len(ts))
	for cat, subs := range ts {
		out[cat] = make(map[shared.Subcategory]map[string]*TraitValue, len(subs))
		for sub, traits := range subs {
			out[cat][sub] = make(map[string]*TraitValue, len(traits))
			for name, v := range traits {
				copied := *v
				out[cat][sub][name] = &copied
			}
		}
	}
	return out
}

func (ts TraitStore) ensure(cat shared.Category, sub shared.Subcategory, name string) *TraitValue {
	if ts[cat] == nil {
		ts[cat] = make(map[shared.Subcategory]map[string]*TraitValue)
	}
	if ts[cat][sub] == nil {
		ts[cat][sub] = make(map[string]*TraitValue)
	}
	key := ts.canonicalKey(cat, sub, name)
	v, ok := ts[cat][sub][key]
	if !ok {
		v = &TraitValue{}
		ts[cat][sub][key] = v
	}
	return v
}
