package record

import (
	"encoding/json"
	"strings"
)

// IDList is an ordered set of ids carried on the wire as a comma-joined string.
// Order is preserved and duplicates keep their first position.
type IDList []string

// ParseIDList splits a comma-joined id field. Blank members are dropped.
func ParseIDList(raw string) IDList {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make(IDList, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

// Contains reports whether id is a member of the list.
func (l IDList) Contains(id string) bool {
	if id == "" {
		return false
	}
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// First returns the first id, or "" for an empty list.
func (l IDList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// String joins the list back into its wire form.
func (l IDList) String() string {
	return strings.Join(l, ",")
}

// MarshalJSON encodes the list in its comma-joined wire form.
func (l IDList) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

