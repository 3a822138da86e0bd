package domain

import (
	"slices"
	"strings"
)

// TagConstraints is reported when a tag name is not alphanumeric.
const TagConstraints = "Tags names should be alphanumeric"

// Tag is a free label attached to an ingredient.
type Tag struct {
	tagName string
}

// IsValidTagName reports whether raw is a non-empty alphanumeric word.
func IsValidTagName(raw string) bool {
	return satisfies(raw, "alphanum")
}

// NewTag validates raw and wraps it.
func NewTag(raw string) (Tag, error) {
	if !IsValidTagName(raw) {
		return Tag{}, NewConstraintError(FieldTags, TagConstraints)
	}

	return Tag{tagName: raw}, nil
}

// MustTag is like NewTag but panics on invalid input.
func MustTag(raw string) Tag {
	return must(NewTag(raw))
}

// Name returns the tag's label.
func (t Tag) Name() string { return t.tagName }

func (t Tag) String() string { return "[" + t.tagName + "]" }

// Tags is a set of tags. Insertion order is not kept.
type Tags struct {
	set map[Tag]struct{}
}

// NewTags builds a set from tags, collapsing duplicates.
func NewTags(tags ...Tag) Tags {
	set := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}

	return Tags{set: set}
}

// Len returns the number of distinct tags.
func (ts Tags) Len() int { return len(ts.set) }

// Contains reports whether t is in the set.
func (ts Tags) Contains(t Tag) bool {
	_, ok := ts.set[t]
	return ok
}

// Slice returns the tags sorted by name.
func (ts Tags) Slice() []Tag {
	out := make([]Tag, 0, len(ts.set))
	for t := range ts.set {
		out = append(out, t)
	}

	slices.SortFunc(out, func(a, b Tag) int {
		return strings.Compare(a.tagName, b.tagName)
	})

	return out
}

// Equal reports whether both sets hold the same tags.
func (ts Tags) Equal(other Tags) bool {
	if ts.Len() != other.Len() {
		return false
	}

	for t := range ts.set {
		if !other.Contains(t) {
			return false
		}
	}

	return true
}
