package model

import "strings"

// List fields (prerequisites, learning outcomes, skills, interests) are
// edited as an ordered sequence of free-text rows. The UI posts explicit
// transitions against the sequence; ApplyListOp is the single reducer that
// implements them so every form shares identical semantics.

// ListOpKind enumerates the supported list-field transitions.
type ListOpKind string

const (
	// ListOpAppend adds an empty row at the end of the sequence.
	ListOpAppend ListOpKind = "append"
	// ListOpSet replaces the value of the row at Index.
	ListOpSet ListOpKind = "set"
	// ListOpRemove deletes the row at Index, preserving the order of the rest.
	ListOpRemove ListOpKind = "remove"
)

// ListOp is one transition against a list field.
type ListOp struct {
	Kind  ListOpKind
	Index int
	Value string
}

// ApplyListOp returns the sequence after applying op. The input slice is not
// mutated. Out-of-range indexes leave the sequence unchanged rather than
// panicking, since indexes arrive from the client.
func ApplyListOp(items []string, op ListOp) []string {
	switch op.Kind {
	case ListOpAppend:
		out := make([]string, len(items)+1)
		copy(out, items)
		return out
	case ListOpSet:
		if op.Index < 0 || op.Index >= len(items) {
			return items
		}
		out := make([]string, len(items))
		copy(out, items)
		out[op.Index] = op.Value
		return out
	case ListOpRemove:
		if op.Index < 0 || op.Index >= len(items) {
			return items
		}
		out := make([]string, 0, len(items)-1)
		out = append(out, items[:op.Index]...)
		return append(out, items[op.Index+1:]...)
	default:
		return items
	}
}

// CompactList drops blank entries and trims the rest. Called at submission
// time only, so a freshly appended row survives editing while empty.
func CompactList(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
