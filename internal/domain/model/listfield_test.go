package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyListOpAppend(t *testing.T) {
	got := ApplyListOp([]string{"HTML", "CSS"}, ListOp{Kind: ListOpAppend})
	assert.Equal(t, []string{"HTML", "CSS", ""}, got)
}

func TestApplyListOpSet(t *testing.T) {
	items := []string{"HTML", "", "JS"}
	got := ApplyListOp(items, ListOp{Kind: ListOpSet, Index: 1, Value: "CSS"})
	assert.Equal(t, []string{"HTML", "CSS", "JS"}, got)
	// input is not mutated
	assert.Equal(t, []string{"HTML", "", "JS"}, items)
}

func TestApplyListOpSetOutOfRange(t *testing.T) {
	items := []string{"HTML"}
	assert.Equal(t, items, ApplyListOp(items, ListOp{Kind: ListOpSet, Index: 5, Value: "x"}))
	assert.Equal(t, items, ApplyListOp(items, ListOp{Kind: ListOpSet, Index: -1, Value: "x"}))
}

func TestApplyListOpRemove(t *testing.T) {
	got := ApplyListOp([]string{"a", "b", "c"}, ListOp{Kind: ListOpRemove, Index: 0})
	assert.Equal(t, []string{"b", "c"}, got)
}

// Add a row, edit it by index, then remove a different row: the edited value
// survives and ordering is preserved.
func TestApplyListOpEditThenRemoveOther(t *testing.T) {
	items := []string{"Basic math"}
	items = ApplyListOp(items, ListOp{Kind: ListOpAppend})
	items = ApplyListOp(items, ListOp{Kind: ListOpSet, Index: 1, Value: "Prior coding experience"})
	items = ApplyListOp(items, ListOp{Kind: ListOpRemove, Index: 0})
	assert.Equal(t, []string{"Prior coding experience"}, items)
}

func TestCompactList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, CompactList([]string{" a ", "", "b", "   "}))
	assert.Nil(t, CompactList(nil))
	assert.Nil(t, CompactList([]string{"", "  "}))
}
