package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.ncore.dev/ncore/internal/core/domain"
)

func TestStatCache_GetFile_CreatesOnFirstReference(t *testing.T) {
	c := domain.NewStatCache()

	f := c.GetFile("a.txt")
	assert.Equal(t, "a.txt", f.Path)
	assert.Equal(t, 0, f.Mtime)
	assert.Nil(t, f.Node)

	_, ok := c.Lookup("a.txt")
	assert.True(t, ok)
}

func TestStatCache_GetFile_ReturnsSameRecord(t *testing.T) {
	c := domain.NewStatCache()
	f1 := c.GetFile("a.txt")
	f2 := c.GetFile("a.txt")
	assert.Same(t, f1, f2)
}

func TestStatCache_Lookup_MissingIsFalse(t *testing.T) {
	c := domain.NewStatCache()
	_, ok := c.Lookup("missing.txt")
	assert.False(t, ok)
}

func TestFileRecord_Touch_UpdatesMtimeAndDirtiesNode(t *testing.T) {
	f := &domain.FileRecord{Path: "a.txt"}
	node := domain.NewNode(f)
	f.Node = node

	f.Touch(42)

	assert.Equal(t, 42, f.Mtime)
	assert.True(t, node.Dirty())
}

func TestFileRecord_Touch_NilNodeIsSafe(t *testing.T) {
	f := &domain.FileRecord{Path: "a.txt"}
	f.Touch(1)
	assert.Equal(t, 1, f.Mtime)
}
