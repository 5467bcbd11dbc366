package tbf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagNameHash(t *testing.T) {
	// Reference values for the restricted-alphabet FNV-1a schedule.
	assert.Equal(t, uint32(0x040c5b8c), TagNameHash("a"))
	assert.Equal(t, uint32(0x65dc3337), TagNameHash("foo"))
	assert.Equal(t, uint32(0x60fee416), TagNameHash("user_name"))
	assert.Equal(t, uint32(2166136261), TagNameHash(""))
}

func TestTagNameHashCaseInsensitive(t *testing.T) {
	assert.Equal(t, TagNameHash("foo"), TagNameHash("FOO"))
	assert.Equal(t, TagNameHash("user_name"), TagNameHash("USER_NAME"))
	assert.Equal(t, TagNameHash("userName"), TagNameHash("username"))
}

func TestNewTag(t *testing.T) {
	tag, err := NewTag("foo")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3337), tag.ID())
	assert.Equal(t, "foo", tag.Name())
	assert.True(t, tag.HasID())
}

func TestNewTagValidation(t *testing.T) {
	_, err := NewTag("")
	assert.ErrorIs(t, err, ErrEmptyTagName)

	_, err = NewTag(strings.Repeat("x", 256))
	assert.ErrorIs(t, err, ErrTagNameTooLong)

	_, err = NewTag("has space")
	assert.ErrorIs(t, err, ErrInvalidTagName)

	_, err = NewTag("dash-ed")
	assert.ErrorIs(t, err, ErrInvalidTagName)

	tag, err := NewTag(strings.Repeat("x", 255))
	require.NoError(t, err)
	assert.Len(t, tag.Name(), 255)
}

func TestNewTagWithID(t *testing.T) {
	tag, err := NewTagWithID(42, "foo")
	require.NoError(t, err)
	assert.Equal(t, uint16(42), tag.ID())
	assert.Equal(t, "foo", tag.Name())

	_, err = NewTagWithID(0, "foo")
	assert.ErrorIs(t, err, ErrZeroTagID)
}

func TestMustTagPanics(t *testing.T) {
	assert.Panics(t, func() { MustTag("not valid!") })
	assert.NotPanics(t, func() { MustTag("valid_1") })
}

func TestTagEqual(t *testing.T) {
	// By id when both sides have one.
	assert.True(t, MustTag("foo").Equal(MustTag("FOO")))
	assert.True(t, MustTag("foo").Equal(TagWithID(0x3337)))
	assert.False(t, MustTag("foo").Equal(MustTag("bar")))

	// By name when either side lacks an id.
	assert.True(t, TagWithName("foo").Equal(MustTag("foo")))
	assert.False(t, TagWithName("foo").Equal(TagWithName("FOO")))
}
