package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_ReturnsEveryTipInOrder(t *testing.T) {
	list := All()
	require.Len(t, list, 6)
	assert.Equal(t, "Start small", list[0].Title)
	assert.Equal(t, "Try open awareness", list[5].Title)
	for _, tip := range list {
		assert.NotEmpty(t, tip.Body, tip.Title)
		assert.NotEmpty(t, tip.Tags, tip.Title)
	}
}

func TestAll_ReturnsCopies(t *testing.T) {
	list := All()
	list[0].Title = "changed"
	list[0].Tags[0] = "changed"

	fresh := All()
	assert.Equal(t, "Start small", fresh[0].Title)
	assert.Equal(t, "beginner", fresh[0].Tags[0])
}

func TestWithTag(t *testing.T) {
	bell := WithTag(" Bell ")
	require.Len(t, bell, 1)
	assert.Equal(t, "Use the bell as a reset", bell[0].Title)

	assert.Empty(t, WithTag("unknown"))
	assert.Len(t, WithTag(""), 6)
}

func TestTags_SortedAndDistinct(t *testing.T) {
	tags := Tags()
	assert.IsIncreasing(t, tags)
	assert.Contains(t, tags, "breath")
	assert.Len(t, tags, 11)
}
