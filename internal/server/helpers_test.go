package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeParam(t *testing.T) {
	assert.Equal(t, "ID", humanizeParam("id"))
	assert.Equal(t, "user ID", humanizeParam("userId"))
	assert.Equal(t, "comment ID", humanizeParam("commentId"))
	assert.Equal(t, "conversation ID", humanizeParam("conversationId"))
	assert.Equal(t, "slug", humanizeParam("slug"))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2, 3}, paginate(items, Pagination{Limit: 3}))
	assert.Equal(t, []int{4, 5}, paginate(items, Pagination{Limit: 3, Offset: 3}))
	assert.Empty(t, paginate(items, Pagination{Limit: 3, Offset: 10}))
}
