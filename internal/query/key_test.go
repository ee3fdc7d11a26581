package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slatehq/slate/internal/query"
)

func TestNewKeyWithoutParams(t *testing.T) {
	assert.Equal(t, query.Key("projects"), query.NewKey("projects", nil))
	assert.Equal(t, query.Key("projects"), query.NewKey("projects", map[string]string{}))
}

func TestNewKeySortsParams(t *testing.T) {
	a := query.NewKey("tasks", map[string]string{"status": "done", "assignee_id": "4"})
	b := query.NewKey("tasks", map[string]string{"assignee_id": "4", "status": "done"})

	assert.Equal(t, a, b)
	assert.Equal(t, query.Key("tasks?assignee_id=4&status=done"), a)
}

func TestNewKeySeparatesDistinctFilters(t *testing.T) {
	a := query.NewKey("tasks", map[string]string{"status": "done"})
	b := query.NewKey("tasks", map[string]string{"status": "todo"})
	assert.NotEqual(t, a, b)
}
