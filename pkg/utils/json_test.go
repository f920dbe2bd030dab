package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	assert.NotPanics(t, func() { PrettyJson(map[string]int{"a": 1}) })

	out := PrettyJson(map[string]any{"b": []int{2}, "a": 1})
	assert.JSONEq(t, `{"a":1,"b":[2]}`, out)
	assert.Contains(t, out, "\n  \"a\": 1")
	assert.NotContains(t, out, "\t")

	assert.Contains(t, PrettyJson([]byte(`{"roi":150}`)), `"roi": 150`)
}
