package oas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethods(t *testing.T) {
	assert.Equal(t, []Method{
		MethodGet, MethodPut, MethodPost, MethodDelete,
		MethodOptions, MethodHead, MethodPatch, MethodTrace,
	}, Methods())

	// The returned slice is a copy.
	ms := Methods()
	ms[0] = MethodTrace
	assert.Equal(t, MethodGet, Methods()[0])
}

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input string
		want  Method
		ok    bool
	}{
		{"get", MethodGet, true},
		{"GET", MethodGet, true},
		{"Delete", MethodDelete, true},
		{"oPtIoNs", MethodOptions, true},
		{"trace", MethodTrace, true},
		{"connect", "", false},
		{"", "", false},
		{" get", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseMethod(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMethodHTTPMethod(t *testing.T) {
	assert.Equal(t, "GET", MethodGet.HTTPMethod())
	assert.Equal(t, "OPTIONS", MethodOptions.HTTPMethod())
	assert.Equal(t, "patch", MethodPatch.String())
	assert.True(t, MethodHead.IsValid())
	assert.False(t, Method("GET").IsValid())
}
