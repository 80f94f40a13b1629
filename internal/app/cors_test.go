package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "fullsco.com", originHost("https://fullsco.com"))
	assert.Equal(t, "fullsco.com:8443", originHost("https://fullsco.com:8443"))
	assert.Equal(t, "localhost:3000", originHost("http://localhost:3000"))
	assert.Equal(t, "not a url", originHost("not a url"))
}

func TestOriginAllowed(t *testing.T) {
	patterns := []string{"fullsco.com", "*.fullsco.com", "localhost:*"}

	assert.True(t, originAllowed(patterns, "fullsco.com"))
	assert.True(t, originAllowed(patterns, "admin.fullsco.com"))
	assert.True(t, originAllowed(patterns, "localhost:3000"))
	assert.False(t, originAllowed(patterns, "evil.com"))
	assert.False(t, originAllowed(patterns, "fullsco.com.evil.com"))
	assert.False(t, originAllowed(nil, "fullsco.com"))
}
