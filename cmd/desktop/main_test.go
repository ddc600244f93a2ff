package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunReturnsSetupErrors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	assert.ErrorContains(t, run(), "LOG_LEVEL")
}
