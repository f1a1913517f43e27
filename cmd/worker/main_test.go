package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biztime/biztime/internal/app"
	biztimetest "github.com/biztime/biztime/testing"
)

func TestMain(m *testing.M) {
	biztimetest.Run(m)
}

func TestWorkerReturnsInTestMode(t *testing.T) {
	assert.True(t, app.InTestMode())
	assert.NotPanics(t, main)
}
