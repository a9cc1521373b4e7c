package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDemoGradients pins the demo expression's value and gradients.
func TestDemoGradients(t *testing.T) {
	y, dyda, dydb := demoGradients(230.3, 33.2)

	av, bv := 230.3, 33.2
	wantY := (av/bv - av) * (bv/av + av + bv) * (av - bv)
	assert.InDelta(t, wantY, y, 1e-6)
	assert.InDelta(t, -153284.83150602411, dyda, 1e-6)
	assert.InDelta(t, 3815.0389441500993, dydb, 1e-6)
}
