package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SCONTO10", NormalizeCouponCode("  sconto10 "))
	assert.Equal(t, "ESTATE5", NormalizeCouponCode("Estate5"))
	assert.Equal(t, "", NormalizeCouponCode("   "))
}
