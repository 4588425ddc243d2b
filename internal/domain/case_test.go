package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaseApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("empty status gets the default", func(t *testing.T) {
		t.Parallel()

		c := &Case{CustomerName: "Acme Traders"}
		c.ApplyDefaults()
		assert.Equal(t, DefaultCaseStatus, c.Status)
	})

	t.Run("explicit status is preserved", func(t *testing.T) {
		t.Parallel()

		c := &Case{CustomerName: "Acme Traders", Status: "Closed"}
		c.ApplyDefaults()
		assert.Equal(t, "Closed", c.Status)
	})

	t.Run("other fields are untouched", func(t *testing.T) {
		t.Parallel()

		c := &Case{CaseNo: "CRL-1/2025"}
		c.ApplyDefaults()
		assert.Equal(t, "CRL-1/2025", c.CaseNo)
		assert.Empty(t, c.CustomerName)
	})
}
