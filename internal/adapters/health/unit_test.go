package health_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gimmisn/internal/adapters/health"
)

func TestUnit(t *testing.T) {
	u := health.New()
	require.NoError(t, u.MakeError())

	u.Fail("metrics flush")
	err := u.MakeError()
	require.Error(t, err)
	assert.ErrorContains(t, err, health.ErrRunUnhealthy.Error())
}
