package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSkillStatus(t *testing.T) {
	for _, valid := range []string{"To Learn", "In Progress", "Learned"} {
		status, err := ParseSkillStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(status))
	}

	for _, invalid := range []string{"", "to learn", "TO LEARN", "Mastered", "learned "} {
		_, err := ParseSkillStatus(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}
