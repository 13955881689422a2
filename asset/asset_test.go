package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetManager(t *testing.T) {
	am := NewManager()

	t.Run("GetRaw", func(t *testing.T) {
		data, err := am.GetRaw("advice.yaml")
		assert.NoError(t, err)
		assert.Contains(t, string(data), "heavy_dependencies")

		_, err = am.GetRaw("non_existent.txt")
		assert.Error(t, err)

		_, err = am.GetRaw("")
		assert.Error(t, err)
	})
}
