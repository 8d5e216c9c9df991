package schema_test

import (
	"errors"
	"testing"

	"bitbucket.org/crgw/availability-pricer/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal(t *testing.T) {
	t.Run("should indent by four spaces without a trailing newline", func(t *testing.T) {
		content, err := schema.Marshal(schema.ErrorDocument{Error: "failed"})
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"error\": \"failed\"\n}", string(content))
	})

	t.Run("should keep markup characters readable", func(t *testing.T) {
		document := schema.NewErrorDocument(errors.New("element <Currency> closed by </Nationality> & more"))

		content, err := schema.Marshal(document)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"element <Currency> closed by </Nationality> & more"`)
		assert.NotContains(t, string(content), `\u003c`)
	})
}
