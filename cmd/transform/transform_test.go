package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitbucket.org/crgw/availability-pricer/internal/availability/ota"
	"bitbucket.org/crgw/availability-pricer/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("should price a document from stdin", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		code := run([]string{"transform"}, strings.NewReader(ota.Example), stdout, stderr)
		require.Equal(t, 0, code, stderr.String())

		var offers []schema.Offer
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &offers))
		assert.Equal(t, "USD", offers[0].Price.Currency)
		assert.Equal(t, "136.66", offers[0].Price.SellingPrice.Decimal().String())
	})

	t.Run("should price the built-in example", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		code := run([]string{"transform", "--example"}, strings.NewReader(""), stdout, stderr)
		assert.Equal(t, 0, code)
		assert.Contains(t, stdout.String(), `"market": "US"`)
	})

	t.Run("should read a file and apply a rules file", func(t *testing.T) {
		dir := t.TempDir()
		input := filepath.Join(dir, "request.xml")
		rulesFile := filepath.Join(dir, "rules.yaml")
		require.NoError(t, os.WriteFile(input, []byte(ota.Example), 0o600))
		require.NoError(t, os.WriteFile(rulesFile, []byte("markupPercentage: 10\n"), 0o600))

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		code := run([]string{"transform", "-i", input, "--rules", rulesFile}, strings.NewReader(""), stdout, stderr)
		require.Equal(t, 0, code, stderr.String())

		var offers []schema.Offer
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &offers))
		assert.Equal(t, "145.66", offers[0].Price.SellingPrice.Decimal().String())
		assert.Equal(t, "10", offers[0].Price.Markup.Decimal().String())
	})

	t.Run("should print an error document and exit with 1", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		code := run([]string{"transform"}, strings.NewReader("<AvailRQ>"), stdout, stderr)
		assert.Equal(t, 1, code)

		var document schema.ErrorDocument
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &document))
		assert.True(t, strings.HasPrefix(document.Error, "malformed availability request"))
	})

	t.Run("should exit with 2 for a missing input file", func(t *testing.T) {
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

		code := run([]string{"transform", "-i", filepath.Join(t.TempDir(), "missing.xml")}, strings.NewReader(""), stdout, stderr)
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "unable to read request")
		assert.Empty(t, stdout.String())
	})
}
