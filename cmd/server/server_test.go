//go:build !integration

package main

import (
	"bytes"
	"net/http"
	"os"
	"syscall"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestServerApp(t *testing.T) {
	t.Run("should exit cleanly on stop", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(zerolog.SyncWriter(out))

		stop := make(chan os.Signal, 1)
		stop <- syscall.SIGTERM

		code := serverApp(&http.Server{Addr: "127.0.0.1:0"}, &log, stop)
		assert.Equal(t, 0, code)
		assert.NotContains(t, out.String(), "Server failed")
	})

	t.Run("should fail when the address can not be used", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := zerolog.New(zerolog.SyncWriter(out))

		code := serverApp(&http.Server{Addr: "127.0.0.1:-1"}, &log, make(chan os.Signal))
		assert.Equal(t, 1, code)
		assert.Contains(t, out.String(), "Server failed")
	})
}
