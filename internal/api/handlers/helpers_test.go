package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/aaravmahajanofficial/shopity/internal/utils/response"
	"github.com/stretchr/testify/require"
)

type envelope[T any] struct {
	Success bool                    `json:"success"`
	Data    T                       `json:"data"`
	Error   *response.ErrorResponse `json:"error"`
}

func decodeEnvelope[T any](t *testing.T, body *bytes.Buffer) envelope[T] {
	t.Helper()

	var env envelope[T]
	require.NoError(t, json.Unmarshal(body.Bytes(), &env))

	return env
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}
