package browser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theapemachine/webtool/pkg/errors"
)

func TestSummarizeWithoutModel(t *testing.T) {
	summarizer := &Summarizer{}

	for _, text := range []string{"", "any text", "a much longer body of text"} {
		_, err := summarizer.Summarize(context.Background(), text, 200)
		require.Error(t, err)

		var cfgErr *errors.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Error(), "model")
	}
}

func TestToolSummarizeWithoutModel(t *testing.T) {
	tool := New(Config{})
	defer tool.Close()

	_, err := tool.Summarize(context.Background(), "any text", 0)

	var cfgErr *errors.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, 500, errors.HTTPStatus(err))
}
