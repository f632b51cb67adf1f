package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		"'query' is required for 'search' action",
		(&ValidationError{Field: "query", Action: "search"}).Error(),
	)
	assert.Equal(t,
		"'url' is required",
		(&ValidationError{Field: "url"}).Error(),
	)
	assert.Equal(t,
		"unknown action: dance",
		(&UnknownActionError{Action: "dance"}).Error(),
	)
	assert.Equal(t,
		"element '#missing' not found on page",
		(&NavigationError{Selector: "#missing"}).Error(),
	)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, HTTPStatus(&ValidationError{Field: "query", Action: "search"}))
	assert.Equal(t, 400, HTTPStatus(&UnknownActionError{Action: "dance"}))
	assert.Equal(t, 500, HTTPStatus(&ConfigurationError{Msg: "no model"}))
	assert.Equal(t, 500, HTTPStatus(&NavigationError{Selector: "#x"}))
	assert.Equal(t, 500, HTTPStatus(stderrors.New("anything else")))
}

func TestInternalWrapping(t *testing.T) {
	cause := stderrors.New("boom")

	err := Internal(cause, "launch failed")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "launch failed")
	assert.Equal(t, 500, HTTPStatus(err))

	assert.Nil(t, Internal(nil, "nothing happened"))
}
