package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizeRendersEnglishMessage(t *testing.T) {
	bundle, err := NewI18nBundle()
	require.NoError(t, err)

	schema, cerr := Compile(`{"type":"integer","maximum":10}`)
	require.Nil(t, cerr)

	verr := Validate(schema, "20")
	require.NotNil(t, verr)

	localizer := bundle.NewLocalizer("en")
	localized := verr.Localize(localizer)
	require.Len(t, localized.Errors, 1)
	assert.NotEmpty(t, localized.Errors[0].Message)
}
