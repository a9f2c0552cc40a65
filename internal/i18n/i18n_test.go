package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/HagemZ/lisk-builders-challange-cryptopoke-sub000/internal/i18n"
)

func TestLocalizer(t *testing.T) {
	bundle, err := i18n.NewBundle(language.English)
	require.NoError(t, err)
	assert.ElementsMatch(t, []language.Tag{language.English, language.German}, bundle.Languages())

	en := bundle.Localizer("en")
	assert.Equal(t, "Capture failed: target chance 40% but rolled 12.",
		en.Message("capture-missed", map[string]interface{}{"Chance": 40, "Roll": 12}))
	assert.Equal(t, "Please connect your wallet to continue.", en.Message("wallet-not-connected", nil))

	de := bundle.Localizer("de-DE", "en")
	assert.Equal(t, "Du bist dieser Runde bereits beigetreten.", de.Message("already-joined", nil))

	fallback := bundle.Localizer("fr")
	assert.Equal(t, "Round is full. Please join another round.", fallback.Message("round-full", nil))

	assert.Equal(t, "no-such-message", en.Message("no-such-message", nil))
}
