package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunlex/delais/internal/config"
	"github.com/tunlex/delais/internal/locale"
)

func TestNew_LanguesDetectees(t *testing.T) {
	tr := locale.New(config.DefaultLanguage)
	for _, lang := range config.SupportedLanguages {
		assert.Contains(t, tr.Supported, lang)
	}
}

func TestMsg(t *testing.T) {
	fr := locale.New("fr")
	assert.Equal(t, "Échéance", fr.Msg(config.TKeyEcheance))
	assert.Equal(t, "Dépassé", fr.Msg(config.TKeyUrgDepasse))

	en := locale.New("en")
	assert.Equal(t, "Deadline", en.Msg(config.TKeyEcheance))
	assert.Equal(t, "Overdue", en.Msg(config.TKeyUrgDepasse))
}

func TestMsg_CleInconnue(t *testing.T) {
	tr := locale.New("fr")
	assert.Equal(t, "nope_missing", tr.Msg("nope_missing"), "unknown keys fall back to the key itself")
}

func TestMsg_LangueInconnue(t *testing.T) {
	// An unsupported language falls back to the default locale.
	tr := locale.New("de")
	assert.Equal(t, "Échéance", tr.Msg(config.TKeyEcheance))
}

func TestMsgData(t *testing.T) {
	fr := locale.New("fr")
	msg := fr.MsgData(config.TKeyEvtSummary, map[string]any{"Titre": "Appel"})
	require.Equal(t, "Échéance : Appel", msg)

	msg = fr.MsgData(config.TKeyEvtReminder, map[string]any{"Titre": "Appel", "Jours": 7})
	assert.Equal(t, "J-7 : Appel", msg)
}
