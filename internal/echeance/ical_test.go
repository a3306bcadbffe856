package echeance_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunlex/delais/internal/echeance"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func generator(now time.Time) *echeance.Generator {
	return &echeance.Generator{Clock: MockClock{CurrentTime: now}}
}

func TestGenerate_EvenementParEcheance(t *testing.T) {
	now := time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC)

	ech, err := echeance.NewEcheance("Appel jugement n°1234", jour(2025, time.February, 18), 15,
		echeance.ModeJoursCalendaires, true)
	require.NoError(t, err)

	feed, echues, err := generator(now).Generate([]echeance.Echeance{ech})
	require.NoError(t, err)
	assert.Equal(t, 0, echues, "a future deadline is not due yet")

	ics := string(feed)
	assert.Contains(t, ics, "BEGIN:VCALENDAR")
	assert.Contains(t, ics, "BEGIN:VEVENT")
	assert.Contains(t, ics, "SUMMARY:Appel jugement n°1234")
	assert.Contains(t, ics, "X-WR-CALNAME")
	// All-day event on the due date.
	assert.Contains(t, ics, ech.Date.Format("20060102"))
}

func TestGenerate_AlarmesSelonRappelsRestants(t *testing.T) {
	now := time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC)

	lointaine := echeance.Echeance{Titre: "Conclusions", Date: jour(2025, time.March, 5)}

	feed, _, err := generator(now).Generate([]echeance.Echeance{lointaine})
	require.NoError(t, err)

	// 28 days out: all four checkpoints pending.
	assert.Equal(t, 4, strings.Count(string(feed), "BEGIN:VALARM"))
	assert.Contains(t, string(feed), "TRIGGER:-P15D")
	assert.Contains(t, string(feed), "TRIGGER:-P1D")

	// One day out: only J-1 remains.
	proche := lointaine
	proche.Date = jour(2025, time.February, 6)
	feed, _, err = generator(now).Generate([]echeance.Echeance{proche})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(feed), "BEGIN:VALARM"))
	assert.Contains(t, string(feed), "TRIGGER:-P1D")
}

func TestGenerate_CompteEchues(t *testing.T) {
	now := time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC)

	duJour := echeance.Echeance{Titre: "Audience", Date: jour(2025, time.February, 5)}
	passee := echeance.Echeance{Titre: "Opposition", Date: jour(2025, time.January, 20)}
	future := echeance.Echeance{Titre: "Pourvoi", Date: jour(2025, time.June, 1)}

	_, echues, err := generator(now).Generate([]echeance.Echeance{duJour, passee, future})
	require.NoError(t, err)
	assert.Equal(t, 2, echues, "due today and overdue both count")
}

func TestGenerate_FluxVide(t *testing.T) {
	now := time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC)

	feed, echues, err := generator(now).Generate(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, echues)

	// The stub is still a valid VCALENDAR so clients never see an empty body.
	assert.Contains(t, string(feed), "BEGIN:VCALENDAR")
	assert.NotContains(t, string(feed), "BEGIN:VEVENT")
}

func TestGenerate_UIDDeterministe(t *testing.T) {
	now := time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC)
	ech := echeance.Echeance{Titre: "Appel", Date: jour(2025, time.March, 5)}

	premier, _, err := generator(now).Generate([]echeance.Echeance{ech})
	require.NoError(t, err)
	second, _, err := generator(now).Generate([]echeance.Echeance{ech})
	require.NoError(t, err)

	// Subscribed clients must not see duplicated events across refreshes.
	uid1 := ligneUID(t, string(premier))
	uid2 := ligneUID(t, string(second))
	assert.Equal(t, uid1, uid2)

	// A different due date yields a different UID.
	autre := ech
	autre.Date = jour(2025, time.March, 6)
	troisieme, _, err := generator(now).Generate([]echeance.Echeance{autre})
	require.NoError(t, err)
	assert.NotEqual(t, uid1, ligneUID(t, string(troisieme)))
}

// ligneUID extracts the UID property line from an encoded feed.
func ligneUID(t *testing.T, ics string) string {
	t.Helper()
	for _, line := range strings.Split(ics, "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			return line
		}
	}
	t.Fatal("no UID line in feed")
	return ""
}

func TestGenerate_SummaryInjection(t *testing.T) {
	now := time.Date(2025, time.February, 5, 10, 0, 0, 0, time.UTC)

	gen := generator(now)
	gen.FormatSummary = func(titre string) string {
		return "Échéance : " + titre
	}
	gen.FormatReminder = func(titre string, jours int) string {
		return fmt.Sprintf("J-%d : %s", jours, titre)
	}

	ech := echeance.Echeance{Titre: "Appel", Date: jour(2025, time.March, 5)}
	feed, _, err := gen.Generate([]echeance.Echeance{ech})
	require.NoError(t, err)

	ics := string(feed)
	assert.Contains(t, ics, "Échéance : Appel")
	assert.Contains(t, ics, "J-15 : Appel")
}
