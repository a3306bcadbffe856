package calendrier_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tunlex/delais/internal/calendrier"
)

func jour(annee int, mois time.Month, j int) time.Time {
	return time.Date(annee, mois, j, 0, 0, 0, 0, time.UTC)
}

func TestEstJourFerie_Fixes(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
	}{
		{"Jour de l'An", jour(2025, time.January, 1)},
		{"Fête de la Révolution et de la Jeunesse", jour(2025, time.January, 14)},
		{"Fête de l'Indépendance", jour(2025, time.March, 20)},
		{"Journée des Martyrs", jour(2025, time.April, 9)},
		{"Fête du Travail", jour(2025, time.May, 1)},
		{"Fête de la République", jour(2025, time.July, 25)},
		{"Fête de la Femme", jour(2025, time.August, 13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, calendrier.EstJourFerie(tt.date))

			nom, ok := calendrier.NomJourFerie(tt.date)
			require.True(t, ok)
			assert.Equal(t, tt.name, nom)

			// Fixed holidays recur every year, including unconfigured ones.
			m, j := tt.date.Month(), tt.date.Day()
			assert.True(t, calendrier.EstJourFerie(jour(2031, m, j)),
				"fixed holiday must recur in any year")
		})
	}
}

func TestEstJourFerie_Mobiles(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
	}{
		{
			name:  "Aïd el-Fitr 2025 (30-31 mars)",
			dates: []time.Time{jour(2025, time.March, 30), jour(2025, time.March, 31)},
		},
		{
			name: "Aïd el-Idha 2025 (06-08 juin)",
			dates: []time.Time{
				jour(2025, time.June, 6), jour(2025, time.June, 7), jour(2025, time.June, 8),
			},
		},
		{
			name:  "Nouvel An de l'Hégire 2025 (27 juin)",
			dates: []time.Time{jour(2025, time.June, 27)},
		},
		{
			name:  "Mouled 2025 (5 septembre)",
			dates: []time.Time{jour(2025, time.September, 5)},
		},
		{
			name:  "Aïd el-Fitr 2026 (20-21 mars)",
			dates: []time.Time{jour(2026, time.March, 20), jour(2026, time.March, 21)},
		},
		{
			name: "Aïd el-Idha 2026 (27-29 mai)",
			dates: []time.Time{
				jour(2026, time.May, 27), jour(2026, time.May, 28), jour(2026, time.May, 29),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, d := range tt.dates {
				assert.Truef(t, calendrier.EstJourFerie(d), "%s should be a holiday", d.Format("2006-01-02"))
			}
		})
	}
}

func TestEstJourFerie_JourNormal(t *testing.T) {
	assert.False(t, calendrier.EstJourFerie(jour(2025, time.February, 5)), "ordinary Wednesday")
	assert.False(t, calendrier.EstJourFerie(jour(2025, time.June, 9)), "day after Aïd el-Idha 2025")
}

func TestEstJourFerie_AnneeNonConfiguree(t *testing.T) {
	// 2027 has no moveable table entry; moveable observances are unknown,
	// fixed holidays still apply.
	assert.False(t, calendrier.EstJourFerie(jour(2027, time.April, 15)))
	assert.True(t, calendrier.EstJourFerie(jour(2027, time.May, 1)))

	_, ok := calendrier.NomJourFerie(jour(2027, time.April, 15))
	assert.False(t, ok)
}

func TestEstJourFerie_IgnoreHeure(t *testing.T) {
	// A timestamp late in the day is still the same holiday.
	d := time.Date(2025, time.March, 30, 23, 45, 12, 0, time.UTC)
	assert.True(t, calendrier.EstJourFerie(d))
}

func TestJoursFeriesAnnee(t *testing.T) {
	feries := calendrier.JoursFeriesAnnee(2025)

	// 7 fixed + Fitr (2) + Idha (3) + Hégire (1) + Mouled (1).
	require.Len(t, feries, 14)

	assert.Equal(t, jour(2025, time.January, 1), feries[0].Date)
	assert.Equal(t, "Jour de l'An", feries[0].Nom)
	assert.Equal(t, jour(2025, time.September, 5), feries[len(feries)-1].Date)
	assert.Equal(t, "Mouled", feries[len(feries)-1].Nom)

	for i := 1; i < len(feries); i++ {
		assert.True(t, feries[i-1].Date.Before(feries[i].Date), "holidays must be sorted by date")
	}
}

func TestJoursFeriesAnnee_SansMobiles(t *testing.T) {
	feries := calendrier.JoursFeriesAnnee(2030)
	assert.Len(t, feries, 7, "only the fixed holidays are known for 2030")
}

func TestFeriesMobilesConnues(t *testing.T) {
	annees := calendrier.FeriesMobilesConnues()
	assert.Contains(t, annees, 2025)
	assert.Contains(t, annees, 2026)
	assert.NotContains(t, annees, 2027)
}
