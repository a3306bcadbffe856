// Package calendrier answers "is this date a working day?" under Tunisian
// judicial rules. It knows the fixed public holidays (recurring every year),
// the moveable Islamic-calendar holidays (a finite, per-year table), the
// Saturday/Sunday weekend, and the judicial recess (August 1 to September 15).
//
// All inputs are plain calendar dates: any time-of-day component on a
// time.Time argument is ignored. Years absent from the moveable table are not
// an error; only the fixed holidays remain detectable for them.
//
// Basic usage with package-level functions:
//
//	t := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
//	calendrier.EstJourFerie(t)            // true (Fête de la Révolution)
//	calendrier.EstJourOuvrable(t, true)   // false
//
// For an isolated table extended with additional years, create a Calendrier
// instance and feed it a YAML file via ChargerFeriesMobiles.
package calendrier

import (
	"sort"
	"sync"
	"time"
)

// JourFerie represents a single public holiday occurrence.
type JourFerie struct {
	Date time.Time // The date of the holiday (midnight UTC).
	Nom  string    // The French name of the holiday (e.g., "Fête du Travail").
}

// ferieFixe is a holiday recurring every year on the same month and day.
type ferieFixe struct {
	mois time.Month
	jour int
	nom  string
}

// feriesFixes lists the Tunisian public holidays that fall on the same
// Gregorian date every year.
var feriesFixes = []ferieFixe{
	{time.January, 1, "Jour de l'An"},
	{time.January, 14, "Fête de la Révolution et de la Jeunesse"},
	{time.March, 20, "Fête de l'Indépendance"},
	{time.April, 9, "Journée des Martyrs"},
	{time.May, 1, "Fête du Travail"},
	{time.July, 25, "Fête de la République"},
	{time.August, 13, "Fête de la Femme"},
}

// plageMobile is a moveable holiday observance spanning one or more
// consecutive dates within a single year.
type plageMobile struct {
	debut date
	fin   date
	nom   string
}

// feriesMobiles maps a year to its moveable Islamic-calendar observances.
// The lunar calendar shifts against the Gregorian one, so these dates are
// announced per year and compiled here; years not yet announced are simply
// absent. Extend at runtime with ChargerFeriesMobiles.
var feriesMobiles = map[int][]plageMobile{
	2025: {
		{date{2025, time.March, 30}, date{2025, time.March, 31}, "Aïd el-Fitr"},
		{date{2025, time.June, 6}, date{2025, time.June, 8}, "Aïd el-Idha"},
		{date{2025, time.June, 27}, date{2025, time.June, 27}, "Nouvel An de l'Hégire"},
		{date{2025, time.September, 5}, date{2025, time.September, 5}, "Mouled"},
	},
	2026: {
		{date{2026, time.March, 20}, date{2026, time.March, 21}, "Aïd el-Fitr"},
		{date{2026, time.May, 27}, date{2026, time.May, 29}, "Aïd el-Idha"},
	},
}

// Calendrier holds the holiday data and supports extending the moveable
// table with additional years. Create one with [New]. All methods are safe
// for concurrent use; the built-in tables are never mutated.
type Calendrier struct {
	mu      sync.RWMutex
	mobiles map[int][]plageMobile
}

// New creates a Calendrier backed by the built-in Tunisian holiday tables.
func New() *Calendrier {
	return &Calendrier{
		mobiles: make(map[int][]plageMobile),
	}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// lookup returns the holiday name for a date, checking fixed holidays first,
// then the built-in moveable table, then per-instance extensions.
func (c *Calendrier) lookup(d date) (string, bool) {
	for _, f := range feriesFixes {
		if d.mois == f.mois && d.jour == f.jour {
			return f.nom, true
		}
	}
	for _, p := range feriesMobiles[d.annee] {
		if d.dansPlage(p.debut, p.fin) {
			return p.nom, true
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.mobiles[d.annee] {
		if d.dansPlage(p.debut, p.fin) {
			return p.nom, true
		}
	}
	return "", false
}

// EstJourFerie reports whether the given date is a Tunisian public holiday,
// fixed or moveable. For years absent from the moveable table only the fixed
// holidays are detected.
func (c *Calendrier) EstJourFerie(t time.Time) bool {
	_, ok := c.lookup(dateDe(t))
	return ok
}

// NomJourFerie returns the holiday name for the given date. The boolean is
// false when the date is not a holiday.
func (c *Calendrier) NomJourFerie(t time.Time) (string, bool) {
	return c.lookup(dateDe(t))
}

// JoursFeriesAnnee returns all known holidays of the given year, sorted by
// date. Moveable observances contribute one entry per covered day.
func (c *Calendrier) JoursFeriesAnnee(annee int) []JourFerie {
	var result []JourFerie
	for _, f := range feriesFixes {
		d := date{annee: annee, mois: f.mois, jour: f.jour}
		result = append(result, JourFerie{Date: d.toTime(), Nom: f.nom})
	}

	appendPlages := func(plages []plageMobile) {
		for _, p := range plages {
			for cur := p.debut.toTime(); !p.fin.toTime().Before(cur); cur = cur.AddDate(0, 0, 1) {
				result = append(result, JourFerie{Date: cur, Nom: p.nom})
			}
		}
	}
	appendPlages(feriesMobiles[annee])

	c.mu.RLock()
	appendPlages(c.mobiles[annee])
	c.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// FeriesMobilesConnues returns the years covered by the moveable table,
// built-in and extensions merged, in ascending order. Callers use it to
// detect a stale data set before trusting long-range computations.
func (c *Calendrier) FeriesMobilesConnues() []int {
	seen := make(map[int]bool, len(feriesMobiles))
	for a := range feriesMobiles {
		seen[a] = true
	}

	c.mu.RLock()
	for a := range c.mobiles {
		seen[a] = true
	}
	c.mu.RUnlock()

	annees := make([]int, 0, len(seen))
	for a := range seen {
		annees = append(annees, a)
	}
	sort.Ints(annees)
	return annees
}

// --- Package-level convenience functions ---

// EstJourFerie reports whether the given date is a public holiday.
func EstJourFerie(t time.Time) bool { return defaultCal.EstJourFerie(t) }

// NomJourFerie returns the holiday name for the given date, if any.
func NomJourFerie(t time.Time) (string, bool) { return defaultCal.NomJourFerie(t) }

// JoursFeriesAnnee returns all known holidays of the given year, sorted by date.
func JoursFeriesAnnee(annee int) []JourFerie { return defaultCal.JoursFeriesAnnee(annee) }

// FeriesMobilesConnues returns the years covered by the moveable table.
func FeriesMobilesConnues() []int { return defaultCal.FeriesMobilesConnues() }
