package calendrier

import "time"

// Judicial recess bounds, identical for every year (no per-year configuration).
const (
	vacancesDebutMois = time.August
	vacancesDebutJour = 1
	vacancesFinMois   = time.September
	vacancesFinJour   = 15
)

// EstWeekend reports whether the given date falls on a Saturday or a Sunday.
func EstWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// EstVacancesJudiciaires reports whether the given date falls within the
// judicial recess, August 1 to September 15 inclusive, of its own year.
func EstVacancesJudiciaires(t time.Time) bool {
	d := dateDe(t)
	debut := date{annee: d.annee, mois: vacancesDebutMois, jour: vacancesDebutJour}
	fin := date{annee: d.annee, mois: vacancesFinMois, jour: vacancesFinJour}
	return d.dansPlage(debut, fin)
}

// EstJourOuvrable reports whether the given date is a working day: neither a
// weekend nor a public holiday, and, when exclureVacances is true, not within
// the judicial recess either. Weekend and holiday exclusion are never
// optional; only the recess rule is toggleable, because some procedural time
// limits run through the court recess while others are suspended by it.
func (c *Calendrier) EstJourOuvrable(t time.Time, exclureVacances bool) bool {
	if EstWeekend(t) || c.EstJourFerie(t) {
		return false
	}
	if exclureVacances && EstVacancesJudiciaires(t) {
		return false
	}
	return true
}

// EstJourOuvrable reports whether the given date is a working day on the
// default calendar.
func EstJourOuvrable(t time.Time, exclureVacances bool) bool {
	return defaultCal.EstJourOuvrable(t, exclureVacances)
}
