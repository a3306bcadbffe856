package calendrier

import "time"

// date is an internal comparable key for table lookups.
// Callers work with time.Time; this type is not exported.
type date struct {
	annee int
	mois  time.Month
	jour  int
}

// dateDe extracts the calendar date of t as displayed by t itself.
// The engine reasons about civil calendar dates, never about instants,
// so no timezone conversion is applied: the Y/M/D the caller sees is
// the legal fact. Any time-of-day component is discarded.
func dateDe(t time.Time) date {
	a, m, j := t.Date()
	return date{annee: a, mois: m, jour: j}
}

// Normaliser truncates t to its own calendar date at midnight UTC.
// All exported functions of the engine operate on normalized dates so
// that an early-morning timestamp and an end-of-day timestamp on the
// same civil day are indistinguishable.
func Normaliser(t time.Time) time.Time {
	return dateDe(t).toTime()
}

func (d date) toTime() time.Time {
	return time.Date(d.annee, d.mois, d.jour, 0, 0, 0, 0, time.UTC)
}

func (d date) avant(autre date) bool {
	if d.annee != autre.annee {
		return d.annee < autre.annee
	}
	if d.mois != autre.mois {
		return d.mois < autre.mois
	}
	return d.jour < autre.jour
}

func (d date) dansPlage(debut, fin date) bool {
	return !d.avant(debut) && !fin.avant(d)
}
