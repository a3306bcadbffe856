package calendrier

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tunlex/delais/internal/config"
)

// fichierFeries is the on-disk schema for moveable holiday extensions.
// The table is versioned data maintained outside the code: one YAML entry
// per announced year, each observance a named range of consecutive dates.
//
//	feries_mobiles:
//	  2027:
//	    - nom: "Aïd el-Fitr"
//	      debut: "2027-03-09"
//	      fin: "2027-03-10"
//
// "fin" may be omitted for single-day observances.
type fichierFeries struct {
	FeriesMobiles map[int][]entreeMobile `yaml:"feries_mobiles"`
}

type entreeMobile struct {
	Nom   string `yaml:"nom"`
	Debut string `yaml:"debut"`
	Fin   string `yaml:"fin"`
}

// ChargerFeriesMobiles reads a YAML extension file and merges its years into
// the calendar. Entries for a year already present (built-in or previously
// loaded) are appended, not replaced; lookups treat all ranges equally.
func (c *Calendrier) ChargerFeriesMobiles(r io.Reader) error {
	var fichier fichierFeries
	if err := yaml.NewDecoder(r).Decode(&fichier); err != nil {
		return fmt.Errorf("%s: %w", config.ErrFeriesDecode, err)
	}

	charges := make(map[int][]plageMobile, len(fichier.FeriesMobiles))
	for annee, entrees := range fichier.FeriesMobiles {
		for _, e := range entrees {
			p, err := e.plage(annee)
			if err != nil {
				return err
			}
			charges[annee] = append(charges[annee], p)
		}
	}

	c.mu.Lock()
	for annee, plages := range charges {
		c.mobiles[annee] = append(c.mobiles[annee], plages...)
	}
	c.mu.Unlock()

	annees := make([]int, 0, len(charges))
	for a := range charges {
		annees = append(annees, a)
	}
	sort.Ints(annees)
	slog.Info(config.MsgFeriesLoaded,
		config.LogKeyComponent, config.CompCalendrier,
		config.LogKeyAnnees, annees,
	)
	return nil
}

// plage validates and converts a YAML entry declared under the given year.
func (e entreeMobile) plage(annee int) (plageMobile, error) {
	debut, err := time.Parse(config.DateFormatISO, e.Debut)
	if err != nil {
		return plageMobile{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
	}

	fin := debut
	if e.Fin != "" {
		fin, err = time.Parse(config.DateFormatISO, e.Fin)
		if err != nil {
			return plageMobile{}, fmt.Errorf("%s: %w", config.ErrDateParse, err)
		}
	}

	if fin.Before(debut) {
		return plageMobile{}, fmt.Errorf("%s: %q > %q", config.ErrFeriesPlage, e.Debut, e.Fin)
	}
	if debut.Year() != annee || fin.Year() != annee {
		return plageMobile{}, fmt.Errorf("%s: %d vs %q", config.ErrFeriesAnnee, annee, e.Debut)
	}

	return plageMobile{debut: dateDe(debut), fin: dateDe(fin), nom: e.Nom}, nil
}

// ChargerFeriesMobiles merges a YAML extension file into the default calendar.
func ChargerFeriesMobiles(r io.Reader) error {
	return defaultCal.ChargerFeriesMobiles(r)
}
