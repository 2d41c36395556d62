package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"founderhub/internal/calendar"
	"founderhub/internal/importer"
	"founderhub/internal/model"
	"founderhub/internal/service"
)

type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) (*printer, error) {
	switch format {
	case "table", "json", "yaml":
		return &printer{w: w, format: format}, nil
	}
	return nil, fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

// structured handles json and yaml; it reports false for table output.
func (p *printer) structured(v any) (bool, error) {
	switch p.format {
	case "json":
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		defer enc.Close()
		return true, enc.Encode(v)
	}
	return false, nil
}

func (p *printer) table(header string, rows func(w io.Writer)) error {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

func (p *printer) founders(rows []model.Founder) error {
	if ok, err := p.structured(rows); ok {
		return err
	}
	return p.table("ID\tNAME\tEMAIL\tVISIBLE\tSKILLS", func(w io.Writer) {
		for _, f := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%d\n", f.ID, f.Name, f.Email, f.Visible, len(f.SkillIDs))
		}
	})
}

func (p *printer) startups(rows []model.Startup) error {
	if ok, err := p.structured(rows); ok {
		return err
	}
	return p.table("ID\tNAME\tINDUSTRY\tSTAGE\tVISIBLE", func(w io.Writer) {
		for _, s := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", s.ID, s.Name, s.Industry, s.Stage, s.Visible)
		}
	})
}

func (p *printer) summary(s *importer.Summary) error {
	if ok, err := p.structured(s); ok {
		return err
	}
	mode := ""
	if s.DryRun {
		mode = " (dry run)"
	}
	fmt.Fprintf(p.w, "%s%s: %d rows, %d created, %d updated, %d skipped, %d failed\n",
		s.Kind, mode, s.Total, s.Created, s.Updated, s.Skipped, s.Failed)
	if len(s.Errors) == 0 {
		return nil
	}
	return p.table("ROW\tFIELD\tERROR", func(w io.Writer) {
		for _, e := range s.Errors {
			fmt.Fprintf(w, "%d\t%s\t%s\n", e.Row, e.Field, e.Message)
		}
	})
}

func (p *printer) dashboard(d *service.Dashboard) error {
	if ok, err := p.structured(d); ok {
		return err
	}
	err := p.table("RESOURCE\tTOTAL\tDETAIL", func(w io.Writer) {
		fmt.Fprintf(w, "founders\t%d\t%d hidden\n", d.Founders, d.HiddenFounders)
		fmt.Fprintf(w, "startups\t%d\t%d hidden\n", d.Startups, d.HiddenStartups)
		fmt.Fprintf(w, "skills\t%d\t\n", d.Skills)
		fmt.Fprintf(w, "hobbies\t%d\t\n", d.Hobbies)
		fmt.Fprintf(w, "help requests\t%d\t%d open\n", d.HelpRequests, d.OpenHelpRequests)
		fmt.Fprintf(w, "events\t%d\t%d upcoming shown\n", d.Events, len(d.UpcomingEvents))
	})
	if err != nil || len(d.UpcomingEvents) == 0 {
		return err
	}
	fmt.Fprintln(p.w)
	return p.table("STARTS\tTITLE\tLOCATION", func(w io.Writer) {
		for _, e := range d.UpcomingEvents {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.StartsAt.Format(time.RFC3339), e.Title, e.Location)
		}
	})
}

// month draws the grid with one cell per day; days outside the month are dimmed
// with parentheses and "*" marks days that have events.
func (p *printer) month(m *calendar.Month) error {
	if ok, err := p.structured(m); ok {
		return err
	}
	fmt.Fprintf(p.w, "%s %d\n", time.Month(m.Month), m.Year)
	if len(m.Weeks) == 0 {
		return nil
	}

	var header []string
	for _, d := range m.Weeks[0].Days {
		t, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			return err
		}
		header = append(header, t.Weekday().String()[:2])
	}

	var agenda []calendar.Day
	err := p.table(strings.Join(header, "\t"), func(w io.Writer) {
		for _, wk := range m.Weeks {
			cells := make([]string, len(wk.Days))
			for i, d := range wk.Days {
				cell := fmt.Sprintf("%d", d.Day)
				if len(d.Events) > 0 {
					cell += "*"
				}
				if !d.InMonth {
					cell = "(" + cell + ")"
				}
				cells[i] = cell
				if d.InMonth && len(d.Events) > 0 {
					agenda = append(agenda, d)
				}
			}
			fmt.Fprintln(w, strings.Join(cells, "\t"))
		}
	})
	if err != nil {
		return err
	}

	for _, d := range agenda {
		fmt.Fprintf(p.w, "\n%s\n", d.Date)
		for _, e := range d.Events {
			fmt.Fprintf(p.w, "  %s  %s\n", e.StartsAt.Format("15:04"), e.Title)
		}
	}
	return nil
}
