package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/progtools/conplan/pkg/export"
)

// textReports maps output filenames to their writers, in the order the
// files are produced.
var textReports = []struct {
	name  string
	write func(io.Writer, *export.Program) error
}{
	{"People with items by time.txt", export.WritePeopleByTime},
	{"Items with people by time.txt", export.WriteItemsByTime},
	{"Program participant schedules.txt", export.WriteParticipantSchedules},
	{"Items' people counts.txt", export.WriteItemPeopleCounts},
	{"Peoples' item counts.txt", export.WritePeopleItemCounts},
	{"Pocket program.txt", export.WritePocketProgram},
	{"Diag - People scheduled but not in people table.txt", export.WriteUnknownPeople},
	{"Diag - People scheduled against themselves.txt", export.WriteSelfConflicts},
	{"Diag - Availability conflicts.txt", export.WriteAvailabilityConflicts},
	{"Diag - Disturbingly similar names.txt", export.WriteSimilarNames},
	{"Diag - precis without items.txt", export.WriteMissingPrecis},
	{"Diag - Items with unexpectedly low number of participants.txt", export.WriteLowAttendanceItems},
	{"Diag - Items missing a moderator.txt", export.WriteItemsMissingModerator},
	{"Diag - Items missing a precis.txt", export.WriteItemsMissingPrecis},
}

func (s *Service) writeReports(a *Analysis, prog *export.Program) error {
	dir := s.cfg.Reports.Dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := s.clearStale(dir); err != nil {
		return err
	}

	for _, r := range textReports {
		if err := writeFile(filepath.Join(dir, r.name), prog, r.write); err != nil {
			return err
		}
	}
	if err := s.writeDiagnostics(filepath.Join(dir, "Diagnostics.txt"), a); err != nil {
		return err
	}

	if s.cfg.Reports.CSV {
		if err := writeFile(filepath.Join(dir, "Schedule.csv"), prog, export.WriteScheduleCSV); err != nil {
			return err
		}
	}
	if s.cfg.Reports.HTML {
		if err := s.writeHTML(dir, prog); err != nil {
			return err
		}
	}
	if s.cfg.Reports.ICS {
		err := writeFile(filepath.Join(dir, "Schedule.ics"), prog, func(w io.Writer, p *export.Program) error {
			return export.WriteICS(w, p, s.cfg.Reports.FirstDay())
		})
		if err != nil {
			return err
		}
	}
	s.log.Infof("reports written to %s", dir)
	return nil
}

// clearStale removes leftover report files from previous runs so renamed or
// disabled reports do not linger.
func (s *Service) clearStale(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan report dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".txt", ".csv", ".ics", ".html":
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return fmt.Errorf("remove stale report: %w", err)
			}
		}
	}
	return nil
}

func (s *Service) writeDiagnostics(path string, a *Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()
	if a.Diags.Count() == 0 {
		_, err = fmt.Fprintln(f, "None found.")
		return err
	}
	for _, d := range a.Diags.All() {
		if _, err := fmt.Fprintf(f, "%s: %s: %s\n", d.Kind, d.Context, d.Message); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeHTML(dir string, prog *export.Program) error {
	header, err := optionalFile(s.cfg.Reports.HeaderFile)
	if err != nil {
		return err
	}
	footer, err := optionalFile(s.cfg.Reports.FooterFile)
	if err != nil {
		return err
	}
	for _, day := range prog.NominalDays() {
		path := filepath.Join(dir, "Schedule - "+day+".html")
		err := writeFile(path, prog, func(w io.Writer, p *export.Program) error {
			return export.WriteDayHTML(w, p, day, header, footer)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func optionalFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func writeFile(path string, prog *export.Program, write func(io.Writer, *export.Program) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := write(f, prog); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}
