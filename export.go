package lpsim

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"
)

// ExportConfig configures how a trajectory is written out.
type ExportConfig struct {
	Filename  string
	Timestamp bool // append the creation time to the file name
}

// IsUseless returns whether this config doesn't export anything.
func (c ExportConfig) IsUseless() bool {
	return c.Filename == ""
}

var csvHeader = []string{
	"t_years",
	"star_x", "star_y", "star_z", "star_vx", "star_vy", "star_vz",
	"planet_x", "planet_y", "planet_z", "planet_vx", "planet_vy", "planet_vz",
	"sat_x", "sat_y", "sat_z", "sat_vx", "sat_vy", "sat_vz",
}

// ExportTrajectory writes the full trajectory of the three bodies to a CSV
// file in the configured output directory. Positions are in meters,
// velocities in m/s, time in years.
func ExportTrajectory(conf ExportConfig, s *Simulator) error {
	if conf.IsUseless() {
		return nil
	}
	f, err := createCSVFile(conf.Filename, conf.Timestamp)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	times := s.TimePointsInYears()
	for i := range times {
		record := make([]string, 0, len(csvHeader))
		record = append(record, fmt.Sprintf("%.8f", times[i]))
		for _, v := range [6]Vector{
			s.starPos[i], s.starVel[i],
			s.planetPos[i], s.planetVel[i],
			s.satPos[i], s.satVel[i],
		} {
			record = append(record,
				fmt.Sprintf("%.8e", v[0]), fmt.Sprintf("%.8e", v[1]), fmt.Sprintf("%.8e", v[2]))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func createCSVFile(filename string, stamped bool) (*os.File, error) {
	outputDir := lpsimConfig().outputDir
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s/trajectory-%s-%d-%02d-%02dT%02d.%02d.%02d.csv", outputDir, filename,
			t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	} else {
		filename = fmt.Sprintf("%s/trajectory-%s.csv", outputDir, filename)
	}
	return os.Create(filename)
}
