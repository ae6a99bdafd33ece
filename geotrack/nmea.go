package geotrack

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/adrianmo/go-nmea"
)

var errNoFix = errors.New("no active RMC fix in NMEA data")

// ParseNMEA collects the active RMC fixes of an NMEA 0183 log in order.
func ParseNMEA(r io.Reader) (Track, error) {
	var points Track

	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sentence, err := nmea.Parse(line)
		if err != nil {
			return nil, err
		}

		if sentence.DataType() != nmea.TypeRMC {
			continue
		}

		rmc := sentence.(nmea.RMC)
		// Void fixes carry stale or no coordinates.
		if rmc.Validity != nmea.ValidRMC {
			continue
		}

		// Two-digit years are taken to be in this century.
		date := time.Date(
			2000+rmc.Date.YY, time.Month(rmc.Date.MM), rmc.Date.DD,
			rmc.Time.Hour, rmc.Time.Minute, rmc.Time.Second, 0, time.UTC,
		)

		points = append(points, GeoPoint{
			Lat:  rmc.Latitude,
			Lon:  rmc.Longitude,
			Time: date,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return nil, errNoFix
	}

	return points, nil
}
