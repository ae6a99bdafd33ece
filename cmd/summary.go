package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/render"
	"github.com/bgraf/kmroute/route"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// summaryCmd represents the summary command
var summaryCmd = &cobra.Command{
	Use:   "summary [ROUTE|TRACK-FILE|URL]...",
	Short: "Print total distance and kilometer markers of routes",
	Long: `Summary loads the given routes, or all configured routes when none
are given, and prints their total distance and kilometer markers.`,
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)

	summaryCmd.Flags().StringP("format", "f", "text", "Output format: text, json or yaml")
}

type markerOutput struct {
	Km  int     `json:"km" yaml:"km"`
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

type summaryOutput struct {
	Name          string         `json:"name" yaml:"name"`
	Resource      string         `json:"resource" yaml:"resource"`
	Points        int            `json:"points" yaml:"points"`
	TotalDistance float64        `json:"totalDistance" yaml:"total_distance"`
	Markers       []markerOutput `json:"markers" yaml:"markers"`
}

func makeSummaryOutput(r config.Route, track geotrack.Track, s route.Summary) summaryOutput {
	out := summaryOutput{
		Name:          r.Name,
		Resource:      r.File,
		Points:        len(track),
		TotalDistance: s.TotalDistance,
		Markers:       make([]markerOutput, 0, len(s.Markers)),
	}

	for _, m := range s.Markers {
		out.Markers = append(out.Markers, markerOutput{Km: m.Km, Lat: m.Point.Lat, Lon: m.Point.Lon})
	}

	return out
}

func runSummary(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	write, err := summaryWriter(format)
	if err != nil {
		return err
	}

	routes, err := resolveRoutes(args)
	if err != nil {
		return err
	}

	loader := geotrack.NewLoader()

	var (
		outputs []summaryOutput
		failed  int
	)

	for _, r := range routes {
		track, err := loader.Load(context.Background(), r.File)
		if err != nil {
			log.Printf("route %s unavailable: %s", r.Name, err)
			failed++
			continue
		}

		outputs = append(outputs, makeSummaryOutput(r, track, route.Summarize(track)))
	}

	if err := write(os.Stdout, outputs); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d routes could not be loaded", failed, len(routes))
	}

	return nil
}

func summaryWriter(format string) (func(io.Writer, []summaryOutput) error, error) {
	switch format {
	case "text":
		return writeSummaryText, nil
	case "json":
		return func(w io.Writer, outputs []summaryOutput) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(outputs)
		}, nil
	case "yaml":
		return func(w io.Writer, outputs []summaryOutput) error {
			b, err := yaml.Marshal(outputs)
			if err != nil {
				return err
			}
			_, err = w.Write(b)
			return err
		}, nil
	}

	return nil, fmt.Errorf("unknown format '%s'", format)
}

func writeSummaryText(w io.Writer, outputs []summaryOutput) error {
	for _, out := range outputs {
		_, err := fmt.Fprintf(w, "%s (%s)\n  Total distance: %s over %d points\n",
			out.Name, out.Resource, render.FormatDistance(out.TotalDistance), out.Points)
		if err != nil {
			return err
		}

		for _, m := range out.Markers {
			if _, err := fmt.Fprintf(w, "  %3d km  %.6f, %.6f\n", m.Km, m.Lat, m.Lon); err != nil {
				return err
			}
		}
	}

	return nil
}
