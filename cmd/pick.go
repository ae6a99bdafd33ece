package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/bgraf/kmroute/config"
	"github.com/bgraf/kmroute/geotrack"
	"github.com/bgraf/kmroute/route"
	"github.com/spf13/cobra"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively switch between routes and show their summaries",
	Long: `Pick prompts for a route and loads it in the background. Picking
another route before a load finished discards the older result.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

const pickQuit = "(quit)"

func runPick(cmd *cobra.Command, args []string) error {
	routes, err := config.Routes()
	if err != nil {
		return err
	}
	if len(routes) == 0 {
		return fmt.Errorf("no routes configured")
	}

	options := make([]string, 0, len(routes)+1)
	byName := make(map[string]config.Route, len(routes))
	for _, r := range routes {
		options = append(options, r.Name)
		byName[r.Name] = r
	}
	options = append(options, pickQuit)

	loader := geotrack.NewLoader()
	load := func(ctx context.Context, name string) (geotrack.Track, error) {
		return loader.Load(ctx, byName[name].File)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Results are printed between prompts, never while survey owns the terminal.
	pending := newPickResults()
	selector := route.NewSelector(load, pending.offer)
	defer func() {
		selector.Wait()
		pending.flush(os.Stdout, byName)
	}()

	current := config.DefaultRoute()
	if _, ok := byName[current]; !ok {
		current = options[0]
	}

	for {
		pending.flush(os.Stdout, byName)

		prompt := &survey.Select{
			Message: "Route",
			Options: options,
			Default: current,
		}

		err := survey.AskOne(prompt, &current)
		if errors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}

		if current == pickQuit {
			return nil
		}

		selector.Select(ctx, current)
	}
}

// pickResults holds the latest delivered result until it is printed.
type pickResults chan route.Result

func newPickResults() pickResults {
	return make(pickResults, 1)
}

// offer replaces a result that has not been printed yet. It never blocks.
func (p pickResults) offer(res route.Result) {
	for {
		select {
		case p <- res:
			return
		default:
		}

		select {
		case <-p:
		default:
		}
	}
}

func (p pickResults) flush(w io.Writer, byName map[string]config.Route) {
	select {
	case res := <-p:
		printPickResult(w, byName[res.Key], res)
	default:
	}
}

func printPickResult(w io.Writer, r config.Route, res route.Result) {
	if res.Err != nil {
		log.Printf("route %s unavailable: %s", r.Name, res.Err)
		return
	}

	if err := writeSummaryText(w, []summaryOutput{makeSummaryOutput(r, res.Track, res.Summary)}); err != nil {
		log.Println(err)
	}
}
