package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/viewkit/cmd/viewkit/internal/scenario"
	"github.com/go-drift/viewkit/cmd/viewkit/internal/style"
	"github.com/go-drift/viewkit/pkg/core"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a scenario and print its lifecycle",
		Long: `Build the creator tree described by a scenario file, replay its
native events in order and print every lifecycle event.

Phase advances, layout passes and catch-up passes are only shown with
--verbose or trace.verbose in viewkit.yaml.

Usage:
  viewkit replay demo.yaml
  viewkit replay demo.yaml --verbose`,
		Usage: "viewkit replay <scenario.yaml> [--verbose]",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	path, verbose, err := scenarioArgs("replay", args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	st := style.New(os.Stdout, style.ColorEnabled(cfg.Color, os.Stdout))
	return replay(os.Stdout, st, s, cfg.MaxTurns, verbose || cfg.Verbose)
}

func replay(w io.Writer, st *style.Styles, s *scenario.Scenario, maxTurns int, verbose bool) error {
	prev := core.SetTracer(func(e core.Event) {
		if verbose || !style.Verbose(e.Kind) {
			fmt.Fprintln(w, "  "+st.Event(e))
		}
	})
	defer core.SetTracer(prev)

	p := scenario.NewPlayer(s, maxTurns)
	defer p.Close()

	fmt.Fprintln(w, st.Header("replay "+s.Tree.Name))
	for !p.Done() {
		e, _ := p.Peek()
		fmt.Fprintln(w, st.Step(e.String()))
		if _, err := p.Step(); err != nil {
			fmt.Fprintln(w, st.Error(err.Error()))
			return err
		}
	}
	if err := p.Run(); err != nil {
		fmt.Fprintln(w, st.Error(err.Error()))
		return err
	}

	fmt.Fprintln(w, st.Step("dispose"))
	p.Close()
	return nil
}
