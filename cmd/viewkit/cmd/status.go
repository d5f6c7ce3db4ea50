package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/viewkit/cmd/viewkit/internal/config"
	"github.com/go-drift/viewkit/cmd/viewkit/internal/style"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show resolved configuration",
		Long: `Show the configuration viewkit resolved for the current project.

Values come from viewkit.yaml when present. The app name defaults to the
last element of the module path in go.mod.`,
		Usage: "viewkit status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	source := config.FileName
	if _, err := os.Stat(filepath.Join(cfg.Root, config.FileName)); err != nil {
		source = "defaults"
	}
	modulePath := cfg.ModulePath
	if modulePath == "" {
		modulePath = "(no go.mod)"
	}
	color := cfg.Color
	if cfg.Color == "auto" {
		color = fmt.Sprintf("auto (%t)", style.ColorEnabled(cfg.Color, os.Stdout))
	}

	fmt.Printf("Project: %s\n", cfg.AppName)
	fmt.Printf("  %-10s %s\n", "root:", cfg.Root)
	fmt.Printf("  %-10s %s\n", "module:", modulePath)
	fmt.Printf("  %-10s %s\n", "config:", source)
	fmt.Println()
	fmt.Println("Trace:")
	fmt.Printf("  %-10s %s\n", "color:", color)
	fmt.Printf("  %-10s %t\n", "verbose:", cfg.Verbose)
	fmt.Printf("  %-10s %d\n", "turns:", cfg.MaxTurns)
	return nil
}
