// Package cmd implements the viewkit CLI commands.
//
// The root command dispatches to registered subcommands (replay, step,
// status). Each subcommand registers itself from an init function.
package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/viewkit/cmd/viewkit/internal/config"
	"github.com/go-drift/viewkit/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "viewkit",
	Short: "viewkit - declarative view lifecycles",
	Long: `viewkit replays scripted native events against a tree of view
creators and prints every lifecycle transition they go through.

Use "viewkit <command> --help" for more information about a command.`,
	Usage: "viewkit <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Printf("viewkit version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  viewkit replay demo.yaml      Print the lifecycle of a scenario")
	fmt.Println("  viewkit step demo.yaml        Step through a scenario one event at a time")
	fmt.Println("  viewkit status                Show the resolved configuration")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

// loadConfig resolves viewkit.yaml for the enclosing project and installs
// the error handler it asks for.
func loadConfig() (*config.Resolved, error) {
	root, err := config.FindProjectRoot()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Verbose})
	return cfg, nil
}

// scenarioArgs extracts the scenario path and the --verbose flag.
func scenarioArgs(name string, args []string) (path string, verbose bool, err error) {
	for _, arg := range args {
		switch arg {
		case "--verbose", "-V":
			verbose = true
		default:
			if path != "" {
				return "", false, fmt.Errorf("unexpected argument %q\n\nUsage: viewkit %s <scenario.yaml> [--verbose]", arg, name)
			}
			path = arg
		}
	}
	if path == "" {
		return "", false, fmt.Errorf("scenario file is required\n\nUsage: viewkit %s <scenario.yaml> [--verbose]", name)
	}
	return path, verbose, nil
}
