// Package cmd implements the flow CLI commands.
//
// The root command dispatches to subcommands (layout, render, version) that
// load a scene file, run the measure and place passes, and report the result.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	flowerrors "github.com/go-drift/flow/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// stdout is where commands write their results.
var stdout io.Writer = os.Stdout

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
	Name:  "flow",
	Short: "flow - wrapping row layout inspector",
	Long: `flow measures and places the children of a flow layout described in a
scene file, the same way a host container would at runtime.

Use "flow <command> --help" for more information about a command.`,
	Usage: "flow <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments. Failures are reported
// through the errors package before being returned.
func Execute(args []string) error {
	handler := &flowerrors.LogHandler{}
	flowerrors.SetHandler(handler)

	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "--verbose":
			handler.Verbose = true
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version":
			if len(filteredArgs) == 0 {
				return runVersion(nil)
			}
			filteredArgs = append(filteredArgs, arg)
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
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

	err := run(cmd, cmdArgs)
	if err != nil {
		report(cmd.Name, err)
	}
	return err
}

// run invokes the command, turning a panic into an error.
func run(cmd *Command, args []string) (err error) {
	defer flowerrors.RecoverWithCallback("cmd."+cmd.Name, func(r any) {
		err = fmt.Errorf("%s: %v", cmd.Name, r)
	})
	return cmd.Run(args)
}

func report(name string, err error) {
	var fe *flowerrors.FlowError
	if stderrors.As(err, &fe) {
		flowerrors.Report(fe)
		return
	}
	flowerrors.Report(&flowerrors.FlowError{
		Op:   "cmd." + name,
		Kind: flowerrors.KindUnknown,
		Err:  err,
	})
}

func printHelp(cmd *Command) {
	var b strings.Builder
	fmt.Fprintln(&b, cmd.Long)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Usage:")
	fmt.Fprintf(&b, "  %s\n", cmd.Usage)
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(&b, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Flags:")
	fmt.Fprintln(&b, "  -h, --help           Show help for a command")
	fmt.Fprintln(&b, "  -v, --version        Show version information")
	fmt.Fprintln(&b, "  --verbose            Include timestamps and stack traces in errors")
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "Examples:")
	fmt.Fprintln(&b, "  flow layout chips.yaml             Print row breaks and bounds")
	fmt.Fprintln(&b, "  flow render chips.yaml -o out.png  Draw the layout to a PNG")
	io.WriteString(stdout, b.String())
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
