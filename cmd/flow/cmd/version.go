package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the flow CLI version and build time.",
		Usage: "flow version",
		Run:   runVersion,
	})
}

func runVersion(args []string) error {
	_, err := fmt.Fprintf(stdout, "flow CLI version %s (built %s)\n", Version, BuildTime)
	return err
}
