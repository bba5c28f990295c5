package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvalheim/nushell/internal/shell"
)

// rootCmd is the base command: running the binary with no subcommand starts
// the interactive REPL directly, since an interactive shell is the program's
// only real mode of operation.
var rootCmd = &cobra.Command{
	Use:   "nushell",
	Short: "A POSIX-family interactive command shell",
	Long:  `nushell reads commands from standard input, executes them, and prints their output, in the manner of sh or bash.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sh, err := shell.New()
		if err != nil {
			return err
		}
		os.Exit(sh.Run())
		return nil
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	log.SetFlags(0)
}
