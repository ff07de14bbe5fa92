// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func main() {
	InitializeColors()

	asciiLogo := `
 ██████╗ ██████╗ ██╗     ██╗     ██╗███████╗██╗ ██████╗ ███╗   ██╗███████╗
██╔════╝██╔═══██╗██║     ██║     ██║██╔════╝██║██╔═══██╗████╗  ██║██╔════╝
██║     ██║   ██║██║     ██║     ██║███████╗██║██║   ██║██╔██╗ ██║███████╗
██║     ██║   ██║██║     ██║     ██║╚════██║██║██║   ██║██║╚██╗██║╚════██║
╚██████╗╚██████╔╝███████╗███████╗██║███████║██║╚██████╔╝██║ ╚████║███████║
 ╚═════╝ ╚═════╝ ╚══════╝╚══════╝╚═╝╚══════╝╚═╝ ╚═════╝ ╚═╝  ╚═══╝╚══════╝
Motor vehicle collision reports by zip code and date range [Version: %s%s%s]

Copyright @ Naren Yellavula

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	runTUI := func(cmd *cobra.Command, args []string) {
		store, config := mustLoadStore(args)
		if err := runBubbleTeaApp(store, config); err != nil {
			log.Fatalf("Error running UI: %v", err)
		}
	}

	var cmdRun = &cobra.Command{
		Use:   "run [file]",
		Short: "Launches the interactive report UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run loads the collision data and opens the report UI`),
		Args:  cobra.MaximumNArgs(1),
		Run:   runTUI,
	}

	var cmdPrompt = &cobra.Command{
		Use:   "prompt [file]",
		Short: "Asks for zip codes and dates on the terminal",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Prompt reads zip code, start date and end date from standard input until 'quit'`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, config := mustLoadStore(args)
			if err := runPrompt(os.Stdin, os.Stdout, store, config.Data.DateFormat); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	var cmdReport = &cobra.Command{
		Use:   "report [file]",
		Short: "Prints reports for one query or a file of queries",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Report prints the summary for --zip/--from/--to, or for every line of --queries`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			zip, _ := cmd.Flags().GetString("zip")
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			queriesPath, _ := cmd.Flags().GetString("queries")

			if queriesPath == "" && zip == "" {
				log.Fatalf("Error: pass --zip with --from and --to, or --queries")
			}

			store, config := mustLoadStore(args)
			layout := config.Data.DateFormat

			if queriesPath != "" {
				f, err := os.Open(queriesPath)
				if err != nil {
					log.Fatalf("Error opening queries: %v", err)
				}
				defer f.Close()
				if err := runBatch(f, os.Stdout, store, layout); err != nil {
					log.Fatalf("Error: %v", err)
				}
				return
			}

			q, err := newReportQuery(zip, from, to, layout)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			if err := writeReport(os.Stdout, store, q); err != nil {
				log.Fatalf("Error: %v", err)
			}
		},
	}

	cmdReport.Flags().String("zip", "", "five digit zip code")
	cmdReport.Flags().String("from", "", "start date, inclusive")
	cmdReport.Flags().String("to", "", "end date, inclusive")
	cmdReport.Flags().String("queries", "", "file with one 'zip start end' query per line")
	cmdReport.MarkFlagsRequiredTogether("zip", "from", "to")
	cmdReport.MarkFlagsMutuallyExclusive("zip", "queries")

	var cmdTree = &cobra.Command{
		Use:   "tree [file]",
		Short: "Prints the loaded index as a tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Tree loads the collision data and draws the balanced index`),
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, _ := mustLoadStore(args)
			index := store.Index()
			fmt.Printf("%d records, height %d\n", index.Len(), index.Height())
			fmt.Print(index.TreeString())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Display current configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Settings shows ~/`+configFileName+`, creating it with defaults when missing`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "collisions [file]",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MaximumNArgs(1),
		// Default to run command when no subcommand is provided
		Run: runTUI,
	}
	rootCmd.AddCommand(cmdRun, cmdPrompt, cmdReport, cmdTree, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
