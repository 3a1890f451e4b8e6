package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Analyze  *AnalyzeCommand
	Daily    *DailyCommand
	Insights *InsightsCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "hindsight"
	parser.LongDescription = "Analyze local Chrome browsing history and get LLM commentary on the patterns."

	cmds := &commands{
		Analyze:  &AnalyzeCommand{globals: &globals, version: version},
		Daily:    &DailyCommand{globals: &globals, version: version},
		Insights: &InsightsCommand{globals: &globals, version: version},
	}

	parser.AddCommand("analyze", "Analyze browsing history", "Extract Chrome browsing history, compute aggregate statistics, and write the report and LLM prompt artifacts.", cmds.Analyze)
	parser.AddCommand("daily", "Generate the daily summary", "Run the analyzer for a short lookback, archive the dated report, and optionally request LLM insights.", cmds.Daily)
	parser.AddCommand("insights", "Submit the saved prompt to an LLM", "Read the saved prompt file and submit it to the selected text-generation backend.", cmds.Insights)

	return parser, &globals, cmds
}

// Run is the main entry point for the hindsight CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one). --verbose must also be applied before
	// the subcommand executes.
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	log.SetLevel(log.InfoLevel)
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("hindsight %s\n", version)
			return nil
		}
		if arg == "--verbose" {
			log.SetLevel(log.DebugLevel)
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
