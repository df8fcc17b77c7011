// internal/cli/root.go

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lookbusy1344/hashgo/internal/config"
	"github.com/lookbusy1344/hashgo/internal/paths"
	"github.com/lookbusy1344/hashgo/internal/runner"
)

// version is stamped at build time via
// -ldflags "-X github.com/lookbusy1344/hashgo/internal/cli.version=...".
var version = "dev"

var (
	flagAlgorithm     string
	flagEncoding      string
	flagSingleThread  bool
	flagCaseSensitive bool
	flagExcludeNames  bool
	flagNoProgress    bool
	flagDebug         bool
	flagLimit         int
)

// rootCmd is the whole CLI: hashgo has no subcommands, just flags and
// file globs.
var rootCmd = &cobra.Command{
	Use:   "hashgo [flags] [file glob ...]",
	Short: "Hash files with a choice of digest algorithms",
	Long: `hashgo computes file digests with a selectable algorithm and output
encoding, in parallel by default. Globs are expanded internally; with no
path arguments, file paths are read from stdin (one per line).

Algorithms: ` + config.AlgorithmChoices + `
Encodings:  ` + config.EncodingChoices + `

Default algorithm is SHA3-256; default encoding is Hex (U32 for CRC32).
Defaults can also be set in a hashgo.toml or HASHGO_* environment
variables; explicit flags always win.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := buildSettings(cmd, args)
		if err != nil {
			return err
		}
		return run(settings)
	},
}

// Execute runs the CLI and maps the outcome to the process exit status:
// 0 clean, 1 when one or more files failed, 2 for configuration errors.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, runner.ErrPartialFailure) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "%sError: %s%s\n", colorCode(ansiRed), err, colorCode(ansiReset))
		os.Exit(2)
	}
}

func init() {
	rootCmd.Version = version

	f := rootCmd.Flags()
	f.StringVarP(&flagAlgorithm, "algorithm", "a", "", "hash algorithm to use")
	f.StringVarP(&flagEncoding, "encoding", "e", "", "output encoding (Hex, Base64, Base32)")
	f.BoolVarP(&flagSingleThread, "single-thread", "s", false, "single-threaded (not multi-threaded)")
	f.BoolVarP(&flagCaseSensitive, "case-sensitive", "c", false, "case-sensitive glob matching")
	f.BoolVarP(&flagExcludeNames, "exclude-filenames", "x", false, "exclude filenames from output")
	f.BoolVarP(&flagNoProgress, "no-progress", "n", false, "suppress progress display (for scripts)")
	f.BoolVarP(&flagDebug, "debug", "d", false, "debug messages")
	f.IntVarP(&flagLimit, "limit", "l", 0, "limit number of files processed")
}

// buildSettings merges config-file/env defaults with explicit flags
// (flags win) and validates the result before anything is dispatched.
func buildSettings(cmd *cobra.Command, args []string) (*config.Settings, error) {
	defaults, err := config.LoadDefaults("")
	if err != nil {
		return nil, err
	}

	algoName := flagAlgorithm
	if !cmd.Flags().Changed("algorithm") && defaults.Algorithm != "" {
		algoName = defaults.Algorithm
	}
	algo, err := config.ParseAlgorithm(algoName)
	if err != nil {
		return nil, err
	}

	encName := flagEncoding
	if !cmd.Flags().Changed("encoding") && defaults.Encoding != "" {
		encName = defaults.Encoding
	}
	enc, err := config.ParseEncoding(encName)
	if err != nil {
		return nil, err
	}

	settings := &config.Settings{
		Algorithm:     algo,
		Encoding:      enc,
		SingleThread:  flagSingleThread || defaults.SingleThread,
		CaseSensitive: flagCaseSensitive,
		ExcludeNames:  flagExcludeNames,
		NoProgress:    flagNoProgress || defaults.NoProgress,
		Debug:         flagDebug,
		Limit:         flagLimit,
		Patterns:      args,
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// run gathers the path list and hands it to the dispatcher.
func run(settings *config.Settings) error {
	var debugOut io.Writer
	if settings.Debug {
		debugOut = os.Stderr
		dumpSettings(settings)
	}

	pathList, err := paths.Gather(settings, os.Stdin, debugOut)
	if err != nil {
		return err
	}

	if len(pathList) == 0 {
		if settings.Debug {
			fmt.Fprintln(os.Stderr, "No files found")
		}
		return nil
	}
	if settings.Debug {
		fmt.Fprintf(os.Stderr, "Files to hash: %v\n", pathList)
	}

	dispatcher := runner.New(settings, os.Stdout, os.Stderr, chooseObserver(settings))
	return dispatcher.Run(pathList)
}

// dumpSettings prints the resolved configuration to stderr for --debug.
func dumpSettings(s *config.Settings) {
	fmt.Fprintf(os.Stderr, "%sConfig:%s algorithm=%s encoding=%s single-thread=%t case-sensitive=%t limit=%d\n",
		colorCode(ansiBoldCyan), colorCode(ansiReset),
		s.Algorithm, s.Encoding, s.SingleThread, s.CaseSensitive, s.Limit)
	if len(s.Patterns) == 0 {
		fmt.Fprintln(os.Stderr, "No path specified, reading from stdin")
	} else {
		fmt.Fprintf(os.Stderr, "Patterns: %v\n", s.Patterns)
	}
}

// chooseObserver picks the progress renderer: none when suppressed or
// when stderr is not a terminal, otherwise the progressbar renderer.
func chooseObserver(s *config.Settings) runner.Observer {
	if s.NoProgress || !isTTY(os.Stderr) {
		return nil
	}
	return newProgressObserver()
}
