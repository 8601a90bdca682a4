package conservation

import (
	"fmt"
	"strconv"

	"github.com/Joe-Degs/argp"
)

// Opts configure a conservation run
type Opts struct {
	FastaFile        string // positional 1
	DatabaseFile     string // positional 2
	WorkingDirectory string // positional 3
	TargetFile       string // positional 4

	MaxSeqs int    // --max-seqs|-m n
	Profile string // --profile|-p cpu, heap, ...

	MSA     bool // --msa
	Verbose bool // --verbose|-v
	Debug   bool // --debug|-d

	// HmmerDir prefixes the HMMER tool names, from $HMMER_DIR
	HmmerDir string
}

// NewOpts returns the option schema of the conservation command.
func NewOpts() argp.Options {
	return argp.Options{
		{Long: "msa", Description: "the input file is already a multiple sequence alignment (not implemented)"},
		{Short: "m", Long: "max-seqs", HasValue: true, ArgName: "n", Description: "sample at most n sequences from the alignment before weighting"},
		{Short: "v", Long: "verbose", Description: "verbose output"},
		{Short: "d", Long: "debug", Description: "dump the parsed arguments"},
		{Short: "p", Long: "profile", HasValue: true, ArgName: "type", Description: "write a pprof profile (cpu, heap, goroutine, ...) to the working directory"},
	}
}

// optsFrom turns parsed arguments into Opts. getenv looks up the
// environment.
func optsFrom(args *argp.ParsedArguments, getenv func(string) string) (*Opts, error) {
	pos := args.Positional()
	if len(pos) != 4 {
		return nil, fmt.Errorf("conservation: expected 4 positional arguments, got %d", len(pos))
	}

	opts := &Opts{
		FastaFile:        pos[0],
		DatabaseFile:     pos[1],
		WorkingDirectory: pos[2],
		TargetFile:       pos[3],
		MSA:              args.Has("msa"),
		Verbose:          args.Has("verbose"),
		Debug:            args.Has("debug"),
		HmmerDir:         getenv("HMMER_DIR"),
	}
	opts.Profile, _ = args.Value("profile")

	if v, ok := args.Value("max-seqs"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("conservation: max-seqs: %w", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("conservation: max-seqs must be positive, got %d", n)
		}
		opts.MaxSeqs = n
	}
	return opts, nil
}
