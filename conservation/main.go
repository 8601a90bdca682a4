// Package conservation is the command line of the HMMER based conservation
// scorer. It reads the arguments and prints the pipeline a run executes.
package conservation

import (
	"fmt"
	"io"
	"os"

	"github.com/Joe-Degs/argp"
	"github.com/Joe-Degs/argp/logger"
)

const (
	command = "conservation"
	header  = "usage: conservation [options] fasta-file database-file working-directory target-file\n\n" +
		"Compute per residue conservation scores from a HMMER alignment of the query against a sequence database."
)

// exit codes
const (
	exitOK      = 0
	exitConfig  = 1
	exitInvalid = 2
)

// Run parses args and prints the plan. It returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	log := logger.New("conservation", stdout, stderr)

	res := argp.NewParser(command, header, log, stdout).Parse(NewOpts(), args)
	switch res.Reason {
	case argp.HelpRequested:
		return exitOK
	case argp.InvalidArguments:
		return exitInvalid
	}

	opts, err := optsFrom(res.Args, os.Getenv)
	if err != nil {
		log.Error("%v", err)
		return exitConfig
	}
	log.Verbose = opts.Verbose

	if opts.Debug {
		res.Args.Dump(stdout)
	}
	if opts.Profile != "" {
		stop, err := startProfile(opts.Profile, opts.WorkingDirectory)
		if err != nil {
			log.Error("%v", err)
			return exitConfig
		}
		defer stop()
		log.Verbosef("%s profiler started", opts.Profile)
	}
	if opts.MSA {
		log.Info("Option `--msa` is not yet implemented.")
	}

	log.Verbosef("target %s, gaps %s.freqgap", opts.TargetFile, opts.TargetFile)
	for _, cmd := range Plan(opts) {
		fmt.Fprintln(stdout, cmd)
	}
	return exitOK
}
