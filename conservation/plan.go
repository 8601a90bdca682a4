package conservation

import (
	"fmt"
	"path/filepath"
)

// Plan returns the HMMER command lines a run executes, in order. Output
// redirections are written shell style.
func Plan(o *Opts) []string {
	msa := filepath.Join(o.WorkingDirectory, filepath.Base(o.FastaFile)) + ".sto"
	cmds := []string{
		fmt.Sprintf("%sphmmer -o /dev/null -A %s %s %s", o.HmmerDir, msa, o.FastaFile, o.DatabaseFile),
	}

	// sampling only happens when the alignment holds more than MaxSeqs
	// sequences, which is decided after phmmer ran
	if o.MaxSeqs > 0 {
		sample := msa + ".sample"
		cmds = append(cmds, fmt.Sprintf("%sesl-alimanip -o %s --seq-k %s.ss %s", o.HmmerDir, sample, msa, msa))
		msa = sample
	}

	weighted := msa + ".w"
	cmds = append(cmds,
		fmt.Sprintf("%sesl-weight %s > %s", o.HmmerDir, msa, weighted),
		fmt.Sprintf("%sesl-alistat --icinfo %s.ic --rinfo %s.r --weight %s", o.HmmerDir, weighted, weighted, weighted),
	)
	return cmds
}
