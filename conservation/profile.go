package conservation

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/pprof"
)

// startProfile starts a pprof profile of kind typ written to dir/typ.out.
// The returned func stops the profile and closes the file.
func startProfile(typ, dir string) (func(), error) {
	var pprofer func(io.Writer) error
	stop := func() {}
	switch typ {
	case "cpu":
		pprofer = pprof.StartCPUProfile
		stop = pprof.StopCPUProfile
	default:
		profiler := pprof.Lookup(typ)
		if profiler == nil {
			return nil, fmt.Errorf("conservation: unknown profile %q", typ)
		}
		pprofer = func(w io.Writer) error { return profiler.WriteTo(w, 0) }
	}

	f, err := os.OpenFile(
		filepath.Join(dir, fmt.Sprintf("%s.out", typ)),
		os.O_CREATE|os.O_TRUNC|os.O_RDWR,
		fs.ModePerm,
	)
	if err != nil {
		return nil, fmt.Errorf("conservation: profile: %w", err)
	}
	if err := pprofer(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("conservation: profile: %w", err)
	}
	return func() {
		stop()
		f.Close()
	}, nil
}
