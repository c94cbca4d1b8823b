// barriercast casts rays against line barriers and reports the nearest hit
// for each ray.
//
// Example:
//
//	barriercast -barrier=5,-1:5,1 -barrier=2,-1:2,1 -ray=0,0:10,0
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"

	"barriercast/contact"
	"barriercast/geometry"
	"barriercast/ray"
	"barriercast/raycast"
	"barriercast/raycast/castmetrics"

	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

var (
	barriers barrierList
	rays     []ray.Ray

	parallelEpsilon = flag.Float64("parallel-epsilon", 0, "Treat a ray and barrier as parallel when their cross term is at most this large.  0 means exactly parallel only.")
	parallelism     = flag.Int("parallelism", runtime.NumCPU(), "How many rays to cast at once.")
	single          = flag.Bool("single", false, "Cast each ray against the only barrier with a single-barrier test, reporting parallel lines distinctly.  Requires exactly one -barrier.")
)

func init() {
	flag.Var(&barriers, "barrier", "Barrier segment x1,y1:x2,y2.  Repeatable.")
	flag.Var(rayList{rays: &rays, parse: parseEndpointRay}, "ray", "Ray from x1,y1 to x2,y2, as x1,y1:x2,y2.  Repeatable.")
	flag.Var(rayList{rays: &rays, parse: parseDirectionRay}, "ray-dir", "Ray given as origin, direction, and distance: ox,oy:dx,dy:distance.  Repeatable.")
}

type config struct {
	barriers        []geometry.Barrier
	rays            []ray.Ray
	parallelEpsilon float64
	parallelism     int
	single          bool
}

func main() {
	flag.Parse()

	glog.CopyStandardLogTo("INFO")
	defer glog.Flush()

	cfg := config{
		barriers:        barriers,
		rays:            rays,
		parallelEpsilon: *parallelEpsilon,
		parallelism:     *parallelism,
		single:          *single,
	}

	recorder := castmetrics.New()
	if err := recorder.RegisterMetrics(); err != nil {
		glog.Exitf("Failed to register metrics: %v", err)
	}

	if err := run(context.Background(), os.Stdout, cfg, recorder); err != nil {
		glog.Errorf("Error: %v", err)
		glog.Flush()
		os.Exit(2)
	}

	counts, err := recorder.Counts()
	if err != nil {
		glog.Errorf("Failed to read metrics: %v", err)
		return
	}
	outcomes := []string{}
	for o := range counts {
		outcomes = append(outcomes, o)
	}
	sort.Strings(outcomes)
	for _, o := range outcomes {
		glog.Infof("casts outcome=%s count=%d", o, counts[o])
	}
}

func run(ctx context.Context, w io.Writer, cfg config, recorder raycast.Recorder) error {
	if len(cfg.barriers) == 0 {
		return xerrors.New("at least one -barrier is required")
	}
	if len(cfg.rays) == 0 {
		return xerrors.New("at least one -ray or -ray-dir is required")
	}
	if cfg.single && len(cfg.barriers) != 1 {
		return xerrors.Errorf("-single requires exactly one barrier, got %d", len(cfg.barriers))
	}

	glog.Infof("Casting %d rays against %d barriers", len(cfg.rays), len(cfg.barriers))

	caster := raycast.New(raycast.WithParallelEpsilon(cfg.parallelEpsilon))

	if cfg.single {
		for i, r := range cfg.rays {
			hit, err := caster.Cast(r, cfg.barriers[0])
			if recorder != nil {
				recorder.Record(ctx, raycast.Outcome(err))
			}
			if err := printResult(w, i, hit, err); err != nil {
				return err
			}
		}
		return nil
	}

	results, err := caster.CastBatch(ctx, cfg.rays, cfg.barriers, raycast.WithParallelism(cfg.parallelism), raycast.WithRecorder(recorder))
	if err != nil {
		return xerrors.Errorf("while casting rays: %w", err)
	}

	for i, res := range results {
		if err := printResult(w, i, res.Hit, res.Err); err != nil {
			return err
		}
	}
	return nil
}

func printResult(w io.Writer, i int, hit contact.RayHit, castErr error) error {
	var err error
	switch raycast.Outcome(castErr) {
	case "hit":
		_, err = fmt.Fprintf(w, "ray %d: hit (%s, %s) distance %s barrier %d\n", i, formatFloat(hit.Position[0]), formatFloat(hit.Position[1]), formatFloat(hit.Distance), hit.Index)
	case "parallel":
		_, err = fmt.Fprintf(w, "ray %d: parallel\n", i)
	default:
		_, err = fmt.Fprintf(w, "ray %d: no hit\n", i)
	}
	if err != nil {
		return xerrors.Errorf("while writing result: %w", err)
	}
	return nil
}
