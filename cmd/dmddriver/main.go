// Command dmddriver is a headless demo of the DMD rearrangement pipeline:
// it plans a compaction for a starting occupancy, smooths the resulting
// track, and drives a presenter.Presenter through the driver loop under
// operator control from a line-oriented console, replacing the original
// MATLAB MEX entry point's flat-argument ABI (config.PositionalArgs exists
// only for ABI parity, and is not used by this command).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/lumenarray/dmd/config"
	"github.com/lumenarray/dmd/console"
	"github.com/lumenarray/dmd/device"
	"github.com/lumenarray/dmd/driverloop"
	"github.com/lumenarray/dmd/lattice"
	"github.com/lumenarray/dmd/presenter"
	"github.com/lumenarray/dmd/rearrange"
)

func main() {
	var (
		rows, cols    int
		numTweezers   int
		occupancyPath string
		radius        int
		n             int
		maxPlanSteps  int
		v1x, v1y      float64
		v2x, v2y      float64
		loopAtEnd     bool
		presentRemap  bool
		debugOverlay  bool
		idleMillis    int
		jitterMillis  int
		seed          int64
	)
	flag.IntVar(&rows, "rows", 5, "occupancy grid rows")
	flag.IntVar(&cols, "cols", 5, "occupancy grid cols")
	flag.IntVar(&numTweezers, "tweezers", 5, "tweezers to place when -occupancy is unset")
	flag.StringVar(&occupancyPath, "occupancy", "", "path to a row-major 0/1 occupancy file; random placement if unset")
	flag.IntVar(&radius, "radius", 2, "half-side of the packed tweezer square in device pixels")
	flag.IntVar(&n, "n", 8, "smoothing upsample factor")
	flag.IntVar(&maxPlanSteps, "max-plan-steps", 1000, "planner step budget (0 disables the limit)")
	flag.Float64Var(&v1x, "v1x", 17.3, "lattice basis vector 1, x")
	flag.Float64Var(&v1y, "v1y", 10, "lattice basis vector 1, y")
	flag.Float64Var(&v2x, "v2x", 17.3, "lattice basis vector 2, x")
	flag.Float64Var(&v2y, "v2y", -10, "lattice basis vector 2, y")
	flag.BoolVar(&loopAtEnd, "loop", false, "restart the track instead of stopping when it finishes")
	flag.BoolVar(&presentRemap, "remap", false, "present the DMD-coordinate remap instead of the raw packed frame")
	flag.BoolVar(&debugOverlay, "debug", false, "draw a status HUD on the raw preview buffer")
	flag.IntVar(&idleMillis, "idle-ms", 0, "milliseconds to sleep between presented frames")
	flag.IntVar(&jitterMillis, "jitter-ms", 0, "max random milliseconds to wait between a finished track and the next replan")
	flag.Int64Var(&seed, "seed", 1, "PRNG seed for random occupancy placement and replan jitter")
	flag.Parse()

	cfg, err := config.New(
		config.DefaultWidth, config.DefaultHeight,
		lattice.Basis{
			V1:     lattice.Vec2{X: v1x, Y: v1y},
			V2:     lattice.Vec2{X: v2x, Y: v2y},
			Center: lattice.Vec2{X: config.DefaultWidth / 2, Y: config.DefaultHeight / 2},
		},
		n, radius, maxPlanSteps, config.DefaultDMDRemapOrigin,
		config.Flags{
			LoopAtEnd:            loopAtEnd,
			PresentRemapped:      presentRemap,
			DebugOverlay:         debugOverlay,
			IdleDelayMillis:      idleMillis,
			PlanWaitJitterMillis: jitterMillis,
		},
	)
	if err != nil {
		log.Fatalf("dmddriver: %v", err)
	}

	rnd := rand.New(rand.NewSource(seed))

	occ, err := loadOrRandomOccupancy(occupancyPath, rows, cols, numTweezers, rnd)
	if err != nil {
		log.Fatalf("dmddriver: %v", err)
	}

	rec := &presenter.Recorder{}
	dev := device.New(rec, cfg)
	if err := dev.Configure(); err != nil {
		log.Fatalf("dmddriver: %v", err)
	}
	defer dev.Close()

	loop := driverloop.NewLoop(dev, cfg)
	loop.Rand = rnd
	if err := loop.Replan(occ); err != nil {
		log.Fatalf("dmddriver: initial plan: %v", err)
	}

	fmt.Fprintln(os.Stdout, "dmddriver ready. commands: replan <rows> <cols> <tweezers>, step, run, loop on|off, present raw|remap, quit")
	repl := console.New(os.Stdin, os.Stdout)
	if err := repl.Run(commandHandler(loop, rec, rnd)); err != nil {
		log.Fatalf("dmddriver: %v", err)
	}
}

// commandHandler dispatches each REPL command against loop, replacing the
// original demo's DMD_MODE/LOOP_MODE compile-time constants with runtime
// operator commands an operator can flip without a rebuild. The SLOW_MODE
// idle delay has no command; it is set once with the -idle-ms flag.
func commandHandler(loop *driverloop.Loop, p presenter.Presenter, rnd *rand.Rand) console.Handler {
	return func(cmd string, args []string) (bool, error) {
		switch cmd {
		case "replan":
			if len(args) != 3 {
				return false, fmt.Errorf("usage: replan <rows> <cols> <tweezers>")
			}
			rows, err := strconv.Atoi(args[0])
			if err != nil {
				return false, err
			}
			cols, err := strconv.Atoi(args[1])
			if err != nil {
				return false, err
			}
			k, err := strconv.Atoi(args[2])
			if err != nil {
				return false, err
			}
			occ, err := rearrange.RandomOccupancy(rows, cols, k, rnd)
			if err != nil {
				return false, err
			}
			return false, loop.Replan(occ)

		case "step":
			done, err := loop.Step()
			if err != nil {
				return false, err
			}
			if done {
				fmt.Println("track complete")
			}
			return false, nil

		case "run":
			return false, loop.Run(nil)

		case "loop":
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return false, fmt.Errorf("usage: loop on|off")
			}
			loop.Cfg.Flags.LoopAtEnd = args[0] == "on"
			return false, nil

		case "present":
			if len(args) != 1 || (args[0] != "raw" && args[0] != "remap") {
				return false, fmt.Errorf("usage: present raw|remap")
			}
			loop.Cfg.Flags.PresentRemapped = args[0] == "remap"
			// The Device keeps its own copy of the config, so rebuild it
			// on the same presenter to pick up the new flag.
			loop.Device = device.New(p, loop.Cfg)
			return false, nil

		case "quit":
			return true, nil

		default:
			return false, fmt.Errorf("unknown command: %s", cmd)
		}
	}
}

// loadOrRandomOccupancy reads a whitespace-separated grid of 0/1 integers
// from path, or, if path is empty, places numTweezers tweezers uniformly
// at random in a rows-by-cols grid (original_source/Main.cpp's
// srand(time(NULL)) placement loop, generalized to an injected *rand.Rand
// so placement is reproducible across runs).
func loadOrRandomOccupancy(path string, rows, cols, numTweezers int, rnd *rand.Rand) (rearrange.Occupancy, error) {
	if path == "" {
		return rearrange.RandomOccupancy(rows, cols, numTweezers, rnd)
	}
	f, err := os.Open(path)
	if err != nil {
		return rearrange.Occupancy{}, fmt.Errorf("open occupancy file: %w", err)
	}
	defer f.Close()

	var cells []byte
	gotCols := -1
	lineRows := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if gotCols == -1 {
			gotCols = len(fields)
		} else if len(fields) != gotCols {
			return rearrange.Occupancy{}, fmt.Errorf("occupancy file: row %d has %d cols, want %d", lineRows, len(fields), gotCols)
		}
		for _, field := range fields {
			v, err := strconv.Atoi(field)
			if err != nil {
				return rearrange.Occupancy{}, fmt.Errorf("occupancy file: %w", err)
			}
			cells = append(cells, byte(v))
		}
		lineRows++
	}
	if err := scanner.Err(); err != nil {
		return rearrange.Occupancy{}, fmt.Errorf("read occupancy file: %w", err)
	}

	count := 0
	for _, v := range cells {
		count += int(v)
	}
	return rearrange.NewOccupancy(lineRows, gotCols, count, cells)
}
