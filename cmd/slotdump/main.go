// Command slotdump inserts values into a slot arena, frees some of them and
// prints what is left.
//
//	slotdump --free 1 James John Jack
//	slotdump --free 1 --then Jill --format log James John Jack
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	arena "github.com/pavanmanishd/slotarena"
	"github.com/pavanmanishd/slotarena/arenalog"
)

var (
	freeFlag = &cli.IntSliceFlag{
		Name:  "free",
		Usage: "slot index to free after inserting the arguments (repeatable)",
	}
	thenFlag = &cli.StringSliceFlag{
		Name:  "then",
		Usage: "value to insert after freeing (repeatable)",
	}
	formatFlag = &cli.StringFlag{
		Name:  "format",
		Value: "text",
		Usage: "output format: text, spew, log or cbor",
	}
	verboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every arena operation to stderr",
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "slotdump",
		Usage:     "build a slot arena from the command line and print it",
		ArgsUsage: "VALUE...",
		Flags:     []cli.Flag{freeFlag, thenFlag, formatFlag, verboseFlag},
		Action:    run,
	}
}

func run(c *cli.Context) error {
	log := zap.NewNop()
	if c.Bool(verboseFlag.Name) {
		log = newLogger(c.App.ErrWriter, zapcore.DebugLevel)
	}

	values := c.Args().Slice()
	names := arena.WithCapacity[string](uint32(len(values)))
	for _, v := range values {
		r := names.Insert(v)
		log.Debug("insert", arenalog.Ref("ref", r), zap.String("value", v))
	}

	for _, idx := range c.IntSlice(freeFlag.Name) {
		if idx < 0 || uint64(idx) > math.MaxUint32 {
			return fmt.Errorf("free %d: index out of range", idx)
		}
		r := arena.FromRaw[string](uint32(idx))
		if !names.IsValid(r) {
			return fmt.Errorf("free %v: not an occupied slot", r)
		}
		names.Free(r)
		log.Debug("free", arenalog.Ref("ref", r))
	}

	for _, v := range c.StringSlice(thenFlag.Name) {
		r := names.Insert(v)
		log.Debug("insert", arenalog.Ref("ref", r), zap.String("value", v))
	}

	log.Debug("done", arenalog.Metrics("metrics", names.Metrics()))
	return dump(c.App.Writer, c.String(formatFlag.Name), names)
}

// slot is the shape spew prints for each occupied slot.
type slot struct {
	Ref   uint32
	Value string
}

func dump(w io.Writer, format string, names *arena.SlotArena[string]) error {
	switch format {
	case "text":
		_, err := fmt.Fprintln(w, names)
		return err
	case "spew":
		var slots []slot
		for r, v := range names.All() {
			slots = append(slots, slot{Ref: r.Raw(), Value: v})
		}
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
		cfg.Fdump(w, slots)
		return nil
	case "log":
		logger := newLogger(w, zapcore.InfoLevel)
		logger.Info("slot arena", arenalog.Arena("arena", names))
		_ = logger.Sync()
		return nil
	case "cbor":
		data, err := names.MarshalCBOR()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
