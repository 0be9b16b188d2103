package main

import (
	"context"
	"io"
	"iter"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/manuelroemer/NCommons-sub000/util"
	"github.com/manuelroemer/NCommons-sub000/util/heap"
)

type sortArgs struct {
	orderArgs
	Capacity util.Optional[int]
	Unique   bool
}

func (me *tool) sortLines(_ context.Context, cmd *cli.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	readers, closeAll, err := openInputs(me.stdin, cmd.Args().Slice())
	if err != nil {
		return err
	}
	defer closeAll()

	args := sortArgs{
		orderArgs: orderArgsFromCommand(cmd),
		Unique:    cmd.Bool("unique"),
	}
	if cmd.IsSet("capacity") {
		capacity, err := intFlag(cmd, "capacity")
		if err != nil {
			return err
		}
		args.Capacity = util.Some(capacity)
	}

	return sortEntries(args, readers, me.stdout, logger)
}

func sortEntries(args sortArgs, readers []io.Reader, writer io.Writer, logger *zap.Logger) error {
	queue, err := heap.NewFunc(heap.Args[entry]{
		Capacity: args.Capacity,
		Comparer: args.comparer(),
	})
	if err != nil {
		return err
	}

	for _, reader := range readers {
		for item, err := range readEntries(reader, args.Numeric) {
			if err != nil {
				return err
			}
			queue.Push(item)
		}
	}

	logger.Debug("read input",
		zap.Int("count", queue.Count()),
		zap.Int("capacity", queue.Capacity()),
	)

	entries := heap.Drain[entry](queue)
	if args.Unique {
		entries = dropDuplicates(entries)
	}

	written, err := writeEntries(writer, entries)
	logger.Debug("wrote output", zap.Int("count", written))
	return err
}

// dropDuplicates skips lines equal to the previous one.
func dropDuplicates(entries iter.Seq[entry]) iter.Seq[entry] {
	return func(yield func(entry) bool) {
		var (
			last      string
			lastIsSet bool
		)
		for item := range entries {
			if lastIsSet && item.text == last {
				continue
			}
			last, lastIsSet = item.text, true
			if !yield(item) {
				return
			}
		}
	}
}
