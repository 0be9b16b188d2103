package main

import (
	"context"
	"io"
	"slices"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/manuelroemer/NCommons-sub000/util/heap"
	"github.com/manuelroemer/NCommons-sub000/util/priorityqueue"
)

type topArgs struct {
	orderArgs
	Count int
}

func (me *tool) topLines(_ context.Context, cmd *cli.Command) error {
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

	count, err := intFlag(cmd, "count")
	if err != nil {
		return err
	}

	return topEntries(topArgs{
		orderArgs: orderArgsFromCommand(cmd),
		Count:     count,
	}, readers, me.stdout, logger)
}

// topEntries writes the args.Count highest-priority lines, highest first. Only args.Count+1 lines
// are held at a time: the queue is ordered inversely, so its head is always the weakest candidate.
func topEntries(args topArgs, readers []io.Reader, writer io.Writer, logger *zap.Logger) error {
	queue, err := priorityqueue.NewFunc(priorityqueue.Args[entry]{
		Comparer: heap.Reverse(args.comparer()),
	})
	if err != nil {
		return err
	}

	var read int
	for _, reader := range readers {
		for item, err := range readEntries(reader, args.Numeric) {
			if err != nil {
				return err
			}
			read++
			queue.Enqueue(item)
			if queue.Count() > args.Count {
				_, _ = queue.TryDequeue()
			}
		}
	}

	logger.Debug("read input", zap.Int("count", read), zap.Int("kept", queue.Count()))

	top := queue.DequeueAll()
	slices.Reverse(top)

	_, err = writeEntries(writer, slices.Values(top))
	return err
}
