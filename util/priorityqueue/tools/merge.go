package main

import (
	"context"
	"io"
	"iter"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/manuelroemer/NCommons-sub000/util/merge"
)

type mergeArgs struct {
	orderArgs
	Unique bool
}

func (me *tool) mergeLines(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return errors.New("usage: merge src_path1 [src_path_2 ...]")
	}

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

	return mergeEntries(mergeArgs{
		orderArgs: orderArgsFromCommand(cmd),
		Unique:    cmd.Bool("unique"),
	}, readers, me.stdout, logger)
}

// mergeEntries merges inputs that are each sorted smallest first (largest first with Reverse)
// into one sorted output.
func mergeEntries(args mergeArgs, readers []io.Reader, writer io.Writer, logger *zap.Logger) error {
	compare := args.comparer()

	var readErr error
	srcs := make([]iter.Seq[entry], 0, len(readers))
	for _, reader := range readers {
		srcs = append(srcs, func(yield func(entry) bool) {
			for item, err := range readEntries(reader, args.Numeric) {
				if err != nil {
					readErr = err
					return
				}
				if !yield(item) {
					return
				}
			}
		})
	}

	mergeFunc := merge.Sorted[entry]
	if args.Unique {
		mergeFunc = merge.Unique[entry]
	}

	written, writeErr := writeEntries(writer, mergeFunc(compare, srcs...))
	logger.Debug("merged inputs", zap.Int("sources", len(srcs)), zap.Int("count", written))

	if readErr != nil {
		return readErr
	}
	return writeErr
}
