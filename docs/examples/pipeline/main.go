// Command pipeline feeds a data queue from a producer task and sums the
// values on the consuming side.
//
// Without kernel build tags it runs on the in-process host kernel:
//
//	go run ./docs/examples/pipeline
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/dataqueue"
	"github.com/solid-rs/itron-rs/semaphore"
	"github.com/solid-rs/itron-rs/task"
)

const items = 10

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("pipeline failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	logger.Info("starting", "kernel", itron.KernelName)

	queue, err := dataqueue.Build(4).QueueOrder(itron.TaskPriority).Finish()
	if err != nil {
		return fmt.Errorf("create queue: %w", err)
	}
	defer queue.Close()

	done, err := semaphore.Build().InitialCount(0).MaxCount(1).Finish()
	if err != nil {
		return fmt.Errorf("create semaphore: %w", err)
	}
	defer done.Close()

	q, d := queue.Ref(), done.Ref()
	producer, err := task.Build(func() {
		for i := dataqueue.Element(1); i <= items; i++ {
			if err := q.Send(i); err != nil {
				logger.Error("send", "value", i, "err", err)
				break
			}
		}
		if err := d.Signal(); err != nil {
			logger.Error("signal completion", "err", err)
		}
	}, 4096, 4).ActivateOnCreate(true).Finish()
	if err != nil {
		return fmt.Errorf("create producer: %w", err)
	}
	defer func() {
		if err := awaitDormant(producer.Ref()); err != nil {
			logger.Warn("producer still active", "err", err)
		}
		producer.Close()
	}()

	tmo := itron.MustTimeout(itron.TimeoutFromStd(time.Second))

	var (
		eg  errgroup.Group
		sum dataqueue.Element
	)
	eg.Go(func() error {
		for range items {
			v, err := q.RecvTimeout(tmo)
			if err != nil {
				return fmt.Errorf("receive: %w", err)
			}
			sum += v
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	if err := d.WaitTimeout(tmo); err != nil {
		return fmt.Errorf("wait for producer: %w", err)
	}

	logger.Info("done", "items", items, "sum", sum, "producer", producer)
	return nil
}

var errStillActive = errors.New("task did not become dormant")

// awaitDormant waits for a task to return from its entry point.
func awaitDormant(r task.Ref) error {
	pause := itron.MustDuration(itron.DurationFromMillis(1))
	for range 100 {
		state, err := r.State()
		if err != nil {
			return err
		}
		if state == task.Dormant {
			return nil
		}
		if err := task.Delay(pause); err != nil {
			return err
		}
	}
	return errStillActive
}
