package hostkernel

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// Config lists the objects a kernel creates statically, like the static
// API of a system configuration file. Static objects can't be deleted.
//
//	semaphores:
//	  - id: 1
//	    max: 4
//	    initial: 4
//	tasks:
//	  - id: 2
//	    entry: worker
//	    priority: 4
//	    active: true
//	interrupts:
//	  - number: 5
//	    priority: -2
//	    handler: tick
type Config struct {
	Semaphores         []SemaphoreConfig         `yaml:"semaphores"`
	Eventflags         []EventflagConfig         `yaml:"eventflags"`
	Dataqueues         []DataqueueConfig         `yaml:"dataqueues"`
	PriorityDataqueues []PriorityDataqueueConfig `yaml:"prioritydataqueues"`
	Mutexes            []MutexConfig             `yaml:"mutexes"`
	MessageBuffers     []MessageBufferConfig     `yaml:"messagebuffers"`
	MemoryPools        []MemoryPoolConfig        `yaml:"memorypools"`
	Tasks              []TaskConfig              `yaml:"tasks"`
	Interrupts         []InterruptConfig         `yaml:"interrupts"`
}

// Order is the wait queue order of an object: "fifo" (the default) or
// "priority".
type Order string

func (o Order) atr() (abi.ATR, error) {
	switch o {
	case "", "fifo":
		return abi.TA_NULL, nil
	case "priority":
		return abi.TA_TPRI, nil
	}
	return 0, fmt.Errorf("unknown queue order %q", o)
}

type SemaphoreConfig struct {
	ID      abi.ID   `yaml:"id"`
	Order   Order    `yaml:"order"`
	Initial abi.Uint `yaml:"initial"`
	Max     abi.Uint `yaml:"max"`
}

type EventflagConfig struct {
	ID      abi.ID     `yaml:"id"`
	Order   Order      `yaml:"order"`
	Clear   bool       `yaml:"clear"`
	Initial abi.FLGPTN `yaml:"initial"`
}

type DataqueueConfig struct {
	ID       abi.ID   `yaml:"id"`
	Order    Order    `yaml:"order"`
	Capacity abi.Uint `yaml:"capacity"`
}

type PriorityDataqueueConfig struct {
	ID          abi.ID   `yaml:"id"`
	Order       Order    `yaml:"order"`
	Capacity    abi.Uint `yaml:"capacity"`
	MaxPriority abi.PRI  `yaml:"maxpri"`
}

// MutexConfig describes a mutex. Protocol is one of "none" (the default),
// "priority", "ceiling" or "inherit".
type MutexConfig struct {
	ID       abi.ID  `yaml:"id"`
	Protocol string  `yaml:"protocol"`
	Ceiling  abi.PRI `yaml:"ceiling"`
}

type MessageBufferConfig struct {
	ID         abi.ID   `yaml:"id"`
	Order      Order    `yaml:"order"`
	MaxSize    abi.Uint `yaml:"maxsize"`
	BufferSize uintptr  `yaml:"size"`
}

type MemoryPoolConfig struct {
	ID        abi.ID   `yaml:"id"`
	Order     Order    `yaml:"order"`
	BlockSize abi.Uint `yaml:"blocksize"`
	Blocks    abi.Uint `yaml:"blocks"`
}

// TaskConfig describes a task. Entry names a function in Options.Entries.
type TaskConfig struct {
	ID        abi.ID    `yaml:"id"`
	Entry     string    `yaml:"entry"`
	Priority  abi.PRI   `yaml:"priority"`
	StackSize uintptr   `yaml:"stack"`
	Exinf     abi.EXINF `yaml:"exinf"`
	Active    bool      `yaml:"active"`
}

// InterruptConfig describes an interrupt request line. Handler names a
// function in Options.Entries which runs whenever a request on the line is
// enabled and not masked.
type InterruptConfig struct {
	Number   abi.INTNO `yaml:"number"`
	Priority abi.PRI   `yaml:"priority"`
	Edge     bool      `yaml:"edge"`
	Enabled  bool      `yaml:"enabled"`
	Handler  string    `yaml:"handler"`
	Exinf    abi.EXINF `yaml:"exinf"`
}

// LoadConfig decodes a YAML configuration. Unknown fields are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode kernel configuration: %w", err)
	}
	return &cfg, nil
}

// LoadConfigFile reads a YAML configuration from path.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// staticObject validates and places one configured object.
func staticObject[T any](t *table[T], class string, id abi.ID, obj *T, er abi.ER) error {
	if er != abi.E_OK {
		return fmt.Errorf("%s %d: %s", class, id, ercdName(er))
	}
	if id <= 0 {
		return fmt.Errorf("%s %d: invalid ID", class, id)
	}
	if _, er := t.get(id); er == abi.E_OK {
		return fmt.Errorf("%s %d: duplicate ID", class, id)
	}
	t.place(id, obj, true)
	return nil
}

func (k *Kernel) apply(cfg *Config, entries map[string]abi.TASK) error {
	for _, c := range cfg.Semaphores {
		atr, err := c.Order.atr()
		if err != nil {
			return fmt.Errorf("semaphore %d: %w", c.ID, err)
		}
		sem, er := newSemaphore(&abi.T_CSEM{Sematr: atr, Isemcnt: c.Initial, Maxsem: c.Max})
		if err := staticObject(&k.sems, "semaphore", c.ID, sem, er); err != nil {
			return err
		}
	}

	for _, c := range cfg.Eventflags {
		atr, err := c.Order.atr()
		if err != nil {
			return fmt.Errorf("eventflag %d: %w", c.ID, err)
		}
		if c.Clear {
			atr |= abi.TA_CLR
		}
		flg, er := newEventflag(&abi.T_CFLG{Flgatr: atr, Iflgptn: c.Initial})
		if err := staticObject(&k.flgs, "eventflag", c.ID, flg, er); err != nil {
			return err
		}
	}

	for _, c := range cfg.Dataqueues {
		atr, err := c.Order.atr()
		if err != nil {
			return fmt.Errorf("dataqueue %d: %w", c.ID, err)
		}
		dtq, er := newDataqueue(&abi.T_CDTQ{Dtqatr: atr, Dtqcnt: c.Capacity})
		if err := staticObject(&k.dtqs, "dataqueue", c.ID, dtq, er); err != nil {
			return err
		}
	}

	for _, c := range cfg.PriorityDataqueues {
		atr, err := c.Order.atr()
		if err != nil {
			return fmt.Errorf("priority dataqueue %d: %w", c.ID, err)
		}
		pdq, er := newPriorityDataqueue(&abi.T_CPDQ{Pdqatr: atr, Pdqcnt: c.Capacity, Maxdpri: c.MaxPriority})
		if err := staticObject(&k.pdqs, "priority dataqueue", c.ID, pdq, er); err != nil {
			return err
		}
	}

	for _, c := range cfg.Mutexes {
		var atr abi.ATR
		switch c.Protocol {
		case "", "none":
			atr = abi.TA_NULL
		case "priority":
			atr = abi.TA_TPRI
		case "ceiling":
			atr = abi.TA_CEILING
		case "inherit":
			atr = abi.TA_INHERIT
		default:
			return fmt.Errorf("mutex %d: unknown protocol %q", c.ID, c.Protocol)
		}
		mtx, er := newMutex(&abi.T_CMTX{Mtxatr: atr, Ceilpri: c.Ceiling})
		if err := staticObject(&k.mtxs, "mutex", c.ID, mtx, er); err != nil {
			return err
		}
	}

	for _, c := range cfg.MessageBuffers {
		atr, err := c.Order.atr()
		if err != nil {
			return fmt.Errorf("message buffer %d: %w", c.ID, err)
		}
		mbf, er := newMessageBuffer(&abi.T_CMBF{Mbfatr: atr, Maxmsz: c.MaxSize, Mbfsz: c.BufferSize})
		if err := staticObject(&k.mbfs, "message buffer", c.ID, mbf, er); err != nil {
			return err
		}
	}

	for _, c := range cfg.MemoryPools {
		atr, err := c.Order.atr()
		if err != nil {
			return fmt.Errorf("memory pool %d: %w", c.ID, err)
		}
		mpf, er := newMemoryPool(&abi.T_CMPF{Mpfatr: atr, Blkcnt: c.Blocks, Blksz: c.BlockSize})
		if err := staticObject(&k.mpfs, "memory pool", c.ID, mpf, er); err != nil {
			if mpf != nil {
				freeRegion(mpf.region)
			}
			return err
		}
	}

	var active []*task
	for _, c := range cfg.Tasks {
		if c.ID == HostTaskID {
			return fmt.Errorf("task %d: reserved for the host task", c.ID)
		}
		entry, ok := entries[c.Entry]
		if !ok {
			return fmt.Errorf("task %d: unknown entry %q", c.ID, c.Entry)
		}
		stksz := c.StackSize
		if stksz == 0 {
			stksz = minStackSize
		}
		tsk, er := newTask(&abi.T_CTSK{Exinf: c.Exinf, Task: entry, Itskpri: c.Priority, Stksz: stksz})
		if err := staticObject(&k.tsks, "task", c.ID, tsk, er); err != nil {
			return err
		}
		tsk.id = c.ID
		if c.Active {
			active = append(active, tsk)
		}
	}

	for _, c := range cfg.Interrupts {
		var handler abi.TASK
		if c.Handler != "" {
			var ok bool
			if handler, ok = entries[c.Handler]; !ok {
				return fmt.Errorf("interrupt %d: unknown handler %q", c.Number, c.Handler)
			}
		}
		l, er := newLine(&c, handler)
		if er != abi.E_OK {
			return fmt.Errorf("interrupt %d: %s", c.Number, ercdName(er))
		}
		if k.lines[c.Number] != nil {
			return fmt.Errorf("interrupt %d: duplicate number", c.Number)
		}
		k.lines[c.Number] = l
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	for _, t := range active {
		k.start(t)
	}
	return nil
}
