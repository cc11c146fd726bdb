//go:build profile

package profiler

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"
)

// Enabled reports whether scopes are recorded in this build.
const Enabled = true

// Init sizes the event ring; scopes started before Init are dropped.
// Example: profiler.Init(1 << 16)
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	ring.reset(capacity)
}

// Start opens a named scope and returns the func that closes it:
//
//	defer profiler.Start("Program.link")()
func Start(name string) func() {
	if !ring.ready.Load() {
		return func() {}
	}
	frame := names.id(name)
	opened := time.Now().UnixNano()
	ring.push(event{at: opened, frame: frame, open: true})
	return func() {
		closed := time.Now().UnixNano()
		if closed < opened {
			closed = opened
		}
		ring.push(event{at: closed, frame: frame})
	}
}

// Dump writes the recorded scopes to path as a speedscope evented profile.
func Dump(path string) error {
	evs := ring.snapshot()
	if len(evs) == 0 {
		return fmt.Errorf("profiler: no events to dump")
	}
	doc := speedscope(evs, names.all())
	if len(doc.Profiles[0].Events) == 0 {
		return fmt.Errorf("profiler: no balanced scopes in %d events", len(evs))
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// OpenGraph dumps into the temp dir and launches speedscope on the file if
// it is on PATH. The dump path is returned either way.
func OpenGraph() (string, error) {
	path := filepath.Join(os.TempDir(), "lighting.speedscope.json")
	if err := Dump(path); err != nil {
		return "", err
	}
	if bin, err := exec.LookPath("speedscope"); err == nil {
		if err := exec.Command(bin, path).Start(); err != nil {
			return path, fmt.Errorf("launch speedscope: %w", err)
		}
	}
	return path, nil
}

// ---------- event ring ----------

type event struct {
	at    int64 // unix ns
	frame int
	open  bool
}

type eventRing struct {
	ready atomic.Bool
	next  atomic.Uint64
	evs   []event
}

var ring eventRing

func (r *eventRing) reset(capacity int) {
	r.ready.Store(false)
	r.evs = make([]event, capacity)
	r.next.Store(0)
	r.ready.Store(true)
}

func (r *eventRing) push(e event) {
	i := r.next.Add(1) - 1
	r.evs[i%uint64(len(r.evs))] = e
}

// snapshot returns the surviving events in write order.
func (r *eventRing) snapshot() []event {
	n := r.next.Load()
	size := uint64(len(r.evs))
	start := uint64(0)
	if n > size {
		start = n - size
	}
	out := make([]event, 0, n-start)
	for i := start; i < n; i++ {
		out = append(out, r.evs[i%size])
	}
	return out
}

// ---------- scope names ----------

type interner struct {
	mu    sync.Mutex
	list  []string
	index map[string]int
}

var names = interner{index: map[string]int{}}

func (in *interner) id(name string) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[name]; ok {
		return id
	}
	in.index[name] = len(in.list)
	in.list = append(in.list, name)
	return len(in.list) - 1
}

func (in *interner) all() []string {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]string(nil), in.list...)
}

// ---------- speedscope ----------

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Exporter string      `json:"exporter,omitempty"`
	Name     string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // "O" or "C"
	At    int64  `json:"at"`   // µs since the first event
	Frame int    `json:"frame"`
}

// speedscope converts ring events into a balanced evented profile. Closes
// without a matching open (lost to ring wrap-around) are skipped and scopes
// still open at the end are closed at the last timestamp.
func speedscope(evs []event, frameNames []string) ssFile {
	frames := make([]ssFrame, len(frameNames))
	for i, n := range frameNames {
		frames[i] = ssFrame{Name: n}
	}

	base := evs[0].at
	var last int64
	var stack []int
	out := make([]ssEvent, 0, len(evs))
	for _, e := range evs {
		at := max((e.at-base)/1000, last)
		if e.open {
			stack = append(stack, e.frame)
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != e.frame {
				continue
			}
			stack = stack[:len(stack)-1]
		}
		typ := "C"
		if e.open {
			typ = "O"
		}
		out = append(out, ssEvent{Type: typ, At: at, Frame: e.frame})
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "lighting",
			Unit:     "microseconds",
			EndValue: last,
			Events:   out,
		}},
		Exporter: "lighting-profiler",
		Name:     "lighting capture",
	}
}
