package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/phanxgames/dnd"
)

// options are the resolved settings of one replay.
type options struct {
	Scene          string
	Script         string
	Container      string
	Source         string
	Dropzone       string
	Handle         string
	Backend        string
	DeadZone       float64
	TouchDelay     time.Duration
	TouchSlop      float64
	NativeInterval time.Duration
	Frame          time.Duration
	MaxFrames      int
	ShowDrag       bool
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Replay a script and print the emitted events.",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(viper.GetString("log-level"))
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			opts := options{
				Scene:          viper.GetString("scene"),
				Script:         viper.GetString("script"),
				Container:      viper.GetString("container"),
				Source:         viper.GetString("source"),
				Dropzone:       viper.GetString("dropzone"),
				Handle:         viper.GetString("handle"),
				Backend:        viper.GetString("backend"),
				DeadZone:       viper.GetFloat64("dead-zone"),
				TouchDelay:     viper.GetDuration("touch-delay"),
				TouchSlop:      viper.GetFloat64("touch-slop"),
				NativeInterval: viper.GetDuration("native-interval"),
				Frame:          viper.GetDuration("frame"),
				MaxFrames:      viper.GetInt("max-frames"),
				ShowDrag:       viper.GetBool("show-drag"),
			}
			sceneData, err := os.ReadFile(opts.Scene)
			if err != nil {
				return fmt.Errorf("read scene: %w", err)
			}
			scriptData, err := os.ReadFile(opts.Script)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			return replay(opts, sceneData, scriptData, cmd.OutOrStdout(), log)
		},
	}
	f := cmd.Flags()
	f.String("scene", "", "scene description (YAML or JSON)")
	f.String("script", "", "gesture script (YAML or JSON)")
	f.String("container", "", "name of the container node (default: scene root)")
	f.String("source", ".item", "source selector")
	f.String("dropzone", ".zone", "dropzone selector")
	f.String("handle", "", "handle selector")
	f.String("backend", "pointer", "input backend (pointer, touch, native)")
	f.Float64("dead-zone", 0, "pointer dead zone")
	f.Duration("touch-delay", dnd.DefaultTouchDelay, "touch long-press delay")
	f.Float64("touch-slop", dnd.DefaultTouchSlop, "touch long-press slop")
	f.Duration("native-interval", dnd.DefaultNativeInterval, "native synthetic event cadence")
	f.Duration("frame", time.Second/60, "simulated frame length")
	f.Int("max-frames", 10000, "give up after this many frames")
	f.Bool("show-drag", false, "also print drag and drag:over events")
	_ = cmd.MarkFlagRequired("scene")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

// errScriptTimeout is returned when the script does not finish in MaxFrames.
var errScriptTimeout = errors.New("script did not finish")

// replay builds the scene, runs the script to completion and writes one line
// per emitted event to out.
func replay(opts options, sceneData, scriptData []byte, out io.Writer, log *zap.Logger) error {
	backend, err := dnd.ParseBackend(opts.Backend)
	if err != nil {
		return err
	}
	runner, err := dnd.LoadScript(scriptData)
	if err != nil {
		return err
	}

	scene := dnd.NewScene()
	scene.SetLogger(log)
	defer scene.Dispose()
	if err := scene.LoadYAML(sceneData); err != nil {
		return err
	}

	container := scene.Root()
	if opts.Container != "" {
		if container = scene.Root().Find(opts.Container); container == nil {
			return fmt.Errorf("container %q not found", opts.Container)
		}
	}
	inst, err := scene.NewInstance(container, dnd.Config{
		Source:         opts.Source,
		Dropzone:       opts.Dropzone,
		Handle:         opts.Handle,
		Backend:        backend,
		DeadZone:       opts.DeadZone,
		TouchDelay:     opts.TouchDelay,
		TouchSlop:      opts.TouchSlop,
		NativeInterval: opts.NativeInterval,
	})
	if err != nil {
		return err
	}

	for _, k := range []dnd.EventKind{
		dnd.EventDrag, dnd.EventDragStart, dnd.EventDragEnter, dnd.EventDragOver,
		dnd.EventDragLeave, dnd.EventDragEnd, dnd.EventDrop, dnd.EventDragPrevent,
	} {
		if !opts.ShowDrag && (k == dnd.EventDrag || k == dnd.EventDragOver) {
			continue
		}
		inst.On(k, func(e dnd.Event) error {
			_, err := fmt.Fprintln(out, formatEvent(e))
			return err
		})
	}

	frame := opts.Frame
	if frame <= 0 {
		frame = time.Second / 60
	}
	scene.SetScriptRunner(runner)
	for n := 0; !runner.Done(); n++ {
		if opts.MaxFrames > 0 && n >= opts.MaxFrames {
			return fmt.Errorf("%w after %d frames", errScriptTimeout, n)
		}
		scene.Update(frame)
	}
	log.Debug("replay finished", zap.Duration("elapsed", scene.Scheduler().Now()))
	return nil
}

// formatEvent renders e as "kind source=<name> key=value ...".
func formatEvent(e dnd.Event) string {
	var b strings.Builder
	base := e.Common()
	b.WriteString(e.Kind().String())
	fmt.Fprintf(&b, " source=%s", base.Source)
	switch ev := e.(type) {
	case *dnd.Drag:
		if ev.Target != nil {
			fmt.Fprintf(&b, " target=%s", ev.Target)
		}
	case *dnd.DragEnter:
		fmt.Fprintf(&b, " target=%s", ev.Target)
		if ev.Previous != nil {
			fmt.Fprintf(&b, " previous=%s", ev.Previous)
		}
	case *dnd.DragOver:
		fmt.Fprintf(&b, " target=%s", ev.Target)
	case *dnd.DragLeave:
		fmt.Fprintf(&b, " target=%s", ev.Target)
	case *dnd.Drop:
		fmt.Fprintf(&b, " target=%s", ev.Target)
	case *dnd.DragPrevent:
		if ev.Target != nil {
			fmt.Fprintf(&b, " target=%s", ev.Target)
		}
		fmt.Fprintf(&b, " phase=%s", ev.Phase)
	case *dnd.DragEnd:
		if ev.Target != nil {
			fmt.Fprintf(&b, " target=%s", ev.Target)
		}
		fmt.Fprintf(&b, " dropped=%t canceled=%t", ev.Dropped, ev.Canceled)
	}
	return b.String()
}
