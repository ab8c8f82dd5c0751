// Package replay drives a game without a window: a YAML script supplies the
// input frame by frame and a capture keeps the last presented surface.
package replay

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rotj-game/rotj/internal/display"
	"github.com/rotj-game/rotj/internal/input"
	"github.com/rotj-game/rotj/internal/render"
)

// Step is one line of a script. Exactly one field is set.
type Step struct {
	Key    string `yaml:"key"`    // press and release a key
	Hold   string `yaml:"hold"`   // keep a key down for Frames frames
	Frames int    `yaml:"frames"` // with Hold
	Wait   int    `yaml:"wait"`   // idle frames
	Resize []int  `yaml:"resize"` // [width, height]
	Quit   bool   `yaml:"quit"`
}

// Script is a parsed replay file.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Parse decodes and checks a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: parse script: %w", err)
	}
	var errs []error
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}
	return &s, nil
}

func (st Step) validate() error {
	set := 0
	for _, ok := range []bool{st.Key != "", st.Hold != "", st.Wait > 0, st.Resize != nil, st.Quit} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return errors.New("exactly one of key, hold, wait, resize or quit must be set")
	}
	for _, name := range []string{st.Key, st.Hold} {
		if name == "" {
			continue
		}
		if _, ok := input.ParseKey(name); !ok {
			return fmt.Errorf("unknown key %q", name)
		}
	}
	if st.Hold != "" && st.Frames <= 0 {
		return errors.New("hold needs a positive frame count")
	}
	if st.Resize != nil && (len(st.Resize) != 2 || st.Resize[0] <= 0 || st.Resize[1] <= 0) {
		return fmt.Errorf("resize %v must be [width, height]", st.Resize)
	}
	return nil
}

// Frame is the input one frame sees.
type Frame struct {
	Events  []input.Event
	Pressed input.KeySet
}

type player struct {
	steps  []Step
	repeat func() input.Repeat
	tps    int
	step   int
	held   int // frames the current hold step has run
	waited int
}

func newPlayer(steps []Step, repeat func() input.Repeat, tps int) *player {
	return &player{steps: steps, repeat: repeat, tps: tps}
}

// frame returns the input of the next frame, or false once the script is
// used up. A held key fires on its first frame and then follows the repeat
// policy, the way a real keyboard would.
func (p *player) frame() (Frame, bool) {
	for p.step < len(p.steps) {
		st := p.steps[p.step]
		switch {
		case st.Key != "":
			p.step++
			k, _ := input.ParseKey(st.Key)
			return Frame{
				Events:  []input.Event{input.Press(k), input.Release(k)},
				Pressed: input.Keys(k),
			}, true
		case st.Hold != "":
			k, _ := input.ParseKey(st.Hold)
			p.held++
			f := Frame{Pressed: input.Keys(k)}
			if p.repeat().Fires(p.held, p.tps) {
				f.Events = append(f.Events, input.Press(k))
			}
			if p.held >= st.Frames {
				f.Events = append(f.Events, input.Release(k))
				p.held = 0
				p.step++
			}
			return f, true
		case st.Wait > 0:
			p.waited++
			if p.waited >= st.Wait {
				p.waited = 0
				p.step++
			}
			return Frame{}, true
		case st.Resize != nil:
			p.step++
			return Frame{Events: []input.Event{input.Resize(st.Resize[0], st.Resize[1])}}, true
		case st.Quit:
			p.step++
			return Frame{Events: []input.Event{input.Quit()}}, true
		default:
			p.step++
		}
	}
	return Frame{}, false
}

// Input feeds a script to the game. Once the script ends it asks the game
// to quit.
type Input struct {
	player  *player
	pressed input.KeySet
	repeat  input.Repeat
	frames  int
}

// NewInput plays s at tps frames per second.
func NewInput(s *Script, tps int) *Input {
	in := &Input{}
	in.player = newPlayer(s.Steps, func() input.Repeat { return in.repeat }, tps)
	return in
}

func (in *Input) Poll() []input.Event {
	f, ok := in.player.frame()
	if !ok {
		in.pressed = 0
		return []input.Event{input.Quit()}
	}
	in.frames++
	in.pressed = f.Pressed
	return f.Events
}

func (in *Input) Pressed() input.KeySet { return in.pressed }

func (in *Input) SetRepeat(r input.Repeat) { in.repeat = r }

// Played returns the number of scripted frames consumed.
func (in *Input) Played() int { return in.frames }

// Capture records what the game presents.
type Capture struct {
	Frames int
	Last   string
	Region display.FitRegion
}

func (c *Capture) Present(buf *render.CellBuffer, region display.FitRegion) {
	c.Frames++
	c.Last = buf.String()
	c.Region = region
}
