package animation

import "github.com/elliotchance/orderedmap/v2"

// Clip describes one animation known to a Library.
type Clip struct {
	Name   string
	Length float32
	Loop   bool
}

// Library is an in-memory animation player. Clips keep their registration order, which
// is the order Names reports them in. A non-looping clip stops once its length has played,
// after which CurrentAnimation returns "".
type Library struct {
	clips      *orderedmap.OrderedMap[string, Clip]
	current    string
	position   float32
	speedScale float32
	plays      int
}

func NewLibrary(clips ...Clip) *Library {
	l := &Library{
		clips:      orderedmap.NewOrderedMap[string, Clip](),
		speedScale: 1,
	}
	for _, c := range clips {
		l.Add(c)
	}
	return l
}

func (l *Library) Add(c Clip) {
	l.clips.Set(c.Name, c)
}

func (l *Library) HasAnimation(name string) bool {
	_, ok := l.clips.Get(name)
	return ok
}

func (l *Library) CurrentAnimation() string {
	return l.current
}

func (l *Library) Play(name string) {
	if !l.HasAnimation(name) {
		return
	}
	l.current = name
	l.position = 0
	l.plays++
}

func (l *Library) SetSpeedScale(scale float32) {
	l.speedScale = scale
}

func (l *Library) SpeedScale() float32 {
	return l.speedScale
}

// Position is the playback head of the current clip in seconds.
func (l *Library) Position() float32 {
	return l.position
}

// PlayCount is the number of Play calls that started a clip.
func (l *Library) PlayCount() int {
	return l.plays
}

func (l *Library) Names() []string {
	return l.clips.Keys()
}

// Advance moves the playback head by dt scaled by the current speed.
func (l *Library) Advance(dt float32) {
	if l.current == "" {
		return
	}
	clip, _ := l.clips.Get(l.current)
	l.position += dt * l.speedScale
	if clip.Length <= 0 || l.position < clip.Length {
		return
	}
	if clip.Loop {
		for l.position >= clip.Length {
			l.position -= clip.Length
		}
		return
	}
	l.current = ""
	l.position = 0
}
