// Package debug is an interactive terminal front end: raw key presses drive a Keyboard
// input source and a status line tracks the running simulation.
package debug

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/term"

	"github.com/Versifine/stride/internal/controller"
	"github.com/Versifine/stride/internal/event"
)

const defaultRenderEvery = 3

// Session is the slice of a running simulation the console reads and steers. Its methods
// are only called from Observe, on the simulation goroutine.
type Session interface {
	Snapshot() controller.Snapshot
	Position() mgl64.Vec3
	Teleport(pos mgl64.Vec3)
}

type Console struct {
	keys        *Keyboard
	out         io.Writer
	quit        context.CancelFunc
	renderEvery int

	outMu sync.Mutex

	mu          sync.Mutex
	commandMode bool
	commandBuf  []rune
	pending     []func(Session)
	statusWidth int
	observed    int
}

// NewConsole writes to out and calls quit when the user asks to leave. Raw mode swallows
// Ctrl-C, so quit is the only way out.
func NewConsole(keys *Keyboard, out io.Writer, quit context.CancelFunc) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{
		keys:        keys,
		out:         out,
		quit:        quit,
		renderEvery: defaultRenderEvery,
	}
}

// Start puts the terminal behind in into raw mode when it is one, and reads keys on a
// background goroutine until ctx is done or input ends. The returned restore must be
// called before the process exits.
func (c *Console) Start(ctx context.Context, in *os.File) (func(), error) {
	if c == nil || c.keys == nil {
		return nil, fmt.Errorf("console keyboard is nil")
	}
	restore := func() {}
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("set terminal raw mode: %w", err)
		}
		restore = func() {
			_ = term.Restore(fd, oldState)
			c.print("\r\n")
		}
	}

	c.print("[debug] console started (W/A/S/D pulse, Space jump, ] sprint, arrows look, M capture, X clear, : command, Q quit)\r\n")
	go func() {
		if err := c.readLoop(ctx, bufio.NewReader(in)); err != nil {
			c.printf("\r\n[debug] %v\r\n", err)
		}
	}()
	return restore, nil
}

func (c *Console) readLoop(ctx context.Context, reader *bufio.Reader) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		b, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF || ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read console input: %w", err)
		}
		c.handleKey(reader, b)
	}
}

func (c *Console) handleKey(reader *bufio.Reader, b byte) {
	if c.isCommandMode() {
		c.handleCommandByte(b)
		return
	}

	switch b {
	case ':':
		c.enterCommandMode()
	case 'w', 'W':
		c.keys.PressForward()
	case 's', 'S':
		c.keys.PressBackward()
	case 'a', 'A':
		c.keys.PressLeft()
	case 'd', 'D':
		c.keys.PressRight()
	case ' ':
		c.keys.PressJump()
	case ']':
		c.keys.ToggleSprint()
	case 'm', 'M':
		c.keys.PressToggleCapture()
	case 'x', 'X':
		c.keys.Clear()
	case 'q', 'Q', 3: // 3 is Ctrl-C in raw mode
		c.requestQuit()
	case 27: // ESC + arrow sequence
		next, err := reader.ReadByte()
		if err != nil || next != '[' {
			return
		}
		arrow, err := reader.ReadByte()
		if err != nil {
			return
		}
		switch arrow {
		case 'D': // left
			c.keys.Look(-ArrowPixels, 0)
		case 'C': // right
			c.keys.Look(ArrowPixels, 0)
		case 'A': // up
			c.keys.Look(0, -ArrowPixels)
		case 'B': // down
			c.keys.Look(0, ArrowPixels)
		}
	}
}

func (c *Console) requestQuit() {
	if c.quit != nil {
		c.quit()
	}
}

func (c *Console) enterCommandMode() {
	c.mu.Lock()
	c.commandMode = true
	c.commandBuf = c.commandBuf[:0]
	c.mu.Unlock()
	c.print("\r\n:")
}

func (c *Console) handleCommandByte(b byte) {
	switch b {
	case 13, 10: // Enter
		c.mu.Lock()
		cmd := strings.TrimSpace(string(c.commandBuf))
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()

		c.print("\r\n")
		if cmd != "" {
			c.executeCommand(cmd)
		}
	case 27: // ESC cancels
		c.mu.Lock()
		c.commandMode = false
		c.commandBuf = c.commandBuf[:0]
		c.mu.Unlock()
		c.print("\r\n[debug] command cancelled\r\n")
	case 8, 127: // Backspace
		c.mu.Lock()
		if len(c.commandBuf) > 0 {
			c.commandBuf = c.commandBuf[:len(c.commandBuf)-1]
		}
		buf := string(c.commandBuf)
		c.mu.Unlock()
		c.printf("\r:%s \r:%s", buf, buf)
	default:
		if b < 32 || b > 126 {
			return
		}
		c.mu.Lock()
		c.commandBuf = append(c.commandBuf, rune(b))
		buf := string(c.commandBuf)
		c.mu.Unlock()
		c.printf("\r:%s", buf)
	}
}

func (c *Console) executeCommand(cmd string) {
	parts := strings.Fields(cmd)
	switch parts[0] {
	case "help":
		c.printHelp()
	case "quit", "q":
		c.requestQuit()
	case "state":
		c.enqueue(func(s Session) {
			snap := s.Snapshot()
			pos := s.Position()
			v := snap.Kinematic.Velocity
			c.printf("[debug] pos=(%.3f,%.3f,%.3f) vel=(%.3f,%.3f,%.3f) ground=%t state=%s clip=%q fov=%.1f captured=%t\r\n",
				pos.X(), pos.Y(), pos.Z(),
				v.X(), v.Y(), v.Z(),
				snap.Kinematic.Grounded, snap.Animation, snap.Clip,
				snap.Presentation.Fov, snap.Captured,
			)
		})
	case "tp":
		if len(parts) != 4 {
			c.print("[debug] usage: :tp <x> <y> <z>\r\n")
			return
		}
		x, err1 := strconv.ParseFloat(parts[1], 64)
		y, err2 := strconv.ParseFloat(parts[2], 64)
		z, err3 := strconv.ParseFloat(parts[3], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			c.print("[debug] invalid tp args\r\n")
			return
		}
		target := mgl64.Vec3{x, y, z}
		c.enqueue(func(s Session) {
			s.Teleport(target)
			c.printf("[debug] teleported to (%.3f, %.3f, %.3f)\r\n", x, y, z)
		})
	default:
		c.printf("[debug] unknown command: %s\r\n", parts[0])
	}
}

func (c *Console) enqueue(fn func(Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, fn)
}

// Observe runs queued commands against s and refreshes the status line. Call it once per
// tick from the simulation goroutine.
func (c *Console) Observe(s Session) {
	c.mu.Lock()
	pending := c.pending
	c.pending = nil
	c.observed++
	render := c.observed%c.renderEvery == 0 && !c.commandMode
	c.mu.Unlock()

	for _, fn := range pending {
		fn(s)
	}
	if render {
		c.renderStatusLine(s)
	}
}

// Subscribe prints movement events from bus above the status line.
func (c *Console) Subscribe(bus *event.Bus) {
	bus.Subscribe(event.EventJump, func(raw any) {
		if evt, ok := raw.(event.JumpEvent); ok {
			c.printf("\r\n[debug] tick %d: left the ground at y=%.2f\r\n", evt.Tick, evt.Position.Y())
		}
	})
	bus.Subscribe(event.EventLand, func(raw any) {
		if evt, ok := raw.(event.LandEvent); ok {
			c.printf("\r\n[debug] tick %d: landed after %d ticks at %.2f m/s\r\n", evt.Tick, evt.Airtime, evt.FallSpeed)
		}
	})
}

func (c *Console) printHelp() {
	c.print("[debug] keys:\r\n" +
		"  W/S/A/D: pulse movement\r\n" +
		"  Space: jump\r\n" +
		"  ]: toggle sprint\r\n" +
		"  Arrows: look\r\n" +
		"  M: toggle mouse capture\r\n" +
		"  X: clear all input\r\n" +
		"  Q: quit\r\n" +
		"  : enter command mode\r\n" +
		"[debug] commands:\r\n" +
		"  :tp <x> <y> <z>\r\n" +
		"  :state\r\n" +
		"  :help\r\n" +
		"  :quit\r\n")
}

func (c *Console) renderStatusLine(s Session) {
	snap := s.Snapshot()
	pos := s.Position()
	axes := c.keys.MovementAxes()

	line := fmt.Sprintf(
		"[MOVE:%+.0f,%+.0f SPR:%s CAP:%s | YAW:%.1f PIT:%.1f | X:%.2f Y:%.2f Z:%.2f ground:%t | %s FOV:%.1f]",
		axes.X(), axes.Y(),
		boolLabel(c.keys.SprintHeld()),
		boolLabel(snap.Captured),
		mgl32.RadToDeg(snap.Kinematic.Yaw),
		mgl32.RadToDeg(snap.Kinematic.Pitch),
		pos.X(), pos.Y(), pos.Z(),
		snap.Kinematic.Grounded,
		snap.Animation,
		snap.Presentation.Fov,
	)

	c.mu.Lock()
	padding := ""
	if c.statusWidth > len(line) {
		padding = strings.Repeat(" ", c.statusWidth-len(line))
	} else {
		c.statusWidth = len(line)
	}
	c.mu.Unlock()

	c.printf("\r%s%s", line, padding)
}

func (c *Console) isCommandMode() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.commandMode
}

func (c *Console) print(s string) {
	c.outMu.Lock()
	defer c.outMu.Unlock()
	_, _ = io.WriteString(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	c.print(fmt.Sprintf(format, args...))
}

func boolLabel(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
