package player

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/parkour/game"
	"github.com/oomph-ac/parkour/player/event"
	"github.com/oomph-ac/parkour/settings"
	"github.com/oomph-ac/parkour/utils"
	"github.com/sirupsen/logrus"
)

// Player is the movement core of a single player. It is not safe for concurrent use: every method is
// expected to be called from the frame loop.
type Player struct {
	log      *logrus.Logger
	world    WorldProvider
	settings settings.Settings
	sink     event.Sink

	state State

	bb        cube.BBox
	halfWidth float32

	lastCam Camera

	sprinting        bool
	jumpHeld         bool
	slideHeld        bool
	jumpCutAvailable bool

	debug bool
}

// New creates a new player standing at pos. The settings are copied and treated as read-only for the
// lifetime of the player.
func New(log *logrus.Logger, w WorldProvider, s settings.Settings, pos mgl32.Vec3) *Player {
	p := &Player{
		log:       log,
		world:     w,
		settings:  s,
		sink:      event.NopSink{},
		bb:        game.AABBFromDimensions(s.Player.Width, s.Player.Height),
		halfWidth: s.Player.Width / 2,
		lastCam:   CameraFromAngles(0, 0),
	}
	p.Teleport(pos)
	return p
}

// Handle sets the sink that receives the telemetry emitted by the player. A nil sink discards events.
func (p *Player) Handle(sink event.Sink) {
	if sink == nil {
		sink = event.NopSink{}
	}
	p.sink = sink
}

// SetDebug toggles debug logging of the movement simulation.
func (p *Player) SetDebug(debug bool) {
	p.debug = debug
}

// Teleport moves the player to pos, clearing its velocity, its mode payloads and its grapple.
func (p *Player) Teleport(pos mgl32.Vec3) {
	if p.state.Grappling {
		p.releaseGrapple("teleport")
	}
	p.state.Pos = pos
	p.state.Vel = mgl32.Vec3{}
	p.state.clearSlide()
	p.state.clearWallRun()
	p.state.OnGround = false
	p.state.Mode = ModeAirborne
	p.state.CameraHeight = p.settings.Player.CameraHeight
	p.state.CameraRoll = 0
	p.jumpCutAvailable = false
}

// Position returns the position of the player's feet.
func (p *Player) Position() mgl32.Vec3 {
	return p.state.Pos
}

// Velocity returns the velocity of the player.
func (p *Player) Velocity() mgl32.Vec3 {
	return p.state.Vel
}

// OnGround returns true if the player was standing on a surface on the last frame.
func (p *Player) OnGround() bool {
	return p.state.OnGround
}

// WallRunning returns true if the player is running along a wall.
func (p *Player) WallRunning() bool {
	return p.state.Mode == ModeWallRunning
}

// Sliding returns true if the player is sliding.
func (p *Player) Sliding() bool {
	return p.state.Mode == ModeSliding
}

// Mode returns the current movement mode of the player.
func (p *Player) Mode() Mode {
	return p.state.Mode
}

// State returns a copy of the complete movement state of the player.
func (p *Player) State() State {
	return p.state
}

// Camera returns the last valid camera the player was ticked with.
func (p *Player) Camera() Camera {
	return p.lastCam
}

// EyePosition returns the world position of the player's camera, including the camera feedback.
func (p *Player) EyePosition() mgl32.Vec3 {
	return p.state.Pos.Add(mgl32.Vec3{0, p.state.CameraHeight, 0})
}

// BoundingBox returns the world space bounding box of the player.
func (p *Player) BoundingBox() cube.BBox {
	return p.bb.Translate(p.state.Pos)
}

// Settings returns the settings the player was created with.
func (p *Player) Settings() settings.Settings {
	return p.settings
}

// Tick advances the player by dt seconds using the input and camera of this frame. Invalid values for
// dt or the camera are reported through an input rejected event, and never corrupt the state.
func (p *Player) Tick(dt float32, in InputState, cam Camera) {
	if !game.IsFinite(dt) || dt <= 0 {
		extra := orderedmap.NewOrderedMap[string, any]()
		extra.Set("dt", dt)
		p.rejectInput("invalid_delta", extra)
		return
	}
	if dt > game.MaxFrameDelta {
		dt = game.MaxFrameDelta
	}
	if cam.valid() {
		p.lastCam = cam.normalized()
	} else {
		extra := orderedmap.NewOrderedMap[string, any]()
		extra.Set("forward", cam.Forward)
		extra.Set("right", cam.Right)
		extra.Set("pitch", cam.Pitch)
		p.rejectInput("invalid_camera", extra)
	}

	ctx := newCtx(p, dt, in)
	defer putCtx(ctx)

	p.notify("BEGIN frame (mode=%v pos=%v vel=%v)", p.state.Mode, p.state.Pos, p.state.Vel)
	defer func() {
		p.notify("END frame (mode=%v pos=%v vel=%v)", p.state.Mode, p.state.Pos, p.state.Vel)
	}()

	p.state.sanitize()
	ctx.tickTimers()
	ctx.updateGround()
	ctx.resolveTransitions()

	switch p.state.Mode {
	case ModeWallRunning:
		ctx.simulateWallRun()
	case ModeSliding:
		ctx.simulateSlide()
	default:
		ctx.simulateLocomotion()
	}

	ctx.applyImpulses()
	ctx.updateCameraFeedback()

	p.jumpHeld = in.Jump
	p.slideHeld = in.Slide
}

func (p *Player) setMode(m Mode) {
	if p.state.Mode == m {
		return
	}
	p.emit(&event.ModeChangedEvent{From: p.state.Mode.String(), To: m.String()})
	p.state.Mode = m
}

func (p *Player) rejectInput(reason string, extra *orderedmap.OrderedMap[string, any]) {
	p.emit(&event.InputRejectedEvent{Reason: reason, ExtraData: utils.OrderedMapToString(extra)})
	p.log.WithFields(utils.OrderedMapToFields(extra)).Debugf("rejected input: %s", reason)
}

func (p *Player) emit(e event.Event) {
	p.sink.HandleEvent(e)
}

func (p *Player) notify(format string, args ...any) {
	if !p.debug {
		return
	}
	p.log.Debugf(format, args...)
}
