package event

import "github.com/go-gl/mathgl/mgl32"

const (
	EventIDModeChanged      = "parkour:mode_changed"
	EventIDJump             = "parkour:jump"
	EventIDLand             = "parkour:land"
	EventIDSlideStart       = "parkour:slide_start"
	EventIDSlideEnd         = "parkour:slide_end"
	EventIDWallRunStart     = "parkour:wall_run_start"
	EventIDWallRunEnd       = "parkour:wall_run_end"
	EventIDDash             = "parkour:dash"
	EventIDGrappleAttach    = "parkour:grapple_attach"
	EventIDGrappleRelease   = "parkour:grapple_release"
	EventIDGunDrop          = "parkour:gun_drop"
	EventIDCorrection       = "parkour:correction"
	EventIDInputRejected    = "parkour:input_rejected"
	EventIDShot             = "parkour:shot"
	EventIDTargetsSpawned   = "parkour:targets_spawned"
	EventIDGameModeStarted  = "parkour:game_mode_started"
	EventIDGameModeFinished = "parkour:game_mode_finished"
)

// Event is a piece of telemetry emitted by the movement core or the systems around it.
type Event interface {
	ID() string
}

type ModeChangedEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (e *ModeChangedEvent) ID() string { return EventIDModeChanged }

type JumpEvent struct {
	Velocity float32 `json:"velocity"`
	// Coyote is true if the jump was granted by coyote time rather than ground contact.
	Coyote  bool `json:"coyote"`
	Boosted bool `json:"boosted"`
}

func (e *JumpEvent) ID() string { return EventIDJump }

type LandEvent struct {
	FallSpeed float32 `json:"fall_speed"`
}

func (e *LandEvent) ID() string { return EventIDLand }

type SlideStartEvent struct {
	Speed     float32    `json:"speed"`
	Direction mgl32.Vec3 `json:"direction"`
}

func (e *SlideStartEvent) ID() string { return EventIDSlideStart }

type SlideEndEvent struct {
	Reason string  `json:"reason"`
	Speed  float32 `json:"speed"`
}

func (e *SlideEndEvent) ID() string { return EventIDSlideEnd }

type WallRunStartEvent struct {
	Side   int8       `json:"side"`
	Normal mgl32.Vec3 `json:"normal"`
}

func (e *WallRunStartEvent) ID() string { return EventIDWallRunStart }

type WallRunEndEvent struct {
	Reason  string     `json:"reason"`
	Elapsed float32    `json:"elapsed"`
	Kick    mgl32.Vec3 `json:"kick"`
}

func (e *WallRunEndEvent) ID() string { return EventIDWallRunEnd }

type DashEvent struct {
	Impulse  mgl32.Vec3 `json:"impulse"`
	Grounded bool       `json:"grounded"`
}

func (e *DashEvent) ID() string { return EventIDDash }

type GrappleAttachEvent struct {
	Anchor   mgl32.Vec3 `json:"anchor"`
	Distance float32    `json:"distance"`
}

func (e *GrappleAttachEvent) ID() string { return EventIDGrappleAttach }

type GrappleReleaseEvent struct {
	Reason string `json:"reason"`
}

func (e *GrappleReleaseEvent) ID() string { return EventIDGrappleRelease }

type GunDropEvent struct {
	Velocity mgl32.Vec3 `json:"velocity"`
}

func (e *GunDropEvent) ID() string { return EventIDGunDrop }

// CorrectionEvent is emitted when the player was found inside geometry. Applied is false if no
// direction was clear enough to push the player out.
type CorrectionEvent struct {
	Applied  bool       `json:"applied"`
	Push     mgl32.Vec3 `json:"push"`
	Position mgl32.Vec3 `json:"position"`
}

func (e *CorrectionEvent) ID() string { return EventIDCorrection }

// InputRejectedEvent is emitted when part of a frame's input could not be used.
type InputRejectedEvent struct {
	Reason    string `json:"reason"`
	ExtraData string `json:"extra_data"`
}

func (e *InputRejectedEvent) ID() string { return EventIDInputRejected }

type ShotEvent struct {
	Hit      bool    `json:"hit"`
	TargetID string  `json:"target_id,omitempty"`
	Distance float32 `json:"distance"`
}

func (e *ShotEvent) ID() string { return EventIDShot }

type TargetsSpawnedEvent struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

func (e *TargetsSpawnedEvent) ID() string { return EventIDTargetsSpawned }

type GameModeStartedEvent struct {
	Mode      string `json:"mode"`
	SessionID string `json:"session_id"`
}

func (e *GameModeStartedEvent) ID() string { return EventIDGameModeStarted }

type GameModeFinishedEvent struct {
	Mode      string  `json:"mode"`
	SessionID string  `json:"session_id"`
	Score     int     `json:"score"`
	Shots     int     `json:"shots"`
	Hits      int     `json:"hits"`
	Accuracy  float32 `json:"accuracy"`
}

func (e *GameModeFinishedEvent) ID() string { return EventIDGameModeFinished }
