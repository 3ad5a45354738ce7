package player

// InputState is a snapshot of the player's input for one frame. Held keys are true for as long as the
// key is down; pressed fields are true only on the frame the key went down.
type InputState struct {
	Forward bool `msgpack:"f"`
	Back    bool `msgpack:"b"`
	Left    bool `msgpack:"l"`
	Right   bool `msgpack:"r"`

	Sprint bool `msgpack:"sp"`
	Jump   bool `msgpack:"j"`
	Slide  bool `msgpack:"sl"`

	DashPressed           bool `msgpack:"d"`
	GrapplePressed        bool `msgpack:"g"`
	GrappleReleasePressed bool `msgpack:"gr"`
	DropGunPressed        bool `msgpack:"dg"`
	FirePressed           bool `msgpack:"fi"`
}

func (in InputState) axes() (strafe, forward float32) {
	if in.Right {
		strafe++
	}
	if in.Left {
		strafe--
	}
	if in.Forward {
		forward++
	}
	if in.Back {
		forward--
	}
	return
}
