package session

import (
	"github.com/chewxy/math32"
	"github.com/splatforge/go-playtest/internal/geom"
)

// Pitch is clamped short of straight up/down to avoid gimbal flip.
const maxPitch = 89

// Move returns the position after applying yaw-relative movement input.
// Forward and strafe are each in [-1, 1]; yaw 0 faces -Z and positive yaw
// turns counterclockwise, matching the renderer's camera convention. The
// vertical axis is untouched: there is no jumping or gravity in the core
// model, so any vertical movement is the caller's business.
func Move(pos geom.Vec3, rot geom.Rot, forward, strafe, dt, speed float32) geom.Vec3 {
	if forward == 0 && strafe == 0 {
		return pos
	}

	yaw := rot.Yaw * math32.Pi / 180
	sin, cos := math32.Sincos(yaw)

	return geom.Vec3{
		X: pos.X + (-forward*sin+strafe*cos)*speed*dt,
		Y: pos.Y,
		Z: pos.Z + (-forward*cos-strafe*sin)*speed*dt,
	}
}

// Rotate returns the rotation after applying pitch/yaw deltas in degrees.
// Pitch clamps to [-89, 89]; yaw wraps into [0, 360).
func Rotate(rot geom.Rot, dPitch, dYaw float32) geom.Rot {
	pitch := rot.Pitch + dPitch
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}

	yaw := math32.Mod(rot.Yaw+dYaw, 360)
	if yaw < 0 {
		yaw += 360
	}

	return geom.Rot{Pitch: pitch, Yaw: yaw}
}
