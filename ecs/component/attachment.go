package component

import "github.com/go-gl/mathgl/mgl64"

// Attachment snaps an entity to its parent every frame. With ToCamera the
// offset is relative to the parent's camera view instead of its origin.
type Attachment struct {
	Parent   uint64
	Offset   mgl64.Vec3
	ToCamera bool
}

var AttachmentComponent = NewComponent[Attachment]()
