package component

// Morph drives the truncated-octahedron shader: A is the edge length, C the
// animated cut depth, H the fixed half height and AA the explode offset.
type Morph struct {
	A  float32
	C  float32
	H  float32
	AA float32
}

var MorphComponent = NewComponent[Morph]()
