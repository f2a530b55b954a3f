package component

// CharacterTag marks entities advanced by the character pass.
type CharacterTag struct{}

var CharacterTagComponent = NewComponent[CharacterTag]()

// PropTag marks static scene props (axis gizmo, box, lamps).
type PropTag struct{}

var PropTagComponent = NewComponent[PropTag]()
