package component

// Name identifies an entity inside a scene. Camera rigs and light lookups
// resolve entities by name.
type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()
