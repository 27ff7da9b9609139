package component

// Tag identifies a component kind. The set is closed: every tag has a
// dedicated typed store in the ECS world, indexed by the tag value.
type Tag uint8

const (
	TagPosition Tag = iota
	TagVelocity
	TagRender
	TagCollider
	TagHealth
	TagInput
	TagTTL
	TagAsteroid
	TagBullet
	TagGameState

	// TagCount is the number of component tags, not a tag itself.
	TagCount
)

var tagNames = [TagCount]string{
	TagPosition:  "position",
	TagVelocity:  "velocity",
	TagRender:    "render",
	TagCollider:  "collider",
	TagHealth:    "health",
	TagInput:     "input",
	TagTTL:       "ttl",
	TagAsteroid:  "asteroid",
	TagBullet:    "bullet",
	TagGameState: "gamestate",
}

func (t Tag) String() string {
	if t < TagCount {
		return tagNames[t]
	}
	return "unknown"
}

// Component is implemented by every component struct in this package.
// Components are pure data; all mutations happen in systems.
type Component interface {
	Tag() Tag
}
