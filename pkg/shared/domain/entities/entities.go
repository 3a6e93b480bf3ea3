package entities

// Entity is the minimal contract shared by every domain record.
// It is used as a generic constraint by the mappers.
type Entity interface {
	EntityKind() string
}
