package dto

type Result struct {
	// Migrated is false when the store was already in the current shape and
	// nothing ran.
	Migrated         bool
	TopicsMigrated   int
	SessionsMigrated int
	SnapshotsCreated int
	TopicsSkipped    int
}
