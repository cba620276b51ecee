package graph

// displayNames maps the known sample author ids to human-readable names.
// Queried only when an author id has no user record; not configurable.
var displayNames = map[string]string{
	"user-1": "髙橋慶祐",
	"user-2": "佐藤太郎",
	"user-3": "鈴木花子",
	"user-4": "松本次郎",
	"user-5": "後藤優子",
}

// authorDisplayName returns the display name for id, falling back to the
// id itself for unknown authors.
func authorDisplayName(id string) string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return id
}
