package redis

const (
	// KeyPrefixBookmark is the prefix for bookmark documents
	KeyPrefixBookmark = "linkshelf:bookmark:"
	// KeyPrefixUserBookmarks is the prefix for the per-user sorted set of bookmark IDs
	KeyPrefixUserBookmarks = "linkshelf:user:"
)

// BookmarkKey returns the Redis key for a bookmark document
func BookmarkKey(id string) string {
	return KeyPrefixBookmark + id
}

// UserBookmarksKey returns the key of the sorted set (score = creation time) of a user's bookmark IDs
func UserBookmarksKey(userID string) string {
	return KeyPrefixUserBookmarks + userID + ":bookmarks"
}

// UserURLsKey returns the key of the hash mapping each URL a user bookmarked to its bookmark ID
func UserURLsKey(userID string) string {
	return KeyPrefixUserBookmarks + userID + ":urls"
}
