package domain

// CommentTimeLayout renders comment timestamps the way the map page always
// has (en-US locale string), so stored blobs stay compatible.
const CommentTimeLayout = "1/2/2006, 3:04:05 PM"

// Comment is a visitor note left on a destination.
// Comments are append-only and owned by a destination id.
type Comment struct {
	Name string `json:"name"`
	Text string `json:"text"`
	Time string `json:"time"`
}

// CommentMap is the persisted shape: destination id to comments in insertion order.
type CommentMap map[string][]Comment
