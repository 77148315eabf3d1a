package models

import "time"

// Post is a short text publication. The author's profile fields are
// denormalized into the record at creation time and are never updated when
// the author later edits their profile.
type Post struct {
	// PostID is the database-assigned, opaque identifier of the post.
	PostID int64 `json:"post_id"`

	// Username is the author's login identifier at creation time.
	Username string `json:"username"`

	// ProfileName is the author's display name snapshotted at creation time.
	ProfileName string `json:"profile_name"`

	// ProfilePicReal is the author's profile image path snapshotted at
	// creation time.
	ProfilePicReal string `json:"profile_pic_real"`

	// Comment is the text body of the post.
	Comment string `json:"comment"`

	// Date is the client-supplied timestamp string used for sort ordering.
	// Ordering is lexicographic, so clients are expected to supply a
	// consistently sortable representation such as ISO-8601.
	Date string `json:"date"`

	// CreatedAt is the server-side insertion timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostFilter restricts and caps a post listing.
type PostFilter struct {
	// Username limits the listing to one author when non-empty.
	Username string

	// Limit caps the number of returned posts.
	Limit uint64
}

// PostView is a Post enriched with per-reaction-type aggregates for a
// particular viewer.
type PostView struct {
	Post

	CountHeart    int64 `json:"count_heart"`
	HeartByMe     bool  `json:"heart_by_me"`
	CountStar     int64 `json:"count_star"`
	StarByMe      bool  `json:"star_by_me"`
	CountThumbsup int64 `json:"count_thumbsup"`
	ThumbsupByMe  bool  `json:"thumbsup_by_me"`
}
