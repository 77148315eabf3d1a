package models

import "time"

// LikeType is the closed set of reaction kinds a user may attach to a post.
// Unknown values are rejected at the service layer instead of being stored.
type LikeType string

const (
	LikeHeart    LikeType = "heart"
	LikeStar     LikeType = "star"
	LikeThumbsup LikeType = "thumbsup"
)

// LikeTypes lists every valid reaction kind in a stable order, used when
// aggregating counts per post.
var LikeTypes = []LikeType{LikeHeart, LikeStar, LikeThumbsup}

// Valid reports whether t is one of the known reaction kinds.
func (t LikeType) Valid() bool {
	switch t {
	case LikeHeart, LikeStar, LikeThumbsup:
		return true
	}
	return false
}

// LikeAction is the caller-supplied direction of a reaction toggle.
type LikeAction string

const (
	ActionLike   LikeAction = "like"
	ActionUnlike LikeAction = "unlike"
)

// Valid reports whether a is a known toggle direction.
func (a LikeAction) Valid() bool {
	return a == ActionLike || a == ActionUnlike
}

// Like is a reaction fact triple linking one user to one post.
// The database carries no uniqueness constraint on (PostID, Username, Type):
// a repeated "like" action inserts a second identical row.
type Like struct {
	LikeID    int64     `json:"-"`
	PostID    int64     `json:"post_id"`
	Username  string    `json:"username"`
	Type      LikeType  `json:"type"`
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Like model.
func (l Like) TableName() string {
	return "likes"
}
