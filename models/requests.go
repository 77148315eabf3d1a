package models

import "io"

// ProfileUpdateRequest carries a profile edit through the service layer.
// Image is nil when the client submitted no file; otherwise it streams the
// uploaded image body and ImageFilename holds the client-supplied name.
type ProfileUpdateRequest struct {
	Username      string
	ProfileName   string
	ProfileInfo   string
	ImageFilename string
	Image         io.Reader
}
