package models

// Result values used in every JSON response body.
const (
	ResultSuccess = "success"
	ResultFail    = "fail"
)

// Response is the minimal JSON envelope shared by all endpoints.
type Response struct {
	Result string `json:"result"`
	Msg    string `json:"msg,omitempty"`
}

// CheckDupResponse is returned by the username pre-check endpoint.
type CheckDupResponse struct {
	Result string `json:"result"`
	Exists bool   `json:"exists"`
}

// SignInResponse carries the freshly issued token on successful login.
type SignInResponse struct {
	Result string `json:"result"`
	Token  string `json:"token"`
}

// PostsResponse carries the enriched post listing.
type PostsResponse struct {
	Result string     `json:"result"`
	Msg    string     `json:"msg"`
	Posts  []PostView `json:"posts"`
}

// LikeResponse carries the fresh reaction count after a toggle.
type LikeResponse struct {
	Result string `json:"result"`
	Msg    string `json:"msg"`
	Count  int64  `json:"count"`
}

// UserPageResponse is returned by the profile page endpoint. Status reports
// whether the viewer is looking at their own profile.
type UserPageResponse struct {
	Result   string `json:"result"`
	UserInfo User   `json:"user_info"`
	Status   bool   `json:"status"`
}
