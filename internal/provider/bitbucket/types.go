package bitbucket

// bitbucketCommit is the commit object of the Bitbucket 2.0 API
type bitbucketCommit struct {
	Hash    string `json:"hash"`
	Date    string `json:"date"`
	Message string `json:"message"`
	Author  struct {
		Raw  string `json:"raw"`
		User struct {
			DisplayName string `json:"display_name"`
			Nickname    string `json:"nickname"`
		} `json:"user"`
	} `json:"author"`
	Links struct {
		HTML struct {
			Href string `json:"href"`
		} `json:"html"`
	} `json:"links"`
}

// bitbucketCommitList is the paginated commits response
type bitbucketCommitList struct {
	Values []bitbucketCommit `json:"values"`
}
