package jira

// User identifies a Jira user, as embedded in filter ownership and returned
// by the /myself endpoint.
type User struct {
	AccountID    string `json:"accountId"`
	Name         string `json:"name"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

// Subscriptions summarizes a filter's share subscriptions.
type Subscriptions struct {
	Size int `json:"size"`
}

// Filter is a saved search query owned by a user.
type Filter struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	JQL           string        `json:"jql"`
	Owner         User          `json:"owner"`
	Favourite     bool          `json:"favourite"`
	Subscriptions Subscriptions `json:"subscriptions"`
}

// filterSearchResponse wraps the paged /filter/search payload. Only the
// first page is consumed; pagination is out of scope.
type filterSearchResponse struct {
	Values []Filter `json:"values"`
}

// BoardLocation ties a board to its project.
type BoardLocation struct {
	ProjectID  int64  `json:"projectId"`
	ProjectKey string `json:"projectKey"`
	Key        string `json:"key"`
	Name       string `json:"name"`
}

// Board is an agile board resource.
type Board struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Self     string        `json:"self"`
	Location BoardLocation `json:"location"`
}

// boardListResponse wraps the paged /board payload.
type boardListResponse struct {
	Values []Board `json:"values"`
}
