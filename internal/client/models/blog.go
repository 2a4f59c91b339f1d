// Package models contains the data transfer objects exchanged with the
// blog backend. Field names and JSON tags mirror the API payloads exactly;
// the client never assigns ids or timestamps itself.
package models

import "time"

// Author is the embedded blog-owner record carried inside a Blog.
type Author struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
}

// Blog is a single blog entry as returned by the backend.
type Blog struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Content   string `json:"content"`
	User      Author `json:"User"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// CreatedDate renders the entry's creation timestamp in the short form
// shown by the list views. Unparseable timestamps are rendered verbatim.
func (b Blog) CreatedDate() string {
	t, err := time.Parse(time.RFC3339, b.CreatedAt)
	if err != nil {
		return b.CreatedAt
	}
	return t.Format("1/2/2006")
}

// BlogsPage is the container returned by a single list request. The client
// keeps no pagination state beyond the query parameters it sent.
type BlogsPage struct {
	Blogs []Blog `json:"blogs"`
}

// User is the account record in a profile response.
type User struct {
	ID        int64  `json:"id"`
	UserName  string `json:"userName"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Profile is "my account plus my blogs", refetched wholesale after any
// mutation.
type Profile struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Blogs   []Blog `json:"blogs"`
}
