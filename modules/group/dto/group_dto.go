package dto

type GroupRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members,omitempty"`
}

type GroupResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Members     []string `json:"members"`
	CreatedAt   string   `json:"created_at"`
}

type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
}

type AddMemberRequest struct {
	Email string `json:"email"`
}
