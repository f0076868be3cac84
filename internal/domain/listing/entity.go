package listing

type Listing struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	RequiredSkills  []string `json:"required_skills"`
	Description     string   `json:"description"`
	Role            string   `json:"role_type"`
	Type            string   `json:"internship_type"`
	ApplicationLink string   `json:"application_link"`
	ContactEmail    string   `json:"contact_email"`
	Stipend         string   `json:"stipend,omitempty"`
	Duration        string   `json:"duration,omitempty"`
}
