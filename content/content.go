// Package content holds the static portfolio document and its loaders.
package content

// Contact is the owner's contact card.
type Contact struct {
	Name              string `toml:"name" yaml:"name" json:"name"`
	Position          string `toml:"position" yaml:"position" json:"position"`
	Location          string `toml:"location" yaml:"location" json:"location"`
	Email             string `toml:"email" yaml:"email" json:"email"`
	Phone             string `toml:"phone" yaml:"phone" json:"phone"`
	BirthDate         string `toml:"birth_date" yaml:"birth_date" json:"birthDate"`
	FirstJobDate      string `toml:"first_job_date" yaml:"first_job_date" json:"firstJobDate"`
	LinkedIn          string `toml:"linkedin" yaml:"linkedin" json:"linkedin"`
	LinkedInMessaging string `toml:"linkedin_messaging" yaml:"linkedin_messaging" json:"linkedinMessaging"`
	Calendly          string `toml:"calendly,omitempty" yaml:"calendly,omitempty" json:"calendly,omitempty"`
}

// FirstName returns the first word of the contact name.
func (c Contact) FirstName() string {
	for i, r := range c.Name {
		if r == ' ' {
			return c.Name[:i]
		}
	}
	return c.Name
}

type Project struct {
	Title       string   `toml:"title" yaml:"title" json:"title"`
	City        string   `toml:"city" yaml:"city" json:"city"`
	Description string   `toml:"description" yaml:"description" json:"description"`
	Period      string   `toml:"period" yaml:"period" json:"period"`
	Tools       []string `toml:"tools" yaml:"tools" json:"tools"`
	Website     string   `toml:"website,omitempty" yaml:"website,omitempty" json:"website,omitempty"`
	Repo        string   `toml:"repo" yaml:"repo" json:"repo"`
	Video       string   `toml:"video" yaml:"video" json:"video"`
}

type Experience struct {
	Position         string   `toml:"position" yaml:"position" json:"position"`
	Company          string   `toml:"company" yaml:"company" json:"company"`
	City             string   `toml:"city" yaml:"city" json:"city"`
	StartDate        string   `toml:"start_date" yaml:"start_date" json:"startDate"`
	EndDate          string   `toml:"end_date" yaml:"end_date" json:"endDate"`
	Responsibilities []string `toml:"responsibilities" yaml:"responsibilities" json:"responsibilities"`
}

type Education struct {
	Position         string   `toml:"position" yaml:"position" json:"position"`
	Company          string   `toml:"company" yaml:"company" json:"company"`
	City             string   `toml:"city" yaml:"city" json:"city"`
	Period           string   `toml:"period" yaml:"period" json:"period"`
	Responsibilities []string `toml:"responsibilities,omitempty" yaml:"responsibilities,omitempty" json:"responsibilities,omitempty"`
}

type Certification struct {
	Title string `toml:"title" yaml:"title" json:"title"`
	URL   string `toml:"url" yaml:"url" json:"url"`
	Date  string `toml:"date" yaml:"date" json:"date"`
}

type Game struct {
	Title string `toml:"title" yaml:"title" json:"title"`
	Icon  string `toml:"icon" yaml:"icon" json:"icon"`
}

type Photography struct {
	Path   string `toml:"path" yaml:"path" json:"path"`
	Width  int    `toml:"width" yaml:"width" json:"width"`
	Height int    `toml:"height" yaml:"height" json:"height"`
	URL    string `toml:"url" yaml:"url" json:"url"`
	Alt    string `toml:"alt" yaml:"alt" json:"alt"`
	Type   string `toml:"type" yaml:"type" json:"type"`
	AltURL string `toml:"alt_url,omitempty" yaml:"alt_url,omitempty" json:"altUrl,omitempty"`
}

type Skill struct {
	Name     string `toml:"name" yaml:"name" json:"name"`
	Level    int    `toml:"level" yaml:"level" json:"level"`
	Priority int    `toml:"priority" yaml:"priority" json:"priority"`
}

type Skills struct {
	Professional     []Skill  `toml:"professional" yaml:"professional" json:"professional"`
	Languages        []string `toml:"languages" yaml:"languages" json:"languages"`
	DevelopmentTools []string `toml:"development_tools" yaml:"development_tools" json:"developmentTools"`
	Personal         []string `toml:"personal" yaml:"personal" json:"personal"`
}

type SocialLink struct {
	Name string `toml:"name" yaml:"name" json:"name"`
	URL  string `toml:"url" yaml:"url" json:"url"`
	Icon string `toml:"icon" yaml:"icon" json:"icon"`
}

type TechnologyItem struct {
	Key  string `toml:"key" yaml:"key" json:"key"`
	Name string `toml:"name" yaml:"name" json:"name"`
	Icon string `toml:"icon" yaml:"icon" json:"icon"`
}

type Technologies struct {
	Description string           `toml:"description" yaml:"description" json:"description"`
	Items       []TechnologyItem `toml:"items" yaml:"items" json:"items"`
}

type Homepage struct {
	Title string `toml:"title" yaml:"title" json:"title"`
}

// Data is the whole content document. Which optional groups are populated
// decides which sections the page shows.
type Data struct {
	Homepage       Homepage        `toml:"homepage" yaml:"homepage" json:"homepage"`
	Introduction   []string        `toml:"introduction" yaml:"introduction" json:"introduction"`
	Footer         string          `toml:"footer" yaml:"footer" json:"footer"`
	Contact        Contact         `toml:"contact" yaml:"contact" json:"contact"`
	Projects       []Project       `toml:"projects" yaml:"projects" json:"projects"`
	Experience     []Experience    `toml:"experience" yaml:"experience" json:"experience"`
	Education      []Education     `toml:"education" yaml:"education" json:"education"`
	Certifications []Certification `toml:"certifications" yaml:"certifications" json:"certifications"`
	Photography    []Photography   `toml:"photography" yaml:"photography" json:"photography"`
	Games          []Game          `toml:"games" yaml:"games" json:"games"`
	Social         []SocialLink    `toml:"social" yaml:"social" json:"social"`
	Technologies   Technologies    `toml:"technologies" yaml:"technologies" json:"technologies"`
	Skills         Skills          `toml:"skills" yaml:"skills" json:"skills"`
}

func (d *Data) HasProjects() bool   { return len(d.Projects) > 0 }
func (d *Data) HasExperience() bool { return len(d.Experience) > 0 }
func (d *Data) HasHobbies() bool    { return len(d.Photography) > 0 || len(d.Games) > 0 }

// HasContact reports whether there is any way to reach the owner.
func (d *Data) HasContact() bool {
	c := d.Contact
	return c.Email != "" || c.LinkedIn != "" || c.Calendly != ""
}
