package entity

// Intent is the inferred purpose of a form found in an uploaded project.
type Intent string

const (
	IntentLogin   Intent = "login"
	IntentSignup  Intent = "signup"
	IntentContact Intent = "contact"
)

// FormField is a single named control inside a detected form.
type FormField struct {
	Name string `json:"name"`
	Kind string `json:"type"`
}

// DetectedForm is one classified form. Forms that match no intent are
// never represented, so Intent is always one of the three known values.
type DetectedForm struct {
	Intent Intent      `json:"type"`
	Fields []FormField `json:"fields"`
}
