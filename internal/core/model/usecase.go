package model

// UseCase is one block of generated text split into its display sections.
type UseCase struct {
	Title         string `json:"title"`
	Objective     string `json:"objective"`
	AIApplication string `json:"ai_application"`
	Benefits      string `json:"benefits"`
}
