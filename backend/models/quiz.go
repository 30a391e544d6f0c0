package models

type QuizQuestion struct {
	ID            int          `json:"id"`
	Category      QuizCategory `json:"category"`
	Question      string       `json:"question"`
	Options       []string     `json:"options"`
	CorrectAnswer int          `json:"correctAnswer"`
}

type CategoryInfo struct {
	ID   QuizCategory `json:"id"`
	Name string       `json:"name"`
	Icon string       `json:"icon"`
	Desc string       `json:"desc"`
}
