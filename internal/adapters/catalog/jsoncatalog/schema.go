package jsoncatalog

type fileSchema struct {
	Courses []courseSchema `json:"courses" validate:"required,min=1,dive"`
}

type courseSchema struct {
	Code     string          `json:"code" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Credits  int             `json:"credits" validate:"required,gt=0"`
	HasLab   bool            `json:"hasLab"`
	Prereq   []string        `json:"prereq" validate:"dive,required"`
	Sections []sectionSchema `json:"sections" validate:"required,min=1,dive"`
}

type sectionSchema struct {
	SectionID  string `json:"sectionId" validate:"required"`
	Type       string `json:"type" validate:"required,oneof=lecture lab"`
	Instructor string `json:"instructor" validate:"required"`
	Room       string `json:"room" validate:"required"`
	Days       string `json:"days" validate:"required"`
	Time       string `json:"time" validate:"required"`
}
