package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int             `toml:"version"`
	Completed []string        `toml:"completed"`
	Sections  []sectionSchema `toml:"sections"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported ledger schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sectionSchema struct {
	CourseCode   string `toml:"course_code"`
	CourseTitle  string `toml:"course_title"`
	SectionID    string `toml:"section_id"`
	Kind         string `toml:"kind"`
	Instructor   string `toml:"instructor"`
	Room         string `toml:"room"`
	Days         string `toml:"days"`
	Time         string `toml:"time"`
	Credits      int    `toml:"credits"`
	RegisteredAt string `toml:"registered_at"`
}
