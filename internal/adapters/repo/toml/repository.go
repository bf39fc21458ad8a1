// Package toml persists the session ledger as a TOML file. Writes go
// through a temp file and an atomic rename so a crash never leaves a
// half-written ledger behind.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/course-reg-cli/internal/domain"
	"github.com/bnema/course-reg-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	ledgerPathKey    = "ledger.path"
	completedSeedKey = "completed.seed"
	ledgerFileMode   = 0o600
	ledgerDirMode    = 0o700
	ledgerConfigDir  = ".reg"
	ledgerConfigFile = "ledger.toml"
	tempFilePattern  = ".ledger-*.toml.tmp"
)

// defaultCompletedSeed matches the demo student profile: first-semester
// math and english already passed.
var defaultCompletedSeed = []string{"MATH1101", "ENG1101"}

type Repository struct {
	ledgerPath string
	seed       []domain.CourseCode
	logger     zerolog.Logger
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.LedgerRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper, logger zerolog.Logger) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, ledgerConfigDir, ledgerConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, ledgerConfigDir))
	cfg.SetDefault(ledgerPathKey, defaultPath)
	cfg.SetDefault(completedSeedKey, defaultCompletedSeed)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	ledgerPath := cfg.GetString(ledgerPathKey)
	if ledgerPath == "" {
		return nil, errors.New("ledger path is empty")
	}
	ledgerPath, err = normalizeLedgerPath(ledgerPath)
	if err != nil {
		return nil, err
	}

	seedCodes := cfg.GetStringSlice(completedSeedKey)
	seed := make([]domain.CourseCode, 0, len(seedCodes))
	for _, code := range seedCodes {
		seed = append(seed, domain.CourseCode(code))
	}

	return &Repository{
		ledgerPath: ledgerPath,
		seed:       seed,
		logger:     logger,
		mu:         lockForPath(ledgerPath),
	}, nil
}

// Load reads the ledger file. A missing file is not an error: it yields
// a fresh ledger seeded with the configured completed courses.
func (r *Repository) Load(ctx context.Context) (domain.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return domain.Ledger{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.ledgerPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Debug().Str("path", r.ledgerPath).Msg("ledger file absent, starting fresh")
			return domain.NewLedger(r.seed), nil
		}
		return domain.Ledger{}, fmt.Errorf("read ledger file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return domain.Ledger{}, fmt.Errorf("decode ledger file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return domain.Ledger{}, err
	}
	file.applyDefaults()

	ledger, err := fromSchema(file)
	if err != nil {
		return domain.Ledger{}, err
	}

	r.logger.Debug().
		Int("sections", len(ledger.RegisteredSections)).
		Int("completed", len(ledger.CompletedCourses)).
		Msg("ledger loaded")

	return ledger, nil
}

func (r *Repository) Save(ctx context.Context, ledger domain.Ledger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := toSchema(ledger)
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.ledgerPath), ledgerDirMode); err != nil {
		return fmt.Errorf("create ledger directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode ledger file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.ledgerPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp ledger file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp ledger file: %w", err)
	}

	if err := tempFile.Chmod(ledgerFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp ledger file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp ledger file: %w", err)
	}

	if err := os.Rename(tempName, r.ledgerPath); err != nil {
		return fmt.Errorf("replace ledger file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.ledgerPath, ledgerFileMode); err != nil {
		return fmt.Errorf("chmod ledger file: %w", err)
	}

	r.logger.Debug().Int("sections", len(ledger.RegisteredSections)).Msg("ledger saved")

	return nil
}

func normalizeLedgerPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve ledger path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(ledger domain.Ledger) fileSchema {
	completed := make([]string, 0, len(ledger.CompletedCourses))
	for _, code := range ledger.CompletedCourses {
		completed = append(completed, string(code))
	}

	sections := make([]sectionSchema, 0, len(ledger.RegisteredSections))
	for _, entry := range ledger.RegisteredSections {
		sections = append(sections, sectionSchema{
			CourseCode:   string(entry.CourseCode),
			CourseTitle:  entry.CourseTitle,
			SectionID:    string(entry.SectionID),
			Kind:         string(entry.Kind),
			Instructor:   entry.Instructor,
			Room:         entry.Room,
			Days:         entry.Meeting.Days.String(),
			Time:         entry.Meeting.Interval(),
			Credits:      entry.Credits,
			RegisteredAt: formatTime(entry.RegisteredAt),
		})
	}

	return fileSchema{Completed: completed, Sections: sections}
}

func fromSchema(file fileSchema) (domain.Ledger, error) {
	completed := make([]domain.CourseCode, 0, len(file.Completed))
	for _, code := range file.Completed {
		completed = append(completed, domain.CourseCode(code))
	}

	sections := make([]domain.RegisteredSection, 0, len(file.Sections))
	for _, entry := range file.Sections {
		meeting, err := domain.NewMeeting(entry.Days, entry.Time)
		if err != nil {
			return domain.Ledger{}, fmt.Errorf("ledger entry %s: %w", entry.SectionID, err)
		}

		kind := domain.SectionKind(entry.Kind)
		if !kind.Valid() {
			return domain.Ledger{}, fmt.Errorf("ledger entry %s: unknown section kind %q", entry.SectionID, entry.Kind)
		}

		sections = append(sections, domain.RegisteredSection{
			CourseCode:   domain.CourseCode(entry.CourseCode),
			CourseTitle:  entry.CourseTitle,
			SectionID:    domain.SectionID(entry.SectionID),
			Kind:         kind,
			Instructor:   entry.Instructor,
			Room:         entry.Room,
			Meeting:      meeting,
			Credits:      entry.Credits,
			RegisteredAt: parseTime(entry.RegisteredAt),
		})
	}

	return domain.Ledger{RegisteredSections: sections, CompletedCourses: completed}, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339)
}
