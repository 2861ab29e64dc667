package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	cfg   Config
	log   *zap.Logger
	db    *gorm.DB
	study *Study
}

func openDatabase(cfg Config) (*gorm.DB, error) {
	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// seedIfEmpty loads the question file into an empty database.
func seedIfEmpty(db *gorm.DB, path string, log *zap.Logger) error {
	isEmpty, err := IsQuestionTableEmpty(db)
	if err != nil || !isEmpty {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		log.Warn("no seed file; running with empty question bank", zap.String("path", path))
		return nil
	}
	n, err := SeedFromJSON(db, path)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Info("seeded questions", zap.String("path", path), zap.Int("count", n))
	return nil
}

func newStudy(db *gorm.DB, bank *Bank, cfg Config, log *zap.Logger) *Study {
	engine := NewEngine(bank)
	store := NewStateStore(db, engine, log.Named("store"))
	timer := NewExamTimer(db, cfg.ExamDuration(), log.Named("timer"))
	return NewStudy(engine, store, timer, log.Named("study"))
}

func NewApp(cfg Config, log *zap.Logger) (*App, error) {
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db, cfg.SeedPath, log); err != nil {
		return nil, err
	}
	bank, err := LoadBank(db)
	if err != nil {
		return nil, err
	}
	log.Info("question bank loaded", zap.Int("questions", bank.Len()))
	return &App{cfg: cfg, log: log, db: db, study: newStudy(db, bank, cfg, log)}, nil
}

func (a *App) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// userIDByPublicID resolves an existing anonymous user for offline commands.
func (a *App) userIDByPublicID(pubID string) (uint, error) {
	var u User
	if err := a.db.First(&u, "public_id = ?", pubID).Error; err != nil {
		return 0, fmt.Errorf("user %s: %w", pubID, err)
	}
	return u.ID, nil
}
