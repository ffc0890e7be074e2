package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"kazvocab/internal/config"
	"kazvocab/internal/database"
	"kazvocab/internal/domain"
	"kazvocab/internal/logger"
	"kazvocab/internal/repository"

	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_words.json"

type seedWord struct {
	ID          int64  `json:"id"`
	KazakhWord  string `json:"kazakh_word"`
	Translation string `json:"translation"`
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting vocabulary seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var seedWords []seedWord
	if err := json.Unmarshal(byteValue, &seedWords); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed words", zap.Int("count", len(seedWords)))

	wordRepo := repository.NewWordDatabaseAdapter(db)
	seeded := 0
	for _, sw := range seedWords {
		word := domain.CandidateWord{
			ID:          sw.ID,
			KazakhWord:  sw.KazakhWord,
			Translation: sw.Translation,
		}
		if err := wordRepo.SaveWord(ctx, word); err != nil {
			// Unique constraint violations mean the word is already seeded.
			log.Warn("Skipping word",
				zap.Int64("id", sw.ID),
				zap.String("kazakh_word", sw.KazakhWord),
				zap.Error(err),
			)
			continue
		}
		seeded++
	}

	log.Info("Vocabulary seeding completed",
		zap.Int("seeded", seeded),
		zap.Int("skipped", len(seedWords)-seeded),
	)
}
