// cmd/genword/main.go
//
// 日次単語とヒント画像をコマンドラインから登録するためのツールです。
// 定期実行 (cron 等) やローカル確認に使います。
//
//	go run ./cmd/genword -word lantern -date 2025-06-01
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"image_of_the_day/internal/config"
	"image_of_the_day/internal/model"
	"image_of_the_day/internal/repository"
	"image_of_the_day/internal/service"
)

func main() {
	word := flag.String("word", "", "登録する単語 (必須)")
	date := flag.String("date", "", "対象日 YYYY-MM-DD (省略時は今日)")
	configPath := flag.String("config", "./configs", "設定ファイルのディレクトリ")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if *word == "" {
		logger.Error("Missing required flag: -word")
		flag.Usage()
		os.Exit(1)
	}
	if *date == "" {
		*date = time.Now().Format("2006-01-02")
	}

	if err := config.LoadConfig(*configPath); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	wordRepo := repository.NewGormWordRepository()
	llmClient := service.NewGeminiClient(&config.Cfg.Gemini)
	imageStore := service.NewImageStore(&config.Cfg)
	wordService := service.NewWordService(db, wordRepo, llmClient, imageStore, config.Cfg.Gemini.ImageModel)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	resp, err := wordService.GenerateDailyWord(ctx, &model.GenerateWordRequest{
		Word: *word,
		Date: *date,
	})
	if err != nil {
		logger.Error("Failed to generate daily word", slog.Any("error", err), slog.String("date", *date))
		os.Exit(1)
	}

	logger.Info("Daily word generated",
		slog.String("date", resp.Date),
		slog.String("image_key", resp.ImageKey),
	)
}
