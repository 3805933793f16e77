package app

import (
	"fmt"

	"shaderhub/internal/config"
	"shaderhub/internal/database"
	"shaderhub/internal/repository"
	"shaderhub/internal/service"
	"shaderhub/internal/storage"
	"shaderhub/internal/token"
)

// App собирает зависимости сервиса: БД, объектное хранилище,
// кодек токенов, репозитории и сервисы
func App(cfg *config.Config) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось инициализировать MinIO: %w", err)
	}

	codec, err := token.NewCodec(cfg.SecretKey, cfg.Algorithm)
	if err != nil {
		return nil, nil, fmt.Errorf("не удалось создать кодек токенов: %w", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, codec, cfg, minioClient)

	return db, services, nil
}
