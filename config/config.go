package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"vision-inspector/internal/domain/entity"
)

// Config — статические настройки процесса инспекции.
type Config struct {
	ModelPath           string   // путь к ONNX-модели детекции
	ClassNames          []string // метки классов в порядке обучения модели
	FlaggedClasses      []string // классы, требующие сохранения снимка
	CameraIndex         int      // индекс камеры
	ConfidenceThreshold float64  // порог уверенности детектора
	SnapshotDir         string   // каталог сохранённых снимков
	DatabasePath        string   // путь к журналу снимков; пусто — журнал отключён
	CaptureWidth        int      // запрошенная ширина захвата
	CaptureHeight       int      // запрошенная высота захвата
	WorkingSize         int      // сторона рабочего квадрата детектора
	WindowName          string   // заголовок окна оператора
	TelegramToken       string   // токен бота оповещений; пусто — оповещения отключены
	TelegramChatID      int64    // чат оператора
	StreamPort          int      // порт живого просмотра; 0 — просмотр отключён
}

// Load читает настройки из окружения и .env файла.
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:           getEnv("MODEL_PATH", "pedra-podre.onnx"),
		ClassNames:          getEnvAsList("CLASS_NAMES", entity.DefaultClassNames()),
		FlaggedClasses:      getEnvAsList("FLAGGED_CLASSES", []string{entity.LabelPedra, entity.LabelPedraNaBatata, entity.LabelBatataComPedra}),
		CameraIndex:         getEnvAsInt("CAMERA_INDEX", 0),
		ConfidenceThreshold: getEnvAsFloat("CONF_THRESHOLD", 0.45),
		SnapshotDir:         getEnv("SNAPSHOT_DIR", "snapshots"),
		DatabasePath:        getEnv("DB_PATH", ""),
		CaptureWidth:        getEnvAsInt("CAPTURE_WIDTH", 1980),
		CaptureHeight:       getEnvAsInt("CAPTURE_HEIGHT", 1080),
		WorkingSize:         getEnvAsInt("WORKING_SIZE", 640),
		WindowName:          getEnv("WINDOW_NAME", "Vision Inspector"),
		TelegramToken:       os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID:      getEnvAsInt64("TELEGRAM_CHAT_ID", 0),
		StreamPort:          getEnvAsInt("STREAM_PORT", 0),
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
