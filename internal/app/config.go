package app

// StorageDriver выбирает реализацию хранилища документов.
type StorageDriver string

const (
	// StorageDriverMemory — in-memory хранилище для локальной разработки и тестов.
	StorageDriverMemory StorageDriver = "memory"
	// StorageDriverMongo — MongoDB, основной вариант для production.
	StorageDriverMongo StorageDriver = "mongo"
)

// Config описывает настройки запуска приложения.
type Config struct {
	// HTTPAddr — адрес основного API.
	HTTPAddr string
	// MetricsAddr — адрес служебного HTTP (метрики, health).
	MetricsAddr string
	// StorageDriver выбирает хранилище: memory или mongo.
	StorageDriver StorageDriver
	// MongoURI — строка подключения; обязательна для драйвера mongo.
	MongoURI string
	// MongoDatabase — имя базы данных.
	MongoDatabase string
	// MongoAutoIndex включает создание индексов на старте.
	MongoAutoIndex bool
	// KafkaBrokers — список брокеров через запятую; пустая строка отключает события.
	KafkaBrokers string
}

// DefaultConfig возвращает базовые настройки приложения.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:       ":8080",
		MetricsAddr:    ":9090",
		StorageDriver:  StorageDriverMemory,
		MongoDatabase:  "storefront",
		MongoAutoIndex: true,
	}
}
