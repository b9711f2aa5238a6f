package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fixmycity/api-go/classifier"
	"github.com/fixmycity/api-go/config"
	"github.com/fixmycity/api-go/repository"
	"github.com/fixmycity/api-go/routes"
	"github.com/fixmycity/api-go/services"
	"github.com/fixmycity/api-go/storage"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg := config.Load()

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize blob storage
	store, err := newBlobStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize blob storage: %v", err)
	}

	// Initialize classifier
	cls, err := newClassifier(cfg, store)
	if err != nil {
		log.Fatalf("Failed to initialize classifier: %v", err)
	}

	repo := repository.NewReportRepository(db)
	service := services.NewReportService(store, cls, repo)

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "ok")
	})

	// Initialize routes
	routes.SetupRoutes(r, cfg, service, store)

	// Start the server
	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}

func newBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	switch cfg.StorageBackend {
	case config.StorageDisk:
		return storage.NewDiskStore(cfg.UploadDir)
	case config.StorageS3:
		return storage.NewS3Store(storage.S3Options{
			AccountID:       cfg.S3AccountID,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			BucketName:      cfg.S3BucketName,
			Region:          cfg.S3Region,
		}), nil
	case config.StorageMinio:
		return storage.NewMinioStore(context.Background(), storage.MinioOptions{
			Endpoint:        cfg.MinioEndpoint,
			AccessKeyID:     cfg.MinioAccessKeyID,
			SecretAccessKey: cfg.MinioSecretAccessKey,
			BucketName:      cfg.MinioBucketName,
			UseSSL:          cfg.MinioUseSSL,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func newClassifier(cfg *config.Config, store storage.BlobStore) (classifier.Classifier, error) {
	if cfg.ModelPath == "" {
		log.Println("No model configured, reports will be categorized as Unknown")
		return classifier.Null{}, nil
	}

	model, err := classifier.LoadDenseModel(cfg.ModelPath)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded classifier model from %s", cfg.ModelPath)
	return classifier.NewImageClassifier(store, model, classifier.DefaultLabels), nil
}
