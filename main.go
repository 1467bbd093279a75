package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/content-optimizer/backend/analyzer"
	"github.com/content-optimizer/backend/config"
	"github.com/content-optimizer/backend/logging"
	"github.com/content-optimizer/backend/middleware"
	"github.com/content-optimizer/backend/stats"
)

var (
	engine      *analyzer.Engine
	rateLimiter *middleware.RateLimiter
	metrics     *middleware.Metrics
	usage       *logging.Statistics
	storage     *stats.Storage
)

func loadEnv() {
	// Try to load .env.development first (for local development)
	if err := godotenv.Load(".env.development"); err != nil {
		// If .env.development doesn't exist, try regular .env
		if err := godotenv.Load(); err != nil {
			log.Println("No .env file found, using environment variables")
		}
	}
}

func setupGinMode() {
	// Set Gin mode based on environment variable
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		// Default to release mode if not specified
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)
}

func main() {
	// Load environment configuration
	loadEnv()

	// Set up Gin mode
	setupGinMode()

	// Load scoring configuration (defaults when SCORING_CONFIG is unset)
	cfg, err := config.Load(os.Getenv("SCORING_CONFIG"))
	if err != nil {
		log.Fatal("Failed to load scoring config: ", err)
	}

	// Initialize services
	engine, err = analyzer.New(cfg)
	if err != nil {
		log.Fatal("Failed to initialize analyzer: ", err)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}
	storage, err = stats.NewStorage(dataDir)
	if err != nil {
		log.Fatal("Failed to initialize stats storage: ", err)
	}
	defer storage.Shutdown()

	metrics = middleware.NewMetrics()
	rateLimiter = middleware.NewRateLimiter(2, 5, metrics) // 2 requests per second, bucket size of 5
	usage = logging.Initialize()

	// Initialize Gin router
	r := gin.Default()

	// Add middlewares
	r.Use(middleware.Recovery())
	r.Use(metrics.Handler())
	r.Use(rateLimiter.RateLimit())
	r.Use(middleware.Stats(usage))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status": "ok",
			})
		})

		// Content analysis endpoint
		api.POST("/analyze", analyzeContent)

		// Statistics endpoints
		api.GET("/statistics", func(c *gin.Context) {
			c.JSON(http.StatusOK, usage.GetStatistics())
		})
		api.GET("/statistics/monthly", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"months":  storage.GetAllMonths(),
				"current": storage.GetCurrentStats(),
			})
		})
	}

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8082" // Default port
	}

	log.Printf("Server starting on http://localhost:%s\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// analyzeRequest is the wire shape of an analysis call. Weights, when
// present, override the configured scoring weights for this call only.
type analyzeRequest struct {
	Content     string            `json:"content" binding:"required"`
	Keywords    []string          `json:"keywords"`
	ContentType string            `json:"contentType"`
	Format      string            `json:"format"` // "text" (default) or "html"
	Weights     *analyzer.Weights `json:"weights"`
}

func analyzeContent(c *gin.Context) {
	var request analyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid analysis request: " + err.Error(),
		})
		return
	}

	content := request.Content
	if strings.EqualFold(request.Format, "html") {
		extracted, err := analyzer.ExtractHTML(strings.NewReader(content))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to parse HTML content: " + err.Error(),
			})
			return
		}
		content = extracted
	}

	req := analyzer.AnalysisRequest{
		Content:     content,
		Keywords:    request.Keywords,
		ContentType: analyzer.ContentType(request.ContentType),
	}

	var (
		report *analyzer.AnalysisReport
		err    error
	)
	if request.Weights != nil {
		report, err = engine.AnalyzeWithWeights(c.Request.Context(), req, *request.Weights)
	} else {
		report, err = engine.AnalyzeWithContext(c.Request.Context(), req)
	}

	if err != nil {
		metrics.ObserveAnalysis(request.ContentType, 0, true)
		usage.TrackAnalysis(request.Keywords, 0, true)
		storage.RecordAnalysis(request.ContentType, 0, true)

		status := http.StatusInternalServerError
		if errors.Is(err, analyzer.ErrInvalidInput) ||
			errors.Is(err, analyzer.ErrInsufficientText) ||
			errors.Is(err, analyzer.ErrInvalidWeightConfig) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"error": "Failed to analyze content: " + err.Error(),
		})
		return
	}

	metrics.ObserveAnalysis(request.ContentType, report.OverallScore, false)
	usage.TrackAnalysis(request.Keywords, report.OverallScore, false)
	storage.RecordAnalysis(request.ContentType, report.OverallScore, false)

	c.JSON(http.StatusOK, gin.H{
		"analysisId": uuid.NewString(),
		"analyzedAt": time.Now().UTC().Format(time.RFC3339),
		"report":     report,
	})
}
