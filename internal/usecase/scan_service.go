package usecase

import (
	"context"
	"log"

	"github.com/gymcoach/backend/internal/domain"
	"github.com/gymcoach/backend/internal/parse"
)

// ScanService analyzes food images through the vision collaborator and
// extracts a structured FoodAnalysis from its free-text answer
type ScanService struct {
	vision domain.VisionAnalyzer
}

// NewScanService creates a food scanning service
func NewScanService(vision domain.VisionAnalyzer) *ScanService {
	return &ScanService{vision: vision}
}

// AnalyzeFoodImage runs the vision model over the image bytes and
// parses the result. Incomplete macro information is a hard failure.
func (s *ScanService) AnalyzeFoodImage(ctx context.Context, imageData []byte, mimeType string) (*domain.FoodAnalysis, error) {
	content, err := s.vision.AnalyzeImage(ctx, visionSystemPrompt, imageData, mimeType)
	if err != nil {
		return nil, err
	}

	analysis, err := parse.FoodAnalysis(content)
	if err != nil {
		log.Printf("[SCAN] rejected vision output: %v", err)
		return nil, err
	}

	return analysis, nil
}
