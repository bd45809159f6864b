package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"nutrilog/domain"
	"nutrilog/entities"
	"nutrilog/internal/utils/storage"
)

// analysisPrompt is the fixed instruction sent with every submission. The
// model must answer with exactly the analysis shape, or an object holding
// only an error message when it cannot identify a food item.
const analysisPrompt = `
Analyze the following meal and provide a nutritional analysis.
The user input may be text, an image, or both.
Your response must be a JSON object with the following structure:
{
  "mealName": "A descriptive name for the meal",
  "totalCalories": <total_calories_integer>,
  "macros": {
    "protein": { "grams": <protein_grams_integer>, "percentage": <protein_percentage_integer> },
    "carbohydrates": { "grams": <carbs_grams_integer>, "percentage": <carbs_percentage_integer> },
    "fat": { "grams": <fat_grams_integer>, "percentage": <fat_percentage_integer> }
  },
  "ingredients": [
    { "name": "ingredient_name", "calories": <calories_integer>, "protein": <grams_int>, "carbs": <grams_int>, "fat": <grams_int> }
  ]
}
Do not include any introductory text or explanations outside of the JSON object.
If the input is unclear or doesn't seem to be a food item, return a JSON object with an "error" key.
Example error response: { "error": "Could not identify a food item in the provided input." }
`

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

type (
	AnalysisService interface {
		AnalyzeMeal(ctx context.Context, text string, image *multipart.FileHeader) (domain.AnalysisResult, error)
	}

	analysisService struct {
		apiKey  string
		model   string
		baseURL string
		client  *http.Client
		archive storage.AwsS3
	}
)

// NewAnalysisService builds the Gemini-backed analyzer. archive may be nil;
// when set, submitted photos are archived to S3 on a best-effort basis.
func NewAnalysisService(apiKey, model string, archive storage.AwsS3) AnalysisService {
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &analysisService{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 30 * time.Second},
		archive: archive,
	}
}

type (
	geminiPart struct {
		Text       string            `json:"text,omitempty"`
		InlineData *geminiInlineData `json:"inline_data,omitempty"`
	}

	geminiInlineData struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}

	geminiContent struct {
		Parts []geminiPart `json:"parts"`
	}

	geminiRequest struct {
		Contents         []geminiContent        `json:"contents"`
		GenerationConfig map[string]interface{} `json:"generationConfig"`
	}

	geminiResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	// geminiIngredient is the model's per-ingredient shape; quantity and
	// unit are never supplied by the model.
	geminiIngredient struct {
		Name     string  `json:"name"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}

	// geminiAnalysis is the tagged variant the model answers with: either
	// the analysis fields, or only Error.
	geminiAnalysis struct {
		Error         string             `json:"error"`
		MealName      string             `json:"mealName"`
		TotalCalories int                `json:"totalCalories"`
		Macros        entities.Macros    `json:"macros"`
		Ingredients   []geminiIngredient `json:"ingredients"`
	}
)

func (s *analysisService) AnalyzeMeal(ctx context.Context, text string, image *multipart.FileHeader) (domain.AnalysisResult, error) {
	if text == "" && image == nil {
		return domain.AnalysisResult{}, domain.ErrAnalysisInputMissing
	}
	if s.apiKey == "" {
		return domain.AnalysisResult{}, domain.ErrMissingAPIKey
	}

	requestID := uuid.New().String()

	parts := []geminiPart{{Text: analysisPrompt}}
	if text != "" {
		parts = append(parts, geminiPart{Text: fmt.Sprintf("User text input: %q", text)})
	}

	var imageData []byte
	var imageMime string
	if image != nil {
		var err error
		imageData, imageMime, err = readImage(image)
		if err != nil {
			return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
		}
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: imageMime,
			Data:     base64.StdEncoding.EncodeToString(imageData),
		}})
	}

	responseText, err := s.generateContent(ctx, parts)
	if err != nil {
		log.Errorf("analysis %s: gemini call failed: %v", requestID, err)
		return domain.AnalysisResult{}, fmt.Errorf("%w: %v", domain.ErrAnalysisFailed, err)
	}

	parsed, err := parseAnalysis(responseText)
	if err != nil {
		log.Errorf("analysis %s: unparseable model response: %v", requestID, err)
		return domain.AnalysisResult{}, err
	}
	if parsed.Error != "" {
		log.Infof("analysis %s: model rejected input: %s", requestID, parsed.Error)
		return domain.AnalysisResult{}, &domain.NoFoodError{Message: parsed.Error}
	}

	if image != nil && s.archive != nil {
		s.archivePhoto(requestID, image.Filename, imageData, imageMime)
	}

	result := domain.AnalysisResult{
		MealName:      parsed.MealName,
		TotalCalories: parsed.TotalCalories,
		Macros:        parsed.Macros,
		Ingredients:   make([]entities.Ingredient, len(parsed.Ingredients)),
	}
	for i, ing := range parsed.Ingredients {
		result.Ingredients[i] = entities.Ingredient{
			Name:     ing.Name,
			Quantity: 1,
			Unit:     entities.UnitPlaceholder,
			Calories: ing.Calories,
			Protein:  ing.Protein,
			Carbs:    ing.Carbs,
			Fat:      ing.Fat,
		}
	}

	log.Infof("analysis %s: identified %q (%d kcal, %d ingredients)",
		requestID, result.MealName, result.TotalCalories, len(result.Ingredients))
	return result, nil
}

func (s *analysisService) generateContent(ctx context.Context, parts []geminiPart) (string, error) {
	requestBody := geminiRequest{
		Contents: []geminiContent{{Parts: parts}},
		GenerationConfig: map[string]interface{}{
			"temperature":      0.2,
			"topP":             0.95,
			"topK":             64,
			"maxOutputTokens":  8192,
			"responseMimeType": "application/json",
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error: %s - %s", resp.Status, string(body))
	}

	var response geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", err
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}
	return response.Candidates[0].Content.Parts[0].Text, nil
}

// parseAnalysis validates the model's reply defensively: markdown fences
// and surrounding chatter are stripped, then the remainder must decode
// into the tagged analysis shape with a non-empty meal name or error.
func parseAnalysis(responseText string) (geminiAnalysis, error) {
	cleaned := cleanModelResponse(responseText)

	var parsed geminiAnalysis
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		return geminiAnalysis{}, fmt.Errorf("%w: failed to parse model response: %v", domain.ErrAnalysisFailed, err)
	}
	if parsed.Error == "" && parsed.MealName == "" {
		return geminiAnalysis{}, fmt.Errorf("%w: model response missing meal name", domain.ErrAnalysisFailed)
	}
	return parsed, nil
}

func cleanModelResponse(response string) string {
	response = strings.ReplaceAll(response, "```json", "")
	response = strings.ReplaceAll(response, "```", "")
	response = strings.TrimSpace(response)

	if match := jsonObjectPattern.FindString(response); match != "" {
		response = match
	}
	return response
}

func readImage(image *multipart.FileHeader) ([]byte, string, error) {
	file, err := image.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	mimeType := image.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
		switch strings.ToLower(filepath.Ext(image.Filename)) {
		case ".png":
			mimeType = "image/png"
		case ".gif":
			mimeType = "image/gif"
		case ".webp":
			mimeType = "image/webp"
		}
	}
	return data, mimeType, nil
}

// archivePhoto keeps a copy of the analyzed photo in S3. Failures are
// logged and never fail the analysis.
func (s *analysisService) archivePhoto(requestID, filename string, data []byte, mimeType string) {
	key, err := s.archive.UploadBytes(fmt.Sprintf("analysis-%s", requestID), filename, data, mimeType)
	if err != nil {
		log.Errorf("analysis %s: photo archive failed: %v", requestID, err)
		return
	}
	log.Infof("analysis %s: photo archived at %s", requestID, s.archive.GetPublicLinkKey(key))
}
