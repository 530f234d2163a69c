package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"riskprofiler/internal/config"
	"riskprofiler/internal/prompts"
	"riskprofiler/internal/util"
)

// OpenAIService transcribes survey images with an OpenAI vision model
type OpenAIService struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    *util.Logger
}

// NewOpenAIService creates a new OpenAI service instance
func NewOpenAIService(cfg *config.Config) *OpenAIService {
	clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return &OpenAIService{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     cfg.OpenAIModel,
		maxTokens: cfg.OpenAIMaxTokens,
		logger:    util.NewLogger("OpenAIService"),
	}
}

// ExtractText sends the image to the vision model and returns the transcription
func (os *OpenAIService) ExtractText(ctx context.Context, image []byte, mimeType string) (string, error) {
	os.logger.Start("Image Transcription")
	defer os.logger.End("Image Transcription")

	dataURI := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: prompts.OCRSystemPrompt()},
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeText,
					Text: prompts.OCRUserPrompt(util.RequiredFields),
				},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    dataURI,
						Detail: openai.ImageURLDetailHigh,
					},
				},
			},
		},
	}

	content, err := os.callOpenAI(ctx, messages)
	if err != nil {
		os.logger.Error("Failed to transcribe image", err)
		return "", err
	}

	os.logger.KeyValue("Transcription received", "chars", len(content))
	return strings.TrimSpace(content), nil
}

// callOpenAI makes a call to OpenAI API with given messages
func (os *OpenAIService) callOpenAI(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := os.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       os.model,
		Messages:    messages,
		Temperature: 0,
		MaxTokens:   os.maxTokens,
	})

	if err != nil {
		return "", fmt.Errorf("openai api call failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
