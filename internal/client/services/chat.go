package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/caremate-ai/caremate/internal/client/api"
	"github.com/caremate-ai/caremate/internal/logging"
)

// ChatService relays messages to the AI-doctor endpoint, with a canned reply
// when the backend is down or returns nothing.
type ChatService struct {
	client api.Client
	log    logging.Logger
}

func NewChatService(client api.Client, log logging.Logger) *ChatService {
	return &ChatService{client: client, log: log}
}

// Advice returns the AI doctor's reply for the user's message. An empty
// message yields an empty reply. Backend failures fall back to a generic
// keyword-matched answer.
func (s *ChatService) Advice(ctx context.Context, userText string) (string, error) {
	text := strings.TrimSpace(userText)
	if text == "" {
		return "", nil
	}

	reply, err := s.client.Chat(ctx, text)
	if err != nil {
		s.log.Warn(ctx, "chat request failed, using canned reply", "error", err)
	}
	if err == nil && reply != "" {
		return reply, nil
	}

	return fallbackAdvice(text), nil
}

// fallbackAdvice builds a generic reply around a keyword-detected topic.
func fallbackAdvice(text string) string {
	lower := strings.ToLower(text)

	topic := "your health concern"
	switch {
	case strings.Contains(lower, "headache"):
		topic = "headaches"
	case strings.Contains(lower, "fever"):
		topic = "fever"
	case strings.Contains(lower, "cough"):
		topic = "cough"
	case strings.Contains(lower, "bp"), strings.Contains(lower, "blood pressure"):
		topic = "blood pressure"
	}

	return fmt.Sprintf(
		"I hear you - dealing with %s can be uncomfortable. "+
			"Based on what you've shared, consider rest, hydration, and tracking key symptoms. "+
			"If symptoms worsen, persist beyond 48-72 hours, or you notice red flags "+
			"(severe pain, shortness of breath, confusion), please seek in-person medical care. "+
			"I can also help record your symptoms in the health intake form.", topic)
}
