package services

import (
	"context"
	"errors"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"

	"typingmaster/config"
)

var ttsClient *texttospeech.Client
var ttsLanguageCode = "en-US"
var ttsVoice string

// InitTTSService creates the Cloud Text-to-Speech client. The service is
// optional: when initialization fails the rest of the app keeps working and
// only speech requests report failure.
func InitTTSService(cfg *config.Config) error {
	var opts []option.ClientOption
	if cfg.TTS.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.TTS.CredentialsFile))
	}

	client, err := texttospeech.NewClient(context.Background(), opts...)
	if err != nil {
		return fmt.Errorf("failed to create text-to-speech client: %w", err)
	}

	ttsClient = client
	if cfg.TTS.LanguageCode != "" {
		ttsLanguageCode = cfg.TTS.LanguageCode
	}
	ttsVoice = cfg.TTS.Voice
	return nil
}

// SynthesizeSpeech converts text to MP3 audio bytes
func SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	if ttsClient == nil {
		return nil, errors.New("text-to-speech client not initialized")
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: ttsLanguageCode,
			Name:         ttsVoice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := ttsClient.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}
	return resp.AudioContent, nil
}
