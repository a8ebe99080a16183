package structs

// SubmitResultRequest carries one completed test. WPM and Accuracy are
// pointers so that a legitimate zero survives required-field binding.
type SubmitResultRequest struct {
	WPM      *float64 `json:"wpm" binding:"required"`
	Accuracy *float64 `json:"accuracy" binding:"required"`
	Duration int      `json:"duration"`
}

type GenerateSpeechRequest struct {
	Text string `json:"text" binding:"required"`
}
