package utils

import "math/rand"

// Static content tables. Both are fixed at compile time and only ever read.

var motivationalQuotes = []string{
	"The expert in anything was once a beginner.",
	"Practice makes progress, not perfection.",
	"Every keystroke brings you closer to mastery.",
	"Speed comes with accuracy, accuracy comes with practice.",
	"Your fingers are your instruments of success.",
	"Consistency is the key to improvement.",
	"Great typists are made, not born.",
	"Focus on accuracy first, speed will follow.",
	"Every mistake is a lesson learned.",
	"Progress, not perfection, is the goal.",
}

var practiceTexts = []string{
	"The quick brown fox jumps over the lazy dog. This sentence contains all letters of the alphabet and is perfect for typing practice.",
	"In the digital age, typing skills have become essential for productivity and communication in both personal and professional contexts.",
	"Practice makes perfect, and consistent daily typing exercises can significantly improve your speed and accuracy over time.",
	"Technology continues to evolve rapidly, changing the way we work, communicate, and interact with the world around us.",
	"The art of typing efficiently requires muscle memory, proper finger placement, and regular practice to achieve mastery.",
}

// RandomQuote returns a motivational quote for the post-test response
func RandomQuote() string {
	return motivationalQuotes[rand.Intn(len(motivationalQuotes))]
}

// RandomPracticeText returns a text for the next typing test
func RandomPracticeText() string {
	return practiceTexts[rand.Intn(len(practiceTexts))]
}
